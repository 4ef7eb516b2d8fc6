package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/marek-kar/apic-faults/pkg/analysis"
	"github.com/marek-kar/apic-faults/pkg/collector"
	"github.com/marek-kar/apic-faults/pkg/log"
	"github.com/marek-kar/apic-faults/pkg/model"
)

const envPrefix = "APIC_FAULTS"

type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Output  OutputConfig  `mapstructure:"output"`
	Drop    DropConfig    `mapstructure:"drop"`
	Log     log.Config    `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type SourceConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig holds the static blocks of the generated alert configuration.
type OutputConfig struct {
	AlertSeverityThreshold string `mapstructure:"alert_severity_threshold"`
	DropUnknownAlerts      bool   `mapstructure:"drop_unknown_alerts"`
	DefaultAlertSeverity   string `mapstructure:"default_alert_severity"`
}

type DropConfig struct {
	ExtraCodes []string `mapstructure:"extra_codes"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"url":              "source.url",
	"timeout":          "source.timeout",
	"log-level":        "log.level",
	"metrics-textfile": "metrics.textfile",
}

func setDefaults(v *viper.Viper) {
	src := collector.DefaultOptions()
	v.SetDefault("source.url", src.URL)
	v.SetDefault("source.timeout", src.Timeout)

	v.SetDefault("output.alert_severity_threshold", analysis.DefaultAPICConfig.AlertSeverityThreshold)
	v.SetDefault("output.drop_unknown_alerts", analysis.DefaultAPICConfig.DropUnknownAlerts)
	v.SetDefault("output.default_alert_severity", analysis.DefaultDefaultsConfig.AlertSeverity)

	v.SetDefault("drop.extra_codes", []string{})

	lc := log.DefaultConfig()
	v.SetDefault("log.level", lc.Level)
	v.SetDefault("log.file_path", lc.FilePath)
	v.SetDefault("log.max_size", lc.MaxSize)
	v.SetDefault("log.max_age", lc.MaxAge)
	v.SetDefault("log.max_backups", lc.MaxBackups)
	v.SetDefault("log.compress", lc.Compress)
	v.SetDefault("log.development", lc.Development)

	v.SetDefault("metrics.textfile", "")
}

// Load layers flags over APIC_FAULTS_* environment variables over the YAML
// file at path over built-in defaults. path and flags may be empty.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

func (c *Config) APIC() model.APICConfig {
	return model.APICConfig{
		AlertSeverityThreshold: c.Output.AlertSeverityThreshold,
		DropUnknownAlerts:      c.Output.DropUnknownAlerts,
	}
}

func (c *Config) Defaults() model.DefaultsConfig {
	return model.DefaultsConfig{AlertSeverity: c.Output.DefaultAlertSeverity}
}

func (c *Config) CollectorOptions() collector.Options {
	opts := collector.DefaultOptions()
	opts.URL = c.Source.URL
	opts.Timeout = c.Source.Timeout
	return opts
}
