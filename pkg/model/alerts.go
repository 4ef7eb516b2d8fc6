package model

type FaultRef struct {
	FaultName string `yaml:"fault_name"`
}

type Alert struct {
	AlertSeverity string              `yaml:"alert_severity"`
	Faults        map[string]FaultRef `yaml:"faults"`
}

type APICConfig struct {
	AlertSeverityThreshold string `yaml:"alert_severity_threshold"`
	DropUnknownAlerts      bool   `yaml:"drop_unknown_alerts"`
}

type DefaultsConfig struct {
	AlertSeverity string `yaml:"alert_severity"`
}

// AlertsConfig is the configuration document consumed by the APIC alert
// client. Field order matches the order the keys are written in.
type AlertsConfig struct {
	Alerts        map[string]Alert    `yaml:"alerts"`
	APIC          APICConfig          `yaml:"apic"`
	Defaults      DefaultsConfig      `yaml:"defaults"`
	DroppedFaults map[string]FaultRef `yaml:"dropped_faults"`
}

func NewAlertsConfig(apic APICConfig, defaults DefaultsConfig) AlertsConfig {
	return AlertsConfig{
		Alerts:        make(map[string]Alert),
		APIC:          apic,
		Defaults:      defaults,
		DroppedFaults: make(map[string]FaultRef),
	}
}

// Result holds both renderings of one analysis run.
type Result struct {
	Config AlertsConfig
	Report Report
}
