package analysis

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/marek-kar/apic-faults/pkg/model"
	"github.com/marek-kar/apic-faults/pkg/severity"
)

// Static blocks of the alert configuration. They never depend on the
// catalogue contents.
var (
	DefaultAPICConfig = model.APICConfig{
		AlertSeverityThreshold: "major",
		DropUnknownAlerts:      true,
	}
	DefaultDefaultsConfig = model.DefaultsConfig{
		AlertSeverity: "error",
	}
)

const descriptionPrefix = "APIC: "

type Engine struct {
	filter   *Filter
	apic     model.APICConfig
	defaults model.DefaultsConfig
	logger   *zap.Logger
	recorder Recorder
}

func NewEngine(rules ...DropRule) *Engine {
	return &Engine{
		filter:   NewFilter(rules...),
		apic:     DefaultAPICConfig,
		defaults: DefaultDefaultsConfig,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
}

func DefaultEngine() *Engine {
	return NewEngine(DefaultRules()...)
}

func (e *Engine) WithLogger(l *zap.Logger) *Engine {
	e.logger = l
	return e
}

func (e *Engine) WithRecorder(r Recorder) *Engine {
	e.recorder = r
	return e
}

func (e *Engine) WithStatic(apic model.APICConfig, defaults model.DefaultsConfig) *Engine {
	e.apic = apic
	e.defaults = defaults
	return e
}

// Analyze groups the catalogue once and builds both the alert configuration
// and the OSS report from it.
func (e *Engine) Analyze(faults []model.FaultRecord) (*model.Result, error) {
	groups := GroupByName(faults)
	e.recorder.ObserveGroups(groups.Len())
	e.logger.Debug("grouped faults", zap.Int("faults", len(faults)), zap.Int("groups", groups.Len()))

	cfg, err := e.AlertsConfig(groups)
	if err != nil {
		return nil, err
	}
	rep, err := e.Report(groups)
	if err != nil {
		return nil, err
	}
	return &model.Result{Config: cfg, Report: rep}, nil
}

// AlertsConfig emits one alert per group that keeps at least one fault. The
// alert severity comes from the most severe fault of the whole group, even
// when that fault is itself dropped.
func (e *Engine) AlertsConfig(groups *Groups) (model.AlertsConfig, error) {
	cfg := model.NewAlertsConfig(e.apic, e.defaults)
	seen := make(alertNames)

	for _, name := range groups.Names() {
		grp, err := groups.Get(name)
		if err != nil {
			return cfg, err
		}
		alertName, err := alertNameFor(grp)
		if err != nil {
			return cfg, err
		}
		if err := seen.claim(alertName, grp.Name); err != nil {
			return cfg, err
		}
		level, err := e.groupLevel(grp)
		if err != nil {
			return cfg, err
		}

		kept := make(map[string]model.FaultRef)
		for _, f := range grp.Faults {
			v := e.filter.Evaluate(f)
			e.recorder.ObserveFault(v.Dropped, v.Rules)
			if v.Dropped {
				e.logger.Debug("dropping fault",
					zap.String("code", f.Code),
					zap.String("name", grp.Name),
					zap.Strings("rules", v.Rules),
				)
				cfg.DroppedFaults[f.Code] = model.FaultRef{FaultName: grp.Name}
				continue
			}
			kept[f.Code] = model.FaultRef{FaultName: grp.Name}
		}

		if len(kept) == 0 {
			continue
		}
		cfg.Alerts[alertName] = model.Alert{
			AlertSeverity: level,
			Faults:        kept,
		}
		e.recorder.ObserveAlert(level)
	}

	e.logger.Info("built alert configuration",
		zap.Int("alerts", len(cfg.Alerts)),
		zap.Int("dropped", len(cfg.DroppedFaults)),
	)
	return cfg, nil
}

// Report emits one row per group whose most severe fault survives the drop
// rules. Other members of the group are not considered.
func (e *Engine) Report(groups *Groups) (model.Report, error) {
	var rep model.Report
	seen := make(alertNames)

	for _, name := range groups.Names() {
		grp, err := groups.Get(name)
		if err != nil {
			return rep, err
		}
		alertName, err := alertNameFor(grp)
		if err != nil {
			return rep, err
		}
		if err := seen.claim(alertName, grp.Name); err != nil {
			return rep, err
		}
		top, err := MostSevere(grp.Faults)
		if err != nil {
			return rep, errors.Wrapf(err, "group %q", grp.Name)
		}
		c, err := severity.Classify(top.Severity)
		if err != nil {
			return rep, errors.Wrapf(err, "fault %s", top.Code)
		}
		if e.filter.ShouldDrop(top) {
			continue
		}

		rep.Rows = append(rep.Rows, model.ReportRow{
			AlarmCode:        alertName,
			AlarmName:        alertName,
			Classification:   c.OSSClassification,
			ServiceAffected:  severity.YesNo(c.ServiceAffected),
			DefaultSeverity:  c.OSSLabel,
			IncidentCreation: severity.YesNo(c.IncidentCreation),
			Description:      descriptionPrefix + top.Description(),
		})
	}

	e.recorder.ObserveReportRows(len(rep.Rows))
	return rep, nil
}

func (e *Engine) groupLevel(grp *Group) (string, error) {
	top, err := MostSevere(grp.Faults)
	if err != nil {
		return "", errors.Wrapf(err, "group %q", grp.Name)
	}
	s, err := severity.Parse(top.Severity)
	if err != nil {
		return "", errors.Wrapf(err, "fault %s", top.Code)
	}
	return s.AlertLevel()
}

func alertNameFor(grp *Group) (string, error) {
	n, err := AlertName(grp.Name)
	if err != nil {
		return "", errors.Wrapf(err, "fault %s", grp.Faults[0].Code)
	}
	return n, nil
}
