// Package metrics counts what a generation run did and exposes the counts in
// the node exporter textfile format, so the batch job can be scraped after
// it exits.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "apic_faults"

type Recorder struct {
	registry *prometheus.Registry

	faults      *prometheus.CounterVec
	drops       *prometheus.CounterVec
	alerts      *prometheus.CounterVec
	groups      prometheus.Gauge
	reportRows  prometheus.Gauge
	lastSuccess prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "faults_total",
			Help:      "Catalogue faults processed, by outcome.",
		}, []string{"outcome"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drop_rule_matches_total",
			Help:      "Faults matched by each drop rule. A fault may match several rules.",
		}, []string{"rule"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Alerts written to the configuration, by alert severity.",
		}, []string{"severity"}),
		groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fault_groups",
			Help:      "Distinct MIB fault names in the catalogue.",
		}),
		reportRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_rows",
			Help:      "Rows in the OSS alarm dictionary.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}
	r.registry.MustRegister(r.faults, r.drops, r.alerts, r.groups, r.reportRows, r.lastSuccess)
	return r
}

func (r *Recorder) ObserveGroups(n int) {
	r.groups.Set(float64(n))
}

func (r *Recorder) ObserveFault(dropped bool, rules []string) {
	if !dropped {
		r.faults.WithLabelValues("retained").Inc()
		return
	}
	r.faults.WithLabelValues("dropped").Inc()
	for _, rule := range rules {
		r.drops.WithLabelValues(rule).Inc()
	}
}

func (r *Recorder) ObserveAlert(level string) {
	r.alerts.WithLabelValues(level).Inc()
}

func (r *Recorder) ObserveReportRows(n int) {
	r.reportRows.Set(float64(n))
}

func (r *Recorder) MarkSuccess(t time.Time) {
	r.lastSuccess.Set(float64(t.Unix()))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile atomically writes every metric to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrap(err, "write metrics textfile")
	}
	return nil
}
