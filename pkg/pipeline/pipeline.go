// Package pipeline runs one generation: read the fault catalogue, build the
// alert configuration or the OSS report, and write it out.
package pipeline

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/marek-kar/apic-faults/pkg/analysis"
	"github.com/marek-kar/apic-faults/pkg/collector"
	"github.com/marek-kar/apic-faults/pkg/metrics"
	"github.com/marek-kar/apic-faults/pkg/model"
	"github.com/marek-kar/apic-faults/pkg/render"
)

type Options struct {
	Format render.Format
	// Snapshot, when set, is read instead of fetching Source.URL.
	Snapshot         string
	Source           collector.Options
	ExtraDeniedCodes []string
	APIC             model.APICConfig
	Defaults         model.DefaultsConfig
	MetricsTextfile  string
}

func DefaultOptions() Options {
	return Options{
		Format:   render.FormatYAML,
		Source:   collector.DefaultOptions(),
		APIC:     analysis.DefaultAPICConfig,
		Defaults: analysis.DefaultDefaultsConfig,
	}
}

type Runner struct {
	client   *http.Client
	logger   *zap.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

func NewRunner(client *http.Client) *Runner {
	return &Runner{
		client:   client,
		logger:   zap.NewNop(),
		recorder: metrics.NewRecorder(),
		now:      time.Now,
	}
}

func (r *Runner) WithLogger(l *zap.Logger) *Runner {
	r.logger = l
	return r
}

func (r *Runner) Recorder() *metrics.Recorder {
	return r.recorder
}

// Run writes exactly one document to w, or nothing when any stage fails.
func (r *Runner) Run(ctx context.Context, opts Options, w io.Writer) error {
	faults, err := r.faults(ctx, opts)
	if err != nil {
		return err
	}

	engine := analysis.NewEngine(analysis.DefaultRules(opts.ExtraDeniedCodes...)...).
		WithLogger(r.logger).
		WithRecorder(r.recorder).
		WithStatic(opts.APIC, opts.Defaults)

	res, err := engine.Analyze(faults)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.New(opts.Format).Render(&buf, res); err != nil {
		return errors.Wrapf(err, "render %s", opts.Format)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "write output")
	}

	r.recorder.MarkSuccess(r.now())
	if opts.MetricsTextfile != "" {
		if err := r.recorder.WriteTextfile(opts.MetricsTextfile); err != nil {
			r.logger.Warn("could not write metrics", zap.String("path", opts.MetricsTextfile), zap.Error(err))
		}
	}
	return nil
}

func (r *Runner) faults(ctx context.Context, opts Options) ([]model.FaultRecord, error) {
	if opts.Snapshot != "" {
		snap, err := collector.Load(opts.Snapshot)
		if err != nil {
			return nil, err
		}
		r.logger.Info("loaded snapshot",
			zap.String("path", opts.Snapshot),
			zap.String("source", snap.Source),
			zap.Int("faults", len(snap.Faults)),
		)
		return snap.Faults, nil
	}

	client := r.client
	if client == nil {
		client = &http.Client{Timeout: opts.Source.Timeout}
	}
	snap, err := collector.Collect(ctx, collector.NewFetcher(client).WithLogger(r.logger), opts.Source)
	if err != nil {
		return nil, err
	}
	return snap.Faults, nil
}
