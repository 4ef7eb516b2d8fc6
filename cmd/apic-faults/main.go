package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marek-kar/apic-faults/pkg/collector"
	"github.com/marek-kar/apic-faults/pkg/config"
	"github.com/marek-kar/apic-faults/pkg/log"
	"github.com/marek-kar/apic-faults/pkg/pipeline"
	"github.com/marek-kar/apic-faults/pkg/render"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "apic-faults",
		Short:         "Generate APIC fault alerting configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCollectCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func addSourceFlags(cmd *cobra.Command) {
	defaults := collector.DefaultOptions()
	cmd.Flags().String("url", defaults.URL, "fault catalogue URL")
	cmd.Flags().Duration("timeout", defaults.Timeout, "HTTP timeout for the catalogue download")
}

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return cfg, log.New(cfg.Log), nil
}

func newGenerateCmd() *cobra.Command {
	var (
		csv      bool
		snapshot string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the alert configuration (or the OSS report with --csv) to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			opts := pipeline.DefaultOptions()
			if csv {
				opts.Format = render.FormatCSV
			}
			opts.Snapshot = snapshot
			opts.Source = cfg.CollectorOptions()
			opts.ExtraDeniedCodes = cfg.Drop.ExtraCodes
			opts.APIC = cfg.APIC()
			opts.Defaults = cfg.Defaults()
			opts.MetricsTextfile = cfg.Metrics.Textfile

			client := &http.Client{Timeout: opts.Source.Timeout}
			return pipeline.NewRunner(client).WithLogger(logger).Run(ctx, opts, os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&csv, "csv", false, "emit the OSS report as CSV instead of the YAML configuration")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "read faults from a snapshot written by collect instead of downloading")
	cmd.Flags().String("metrics-textfile", "", "write run metrics to this node-exporter textfile")
	addSourceFlags(cmd)

	return cmd
}

func newCollectCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Download the fault catalogue into a snapshot for offline generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			opts := cfg.CollectorOptions()
			opts.Output = out

			client := &http.Client{Timeout: opts.Timeout}
			snap, err := collector.Collect(ctx, collector.NewFetcher(client).WithLogger(logger), opts)
			if err != nil {
				return err
			}
			if err := collector.Save(opts.Output, snap); err != nil {
				return err
			}

			logger.Info("snapshot written", zap.String("path", opts.Output), zap.Int("faults", len(snap.Faults)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", collector.DefaultOptions().Output, "output file path")
	addSourceFlags(cmd)

	return cmd
}
