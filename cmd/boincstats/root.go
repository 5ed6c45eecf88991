package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cfu288/boinc-statistics-image-generator/internal/config"
	"github.com/cfu288/boinc-statistics-image-generator/internal/logging"
	"github.com/cfu288/boinc-statistics-image-generator/internal/metrics"
	"github.com/cfu288/boinc-statistics-image-generator/internal/runner"
)

var metricsSetup = metrics.Setup

// shutdownTimeout bounds the metrics flush after a run.
var shutdownTimeout = 10 * time.Second

type rootOptions struct {
	urls        []string // --url: overrides every other source setting
	out         string   // --out: image path
	snapshot    string   // --snapshot: JSON snapshot path
	sourcesFile string   // --sources-file: TOML list of sources
	envFile     string   // --env-file: dotenv file loaded before config
	timeout     time.Duration
	retries     int
}

func newRootCmd() *cobra.Command {
	cmd, _ := buildRootCmd()
	return cmd
}

func buildRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render BOINC user statistics into a PNG",
		Long: `Fetch user statistics from BOINC userw.php endpoints, sort them by
total credit and render them into a small PNG card.

With no flags the two default projects are fetched and the image is written
to ./stats.png. Environment variables (optionally from a .env file) configure
defaults; flags override them.

Examples:
  boincstats
  boincstats --out /var/www/stats.png --snapshot /var/www/stats.json
  boincstats --url https://einsteinathome.org/userw.php?id=1041241
  boincstats --sources-file sources.toml --retries 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       appVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.urls, "url", nil, "BOINC userw.php URL to fetch (repeatable)")
	flags.StringVar(&opts.out, "out", "", "Output PNG path (default from OUTPUT_PATH or stats.png)")
	flags.StringVar(&opts.snapshot, "snapshot", "", "Also write the sorted records as JSON to this path")
	flags.StringVar(&opts.sourcesFile, "sources-file", "", "TOML file listing [[source]] url entries")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Dotenv file to load; a missing file is ignored")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Per-request HTTP timeout")
	flags.IntVar(&opts.retries, "retries", 0, "Total fetch attempts per source")
	return cmd, opts
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	cfg := config.Load()
	if err := applyFlags(cmd, opts, &cfg); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())
	gg.SetLogger(logger)
	defer gg.SetLogger(nil)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	recorder, shutdownMetrics, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		TextfilePath: cfg.Metrics.TextfilePath,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	defer flushMetrics(logger, shutdownMetrics)

	r, err := runner.New(cfg, logger, recorder)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Run(ctx)
}

// applyFlags layers explicitly set flags over the environment configuration.
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) error {
	flags := cmd.Flags()
	if opts.sourcesFile != "" {
		urls, err := config.LoadSourcesFile(opts.sourcesFile)
		if err != nil {
			return err
		}
		cfg.Sources = urls
	}
	if len(opts.urls) > 0 {
		cfg.Sources = append([]string(nil), opts.urls...)
	}
	if flags.Changed("out") {
		if opts.out == "" {
			return errors.New("--out must not be empty")
		}
		cfg.Output.ImagePath = opts.out
	}
	if flags.Changed("snapshot") {
		cfg.Output.SnapshotPath = opts.snapshot
	}
	if flags.Changed("timeout") {
		if opts.timeout <= 0 {
			return errors.New("--timeout must be positive")
		}
		cfg.Fetch.Timeout = opts.timeout
	}
	if flags.Changed("retries") {
		if opts.retries < 1 {
			return errors.New("--retries must be at least 1")
		}
		cfg.Fetch.Retries = opts.retries
	}
	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func newLogger(out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
		Output:  out,
	})
}

func flushMetrics(logger *slog.Logger, shutdown func(context.Context) error) {
	if shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logging.Warn(logger, "metrics shutdown failed", "error", err)
	}
}
