package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cfu288/boinc-statistics-image-generator/internal/app/collector"
	"github.com/cfu288/boinc-statistics-image-generator/internal/config"
	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
	"github.com/cfu288/boinc-statistics-image-generator/internal/logging"
	"github.com/cfu288/boinc-statistics-image-generator/internal/metrics"
	"github.com/cfu288/boinc-statistics-image-generator/internal/providers"
	"github.com/cfu288/boinc-statistics-image-generator/internal/render"
	"github.com/cfu288/boinc-statistics-image-generator/internal/snapshots"
)

// Stage names used in wrapped errors and the run metrics.
const (
	StageFetch    = "fetch"
	StageRender   = "render"
	StageWrite    = "write"
	StageSnapshot = "snapshot"
	StageDone     = "done"
)

type statsCollector interface {
	Collect(ctx context.Context, urls []string) ([]stats.UserStat, error)
}

type imageEncoder interface {
	EncodePNG(w io.Writer, records []stats.UserStat) error
	Close() error
}

type outputWriter interface {
	WriteImage(ctx context.Context, path string, data []byte) (bool, error)
	WriteSnapshot(ctx context.Context, path string, records []stats.UserStat) (bool, error)
}

// Runner executes one fetch, sort, render and write pass.
type Runner struct {
	cfg       config.Config
	logger    *slog.Logger
	metrics   *metrics.Recorder
	collector statsCollector
	encoder   imageEncoder
	writer    outputWriter
	newRunID  func() string
	now       func() time.Time
}

// New wires the BOINC provider, collector, renderer and writer from cfg.
// The caller owns the returned Runner and must Close it.
func New(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Runner, error) {
	provider := newProviderFactory(logger, recorder).build(cfg.Fetch)
	return newRunnerWithProvider(cfg, logger, recorder, provider)
}

func newRunnerWithProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.StatsProvider) (*Runner, error) {
	renderer, err := render.New(render.Options{
		Width:  cfg.Image.Width,
		Height: cfg.Image.Height,
		Scale:  cfg.Image.Scale,
	})
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}
	return &Runner{
		cfg:       cfg,
		logger:    logger,
		metrics:   recorder,
		collector: collector.NewService(provider, logger),
		encoder:   renderer,
		writer:    snapshots.NewWriter(writeLockTimeout),
		newRunID:  uuid.NewString,
		now:       time.Now,
	}, nil
}

// Run performs a single pass. Failures are wrapped with the stage that produced them.
func (r *Runner) Run(ctx context.Context) error {
	runID := r.newRunID()
	logger := r.logger
	if logger != nil {
		logger = logger.With(logging.FieldRunID, runID)
	}
	ctx = logging.WithContext(ctx, logger)

	start := r.now()
	count, stage, err := r.run(ctx, logger)
	elapsed := r.now().Sub(start)
	r.metrics.RecordRun(elapsed, count, stage, err)
	if err != nil {
		return err
	}
	logging.Info(logger, "Done!",
		logging.FieldPath, r.cfg.Output.ImagePath,
		logging.FieldCount, count,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return nil
}

func (r *Runner) run(ctx context.Context, logger *slog.Logger) (int, string, error) {
	logging.Info(logger, "Fetching user data", logging.FieldCount, len(r.cfg.Sources))
	records, err := r.collector.Collect(ctx, r.cfg.Sources)
	if err != nil {
		return 0, StageFetch, fmt.Errorf("%s: %w", StageFetch, err)
	}

	logging.Info(logger, "Generating image", logging.FieldCount, len(records))
	var buf bytes.Buffer
	if err := r.encoder.EncodePNG(&buf, records); err != nil {
		return len(records), StageRender, fmt.Errorf("%s: %w", StageRender, err)
	}

	changed, err := r.writer.WriteImage(ctx, r.cfg.Output.ImagePath, buf.Bytes())
	if err != nil {
		return len(records), StageWrite, fmt.Errorf("%s: %w", StageWrite, err)
	}
	if !changed {
		logging.Debug(logger, "image unchanged", logging.FieldPath, r.cfg.Output.ImagePath)
	}

	if path := r.cfg.Output.SnapshotPath; path != "" {
		if _, err := r.writer.WriteSnapshot(ctx, path, records); err != nil {
			return len(records), StageSnapshot, fmt.Errorf("%s: %w", StageSnapshot, err)
		}
		logging.Debug(logger, "snapshot written", logging.FieldPath, path)
	}
	return len(records), StageDone, nil
}

// Close releases the renderer's font resources.
func (r *Runner) Close() error {
	if r == nil || r.encoder == nil {
		return nil
	}
	return r.encoder.Close()
}
