package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"alcfg/internal/artifact"
	"alcfg/internal/config"
	"alcfg/internal/logging"
	"alcfg/internal/preflight"
	"alcfg/internal/resource"
	"alcfg/internal/services"
)

// lockFileName guards the output directory against concurrent runs.
const lockFileName = ".alcfg.lock"

// ErrOutputLocked reports that another run holds the output directory.
var ErrOutputLocked = errors.New("output directory is locked by another alcfg run")

// Runner executes the generate pipeline for one configuration.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	stages   []Stage
	only     []string
	root     string
	now      func() time.Time
	reporter Reporter
}

// Option customizes a Runner.
type Option func(*Runner)

// WithStages replaces the built-in stages.
func WithStages(stages ...Stage) Option {
	return func(r *Runner) { r.stages = stages }
}

// WithOnly runs exactly the named stages, overriding the config toggles.
func WithOnly(names ...string) Option {
	return func(r *Runner) {
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				r.only = append(r.only, name)
			}
		}
	}
}

// WithClock overrides the time source used for metadata stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRoot resolves relative search paths against root instead of the working directory.
func WithRoot(root string) Option {
	return func(r *Runner) { r.root = root }
}

// WithReporter sends diagnostics to reporter instead of the logger.
func WithReporter(reporter Reporter) Option {
	return func(r *Runner) { r.reporter = reporter }
}

// NewRunner builds a runner for cfg.
func NewRunner(cfg *config.Config, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
		stages: DefaultStages(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locator returns the input locator the runner searches with.
func (r *Runner) Locator() *resource.Locator {
	return resource.NewLocator(r.root, r.cfg.Paths.SearchPaths, r.cfg.Paths.PreferredSubstring)
}

// Stages returns the configured stages in run order.
func (r *Runner) Stages() []Stage {
	return slices.Clone(r.stages)
}

// Run executes every selected stage and returns the per-stage summary. An
// error is returned only when the run cannot start: a bad stage selection,
// an unusable output directory, or a held lock.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.cfg == nil {
		return Summary{}, services.Wrap(services.ErrConfiguration, "", "run", "configuration is required", nil)
	}
	if err := r.validateOnly(); err != nil {
		return Summary{}, err
	}

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	counter := logging.NewLevelCounter()
	logger := logging.TeeLogger(logging.WithContext(ctx, r.logger), counter)

	outputDir := r.cfg.Paths.OutputDir
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, services.Wrap(services.ErrConfiguration, "", "prepare", "create output directory", err)
	}
	if failed := preflight.Failed(preflight.RunAll(r.cfg)); len(failed) > 0 {
		return Summary{}, services.Wrap(services.ErrConfiguration, "", "preflight", failed[0].Name+": "+failed[0].Detail, nil)
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return Summary{}, ErrOutputLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release output lock failed", logging.Error(err))
		}
	}()

	started := r.now()
	logger.Info("generate run started",
		logging.String(logging.FieldEventType, "run_start"),
		logging.String("output_dir", outputDir),
		logging.Int("stages", len(r.stages)),
	)

	reporter := r.reporter
	if reporter == nil {
		reporter = NewLogReporter(logger)
	}
	locator := r.Locator()
	env := newEnv(locator, artifact.NewWriter(outputDir), r.cfg.Labels, r.now, reporter)

	summary := Summary{RunID: runID, StartedAt: started, OutputDir: outputDir}
	for _, stage := range r.stages {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result := r.runStage(services.WithStage(ctx, stage.Name()), stage, env, locator)
		reporter.StageFinished(result)
		summary.Stages = append(summary.Stages, result)
	}

	summary.Duration = time.Since(started)
	summary.DurationMS = summary.Duration.Milliseconds()
	summary.Warnings = counter.Warnings()
	summary.Errors = counter.Errors()

	ok, skipped, failed := summary.Counts()
	logger.Info("generate run finished",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("ok", ok),
		logging.Int("skipped", skipped),
		logging.Int("failed", failed),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (r *Runner) runStage(ctx context.Context, stage Stage, env *Env, locator *resource.Locator) (result StageResult) {
	name := stage.Name()
	result = StageResult{Stage: name, Status: StatusSkipped, Outputs: []string{}}

	if !r.selected(name) {
		result.Detail = "not selected"
		return result
	}
	if check := preflight.CheckInputs(name, locator, stage.Requires()); !check.Passed {
		result.Detail = check.Detail
		return result
	}

	env.reporter.StageStarted(name)
	env.begin(name)
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			err := services.Wrap(services.ErrStagePanic, name, "run", fmt.Sprint(rec), nil)
			result.Status = services.FailureStatus(err)
			result.Detail = err.Error()
		}
		result.Outputs = append(result.Outputs, env.outputs...)
		result.Duration = time.Since(start)
		result.DurationMS = result.Duration.Milliseconds()
	}()

	if err := stage.Run(ctx, env); err != nil {
		result.Status = services.FailureStatus(err)
		result.Detail = err.Error()
		return result
	}
	result.Status = StatusOK
	return result
}

func (r *Runner) selected(name string) bool {
	if len(r.only) > 0 {
		return slices.Contains(r.only, name)
	}
	return r.cfg.StageEnabled(name)
}

func (r *Runner) validateOnly() error {
	for _, name := range r.only {
		known := slices.ContainsFunc(r.stages, func(s Stage) bool { return s.Name() == name })
		if !known {
			return services.Wrap(services.ErrConfiguration, "", "select stages",
				fmt.Sprintf("unknown stage %q (known: %s)", name, strings.Join(r.stageNames(), ", ")), nil)
		}
	}
	return nil
}

func (r *Runner) stageNames() []string {
	names := make([]string, 0, len(r.stages))
	for _, s := range r.stages {
		names = append(names, s.Name())
	}
	return names
}
