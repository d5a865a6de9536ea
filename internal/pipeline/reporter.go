package pipeline

import (
	"log/slog"

	"alcfg/internal/logging"
	"alcfg/internal/resource"
)

// Reporter receives run diagnostics. Stages report through it instead of
// logging directly.
type Reporter interface {
	resource.Reporter
	StageStarted(stage string)
	StageFinished(result StageResult)
	OutputWritten(stage, path string)
	Notice(stage, message string, attrs ...logging.Attr)
}

// LogReporter reports through a slog logger.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter wraps logger; a nil logger discards everything.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) ResourceLoaded(filename, path string, records int) {
	r.logger.Info("resource loaded",
		logging.String(logging.FieldEventType, "resource_loaded"),
		logging.String(logging.FieldResource, filename),
		logging.String(logging.FieldPath, path),
		logging.Int("records", records),
	)
}

func (r *LogReporter) ResourceUnavailable(filename string, err error) {
	hint := "add the file to one of the configured search paths"
	if resource.Kind(err) == "malformed" {
		hint = "re-export the table; it is not a JSON object or array"
	}
	logging.WarnWithContext(r.logger, "resource unavailable", "resource_"+resource.Kind(err),
		logging.String(logging.FieldResource, filename),
		logging.String(logging.FieldErrorHint, hint),
		logging.String(logging.FieldImpact, "dependent output uses an empty table or is skipped"),
		logging.Error(err),
	)
}

func (r *LogReporter) StageStarted(stage string) {
	r.logger.Debug("stage started",
		logging.String(logging.FieldStage, stage),
		logging.String(logging.FieldEventType, "stage_start"),
	)
}

func (r *LogReporter) StageFinished(result StageResult) {
	attrs := []logging.Attr{
		logging.String(logging.FieldStage, result.Stage),
		logging.String("status", string(result.Status)),
		logging.Int("outputs", len(result.Outputs)),
		logging.Duration("duration", result.Duration),
	}
	if result.Detail != "" {
		attrs = append(attrs, logging.String("detail", result.Detail))
	}
	switch result.Status {
	case StatusFailed:
		r.logger.Error("stage failed", logging.Args(append(attrs, logging.String(logging.FieldEventType, "stage_failure"))...)...)
	case StatusSkipped:
		logging.WarnWithContext(r.logger, "stage skipped", "stage_skipped",
			append(attrs, logging.String(logging.FieldImpact, "stage outputs were not regenerated"))...)
	default:
		r.logger.Info("stage completed", logging.Args(append(attrs, logging.String(logging.FieldEventType, "stage_complete"))...)...)
	}
}

func (r *LogReporter) OutputWritten(stage, path string) {
	r.logger.Info("artifact written",
		logging.String(logging.FieldStage, stage),
		logging.String(logging.FieldEventType, "artifact_written"),
		logging.String(logging.FieldPath, path),
	)
}

func (r *LogReporter) Notice(stage, message string, attrs ...logging.Attr) {
	r.logger.Info(message, logging.Args(append([]logging.Attr{logging.String(logging.FieldStage, stage)}, attrs...)...)...)
}
