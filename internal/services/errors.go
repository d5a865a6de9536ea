package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingInput   = errors.New("missing input")
	ErrMalformedInput = errors.New("malformed input")
	ErrConfiguration  = errors.New("configuration error")
	ErrOutput         = errors.New("output error")
	ErrStagePanic     = errors.New("stage panic")
)

// Status is the outcome recorded for a pipeline stage.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later status classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrOutput
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureStatus maps a stage error to the status the run summary records.
// Missing or unusable inputs skip a stage; everything else fails it.
func FailureStatus(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrMissingInput), errors.Is(err, ErrMalformedInput):
		return StatusSkipped
	default:
		return StatusFailed
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "stage failure"
	}
	return strings.Join(parts, ": ")
}
