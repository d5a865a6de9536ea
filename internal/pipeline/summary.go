package pipeline

import (
	"time"

	"alcfg/internal/services"
)

// Stage outcomes.
const (
	StatusOK      = services.StatusOK
	StatusSkipped = services.StatusSkipped
	StatusFailed  = services.StatusFailed
)

// StageResult records what one stage did.
type StageResult struct {
	Stage      string          `json:"stage"`
	Status     services.Status `json:"status"`
	Outputs    []string        `json:"outputs"`
	Detail     string          `json:"detail,omitempty"`
	Duration   time.Duration   `json:"-"`
	DurationMS int64           `json:"duration_ms"`
}

// Summary is the outcome of a generate run.
type Summary struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
	OutputDir  string        `json:"output_dir"`
	Stages     []StageResult `json:"stages"`
	Warnings   int           `json:"warnings"`
	Errors     int           `json:"errors"`
}

// Counts tallies stage outcomes.
func (s Summary) Counts() (ok, skipped, failed int) {
	for _, r := range s.Stages {
		switch r.Status {
		case StatusOK:
			ok++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return ok, skipped, failed
}

// Result returns the recorded result for stage.
func (s Summary) Result(stage string) (StageResult, bool) {
	for _, r := range s.Stages {
		if r.Stage == stage {
			return r, true
		}
	}
	return StageResult{}, false
}
