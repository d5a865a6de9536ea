package pipeline

import "context"

// Stage is one unit of generation.
type Stage interface {
	Name() string
	// Requires lists the input tables that must be locatable for the stage to run.
	Requires() []string
	Run(ctx context.Context, env *Env) error
}

// DefaultStages returns the built-in stages in run order.
func DefaultStages() []Stage {
	return []Stage{combinedStage{}, voiceStage{}, storyStage{}, auxStage{}}
}

// StageNames lists the built-in stage names in run order.
func StageNames() []string {
	stages := DefaultStages()
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.Name())
	}
	return names
}
