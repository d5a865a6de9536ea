// Package pipeline orchestrates a generate run: it locks the output
// directory, runs each enabled stage in a fixed order, and records what every
// stage produced.
//
// Stages declare the input tables they require. A stage whose inputs cannot
// be found is skipped while independent stages still run, and a stage that
// panics is recorded as failed without aborting the run. Diagnostics flow
// through an injectable Reporter; the default one logs through slog with the
// run's correlation id attached.
package pipeline
