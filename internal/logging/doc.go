// Package logging assembles structured slog loggers and formatting helpers used
// across alcfg.
//
// It owns the console and JSON handlers, the standard field keys (component,
// stage, event_type, correlation_id), attribute helpers, a tee handler for
// duplicating records, and a level counter the pipeline uses to summarize
// warnings. A no-op logger is provided for tests and wiring code that cannot
// fail.
package logging
