// Package main hosts the alcfg CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the structured
// logger, and hands work to the internal packages: generate drives the
// pipeline runner, locate reports which input copies a run would read, and
// the config commands scaffold and print configuration.
//
// Keep this package thin. New behavior belongs in internal packages first and
// is surfaced here through flags or dedicated commands.
package main
