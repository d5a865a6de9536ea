// Package config loads, normalizes, and validates alcfg configuration.
//
// It defines the TOML-backed Config struct, the search order for input export
// directories, output and log locations, stage toggles, and the fallback labels
// written when source tables lack a title, group, or skin name. Helpers expand
// user paths and create a sample configuration.
//
// Every entry point (CLI commands, tests) should obtain configuration through
// Load so defaults and normalization stay in one place.
package config
