// Package preflight provides readiness checks for the filesystem paths and
// input tables alcfg depends on.
//
// These checks run in two contexts:
//   - The pipeline runner checks the output directory before generating and
//     checks each stage's required inputs before running it.
//   - The CLI "alcfg locate" command uses the same checks to display which
//     stages can run with the current search paths.
package preflight
