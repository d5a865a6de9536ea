package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"alcfg/internal/config"
	"alcfg/internal/pipeline"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var only []string
	var outputDir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate derived artifacts from the config exports",
		Long: "Run the enabled pipeline stages (" + strings.Join(pipeline.StageNames(), ", ") + ").\n" +
			"Stages whose inputs are missing or malformed are skipped; the command only fails\n" +
			"when configuration, the output directory, or the output lock is unusable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCfg, err := withOutputOverride(cfg, outputDir)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(runCfg)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			runner := pipeline.NewRunner(runCfg, logger, pipeline.WithOnly(only...))
			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()
			printSummary(out, summary, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "Run only these stages (comma separated), ignoring the [outputs] toggles")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Write artifacts to this directory instead of paths.output_dir")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}

func withOutputOverride(cfg *config.Config, outputDir string) (*config.Config, error) {
	outputDir = strings.TrimSpace(outputDir)
	if outputDir == "" {
		return cfg, nil
	}
	expanded, err := config.ExpandPath(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}
	clone := *cfg
	clone.Paths.OutputDir = expanded
	return &clone, nil
}

func printSummary(out io.Writer, summary pipeline.Summary, colorize bool) {
	for _, line := range renderSectionHeader("Generate", colorize) {
		fmt.Fprintln(out, line)
	}

	rows := make([][]string, 0, len(summary.Stages))
	for _, result := range summary.Stages {
		rows = append(rows, []string{
			result.Stage,
			colorText(stageStatusKind(result.Status), string(result.Status), colorize),
			outputNames(result.Outputs),
			formatDuration(result.Duration),
			result.Detail,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Stage", "Status", "Outputs", "Duration", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))

	ok, skipped, failed := summary.Counts()
	kind := statusOK
	switch {
	case failed > 0:
		kind = statusError
	case skipped > 0 || summary.Errors > 0:
		kind = statusWarn
	}
	fmt.Fprintln(out, renderStatusLine("Stages", kind,
		fmt.Sprintf("%d ok, %d skipped, %d failed", ok, skipped, failed), colorize))
	logKind := statusOK
	if summary.Warnings > 0 || summary.Errors > 0 {
		logKind = statusWarn
	}
	fmt.Fprintln(out, renderStatusLine("Diagnostics", logKind,
		fmt.Sprintf("%d warnings, %d errors", summary.Warnings, summary.Errors), colorize))
	fmt.Fprintln(out, renderStatusLine("Output", statusInfo, summary.OutputDir, colorize))
	fmt.Fprintln(out, renderStatusLine("Run ID", statusInfo, summary.RunID, colorize))
}

func outputNames(paths []string) string {
	if len(paths) == 0 {
		return "-"
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return strings.Join(names, "\n")
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}
