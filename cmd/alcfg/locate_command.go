package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alcfg/internal/pipeline"
	"alcfg/internal/preflight"
	"alcfg/internal/resource"
)

func newLocateCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "locate [file...]",
		Short: "Show which copy of each input table a run would read",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(cfg, nil)
			locator := runner.Locator()

			files := args
			if len(files) == 0 {
				files = pipeline.InputFiles()
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Inputs", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Found", "Path", "Copies"},
				locateRows(locator, files, all),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))

			if len(args) > 0 {
				return nil
			}
			fmt.Fprintln(out)
			printStageReadiness(out, runner.Stages(), locator, colorize)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every copy found, not only the one that would be read")
	return cmd
}

func locateRows(locator *resource.Locator, files []string, all bool) [][]string {
	rows := make([][]string, 0, len(files))
	for _, file := range files {
		candidates := locator.Candidates(file)
		chosen, err := locator.Find(file)
		if err != nil {
			rows = append(rows, []string{file, yesNo(false), "-", "0"})
			continue
		}
		path := chosen
		if all {
			lines := make([]string, 0, len(candidates))
			for _, c := range candidates {
				marker := "  "
				if c.Resolved == chosen {
					marker = "* "
				}
				lines = append(lines, marker+c.Resolved)
			}
			path = strings.Join(lines, "\n")
		}
		rows = append(rows, []string{file, yesNo(true), path, fmt.Sprint(len(candidates))})
	}
	return rows
}

func printStageReadiness(out io.Writer, stages []pipeline.Stage, locator *resource.Locator, colorize bool) {
	for _, line := range renderSectionHeader("Stages", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, stage := range stages {
		result := preflight.CheckInputs(stage.Name(), locator, stage.Requires())
		if result.Passed {
			message := "inputs present"
			if len(stage.Requires()) == 0 {
				message = result.Detail
			}
			fmt.Fprintln(out, renderStatusLine(stage.Name(), statusOK, message, colorize))
			continue
		}
		fmt.Fprintln(out, renderStatusLine(stage.Name(), statusWarn, result.Detail, colorize))
	}
}
