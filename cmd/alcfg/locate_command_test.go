package main

import (
	"path/filepath"
	"strings"
	"testing"

	"alcfg/internal/pipeline"
	"alcfg/internal/testsupport"
)

func TestLocateReportsInputsAndStages(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteJSON(t, filepath.Join(env.inputDir, pipeline.FileShips), map[string]any{})

	out, _, err := runCLI(t, []string{"locate"}, env.configPath)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	requireContains(t, out, filepath.Join(env.inputDir, pipeline.FileShips))
	requireContains(t, out, "missing "+pipeline.FileNameCode)
	requireContains(t, out, "no required inputs")
	for _, file := range pipeline.InputFiles() {
		requireContains(t, out, file)
	}
}

func TestLocateNamedFileListsAllCopies(t *testing.T) {
	env := setupCLITestEnv(t)
	second := env.cfg.Paths.SearchPaths[1]
	testsupport.WriteJSON(t, filepath.Join(env.inputDir, pipeline.FileWords), map[string]any{})
	testsupport.WriteJSON(t, filepath.Join(second, pipeline.FileWords), map[string]any{})

	out, _, err := runCLI(t, []string{"locate", "--all", pipeline.FileWords}, env.configPath)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	requireContains(t, out, "* "+filepath.Join(env.inputDir, pipeline.FileWords))
	requireContains(t, out, filepath.Join(second, pipeline.FileWords))
	if strings.Contains(out, "== Stages ==") {
		t.Fatal("stage readiness should only print for the full input list")
	}
}
