package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"alcfg/internal/pipeline"
	"alcfg/internal/testsupport"
)

func writeCombinedInputs(t *testing.T, dir string) {
	t.Helper()
	testsupport.WriteJSON(t, filepath.Join(dir, pipeline.FileShips), map[string]any{
		"101": map[string]any{"name": "{namecode:5}", "ship_group": "G1", "painting": "p101"},
	})
	testsupport.WriteJSON(t, filepath.Join(dir, pipeline.FileNameCode), map[string]any{
		"5": map[string]any{"name": "Foo"},
	})
	testsupport.WriteJSON(t, filepath.Join(dir, "gametip.json"), []any{
		map[string]any{"key": "tip1", "tip": "hi {namecode:5}"},
	})
}

func TestGenerateRendersSummary(t *testing.T) {
	env := setupCLITestEnv(t)
	writeCombinedInputs(t, env.inputDir)

	out, _, err := runCLI(t, []string{"generate", "--only", "combined,aux"}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	requireContains(t, out, "== Generate ==")
	requireContains(t, out, pipeline.OutputCombined)
	requireContains(t, out, "not selected")
	requireContains(t, out, "2 ok, 2 skipped, 0 failed")

	for _, name := range []string{pipeline.OutputCombined, pipeline.OutputZuming, pipeline.OutputAux} {
		if _, err := os.Stat(filepath.Join(env.cfg.Paths.OutputDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestGenerateJSONWithOutputOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	writeCombinedInputs(t, env.inputDir)
	override := filepath.Join(t.TempDir(), "elsewhere")

	out, _, err := runCLI(t, []string{"generate", "--json", "--output", override}, env.configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var summary pipeline.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, out)
	}
	if summary.OutputDir != override {
		t.Fatalf("output dir = %q, want %q", summary.OutputDir, override)
	}
	combined, ok := summary.Result(pipeline.StageCombined)
	if !ok || combined.Status != pipeline.StatusOK {
		t.Fatalf("expected combined ok, got %+v", combined)
	}
	voice, _ := summary.Result(pipeline.StageVoice)
	if voice.Status != pipeline.StatusSkipped {
		t.Fatalf("expected voice skipped without words table, got %+v", voice)
	}
	if _, err := os.Stat(filepath.Join(override, pipeline.OutputCombined)); err != nil {
		t.Fatalf("expected combined output in override dir: %v", err)
	}
}

func TestGenerateRejectsUnknownStage(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"generate", "--only", "bogus"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown stage")
	}
}
