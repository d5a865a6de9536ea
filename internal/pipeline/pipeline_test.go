package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/go-cmp/cmp"

	"alcfg/internal/config"
	"alcfg/internal/logging"
	"alcfg/internal/pipeline"
	"alcfg/internal/testsupport"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)

func writeFixtures(t *testing.T, cfg *config.Config, skip ...string) {
	t.Helper()
	fixtures := map[string]any{
		pipeline.FileShips: map[string]any{
			"101": map[string]any{"name": "{namecode:5}", "ship_group": "G1", "painting": "p101", "group_index": 0},
			"102": map[string]any{"name": "Foo Alt", "ship_group": "G1", "painting": "p102", "group_index": 1},
		},
		pipeline.FileWords: map[string]any{
			"101": map[string]any{"main": "A|B"},
			"102": map[string]any{"main": "C"},
		},
		pipeline.FileNameCode: map[string]any{"5": map[string]any{"name": "Foo"}},
		pipeline.FileStory: map[string]any{
			"s1": map[string]any{"scripts": []any{map[string]any{"say": "hello {namecode:5}"}}},
			"s2": map[string]any{"scripts": []any{map[string]any{"say": ""}}},
		},
		pipeline.FileMemoryTemplate: map[string]any{"900": map[string]any{"story": "S1", "title": "First"}},
		pipeline.FileMemoryGroup:    map[string]any{"1": map[string]any{"title": "Main", "memories": []any{900}}},
		pipeline.FilePaintingFilter: map[string]any{"P101": map[string]any{"res_list": []any{"painting/p101"}}},
		"gametip.json":              []any{map[string]any{"key": "tip1", "tip": "{namecode:5} says hi", "extra": 1}},
	}
	for _, name := range skip {
		delete(fixtures, name)
	}
	for name, v := range fixtures {
		testsupport.WriteJSON(t, filepath.Join(testsupport.InputDir(cfg), name), v)
	}
}

func TestRunGeneratesAllOutputs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg)

	summary, err := pipeline.NewRunner(cfg, logging.NewNop(), pipeline.WithClock(func() time.Time { return fixedNow })).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if ok, skipped, failed := summary.Counts(); ok != 4 || skipped != 0 || failed != 0 {
		t.Fatalf("unexpected counts ok=%d skipped=%d failed=%d: %+v", ok, skipped, failed, summary.Stages)
	}
	if summary.RunID == "" {
		t.Fatal("expected run id")
	}

	out := cfg.Paths.OutputDir
	combined := testsupport.ReadJSON(t, filepath.Join(out, pipeline.OutputCombined))
	ships := combined["ships"].([]any)
	wantShip := map[string]any{"id": "101", "id2": "1", "name": "Foo", "ship_group": "G1", "painting": "p101"}
	if diff := cmp.Diff(wantShip, ships[0]); diff != "" {
		t.Fatalf("ship mismatch (-want +got):\n%s", diff)
	}
	meta := combined["metadata"].(map[string]any)
	if meta["version"] != "3.1" || meta["generate_time"] != fixedNow.Format("2006-01-02T15:04:05.000000") {
		t.Fatalf("unexpected metadata %v", meta)
	}

	names := testsupport.ReadJSON(t, filepath.Join(out, pipeline.OutputName))
	first := names["ships"].([]any)[0].(map[string]any)
	if diff := cmp.Diff([]any{"painting/p101"}, first["res_list"]); diff != "" {
		t.Fatalf("res_list mismatch (-want +got):\n%s", diff)
	}

	voiceRaw, err := os.ReadFile(filepath.Join(out, pipeline.OutputVoice))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(voiceRaw), "\n    \"G1\": {") {
		t.Fatalf("expected four-space indentation, got:\n%s", voiceRaw)
	}
	voice := testsupport.ReadJSON(t, filepath.Join(out, pipeline.OutputVoice))
	wantVoice := map[string]any{"G1": map[string]any{"main_1": "Foo", "main_2": "Foo", "main_1_1": "Foo Alt"}}
	if diff := cmp.Diff(wantVoice, voice); diff != "" {
		t.Fatalf("voice mismatch (-want +got):\n%s", diff)
	}

	stories := testsupport.ReadJSON(t, filepath.Join(out, pipeline.OutputStory))
	groups := stories["groups"].([]any)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %v", groups)
	}
	episodes := groups[0].(map[string]any)["episodes"].([]any)
	if len(episodes) != 1 || episodes[0].(map[string]any)["episode_title"] != "First" {
		t.Fatalf("unexpected episodes %v", episodes)
	}

	aux := testsupport.ReadJSON(t, filepath.Join(out, pipeline.OutputAux))
	wantAux := map[string]any{"gametip": map[string]any{"tip1": map[string]any{"key": "tip1", "tip": "Foo says hi"}}}
	if diff := cmp.Diff(wantAux, aux); diff != "" {
		t.Fatalf("aux mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMissingShipTemplateKeepsIndependentStages(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	writeFixtures(t, cfg, pipeline.FileShips)

	summary, err := pipeline.NewRunner(cfg, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := map[string]pipeline.StageResult{}
	for _, r := range summary.Stages {
		want[r.Stage] = r
	}
	for stage, status := range map[string]string{
		pipeline.StageCombined: "skipped",
		pipeline.StageVoice:    "skipped",
		pipeline.StageStory:    "ok",
		pipeline.StageAux:      "ok",
	} {
		if got := string(want[stage].Status); got != status {
			t.Fatalf("stage %s status = %s, want %s (%s)", stage, got, status, want[stage].Detail)
		}
	}
	if !strings.Contains(want[pipeline.StageCombined].Detail, pipeline.FileShips) {
		t.Fatalf("expected missing file in detail, got %q", want[pipeline.StageCombined].Detail)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, pipeline.OutputCombined)); !os.IsNotExist(err) {
		t.Fatalf("combined output should not exist, stat err=%v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, pipeline.OutputStory)); err != nil {
		t.Fatalf("story output missing: %v", err)
	}
}

func TestRunEmptyNamecodeSkipsCombined(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithOnlyStages("combined"))
	writeFixtures(t, cfg)
	testsupport.WriteFile(t, filepath.Join(testsupport.InputDir(cfg), pipeline.FileNameCode), "not json")

	summary, err := pipeline.NewRunner(cfg, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	result, _ := summary.Result(pipeline.StageCombined)
	if result.Status != pipeline.StatusSkipped {
		t.Fatalf("expected skipped, got %s (%s)", result.Status, result.Detail)
	}
	if summary.Warnings == 0 {
		t.Fatal("expected the malformed table to be counted as a warning")
	}
}

type panicStage struct{}

func (panicStage) Name() string { return "explode" }

func (panicStage) Requires() []string { return nil }

func (panicStage) Run(_ context.Context, env *pipeline.Env) error {
	if err := env.Write("partial.json", map[string]int{"n": 1}); err != nil {
		return err
	}
	panic("boom")
}

type okStage struct{ ran *bool }

func (okStage) Name() string { return "after" }

func (okStage) Requires() []string { return nil }

func (s okStage) Run(context.Context, *pipeline.Env) error {
	*s.ran = true
	return nil
}

func TestRunRecoversPanickingStage(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ran := false

	runner := pipeline.NewRunner(cfg, logging.NewNop(),
		pipeline.WithStages(panicStage{}, okStage{ran: &ran}),
		pipeline.WithOnly("explode", "after"),
	)
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	failed, _ := summary.Result("explode")
	if failed.Status != pipeline.StatusFailed || !strings.Contains(failed.Detail, "boom") {
		t.Fatalf("unexpected panic result %+v", failed)
	}
	if len(failed.Outputs) != 1 {
		t.Fatalf("expected partial output to be kept, got %v", failed.Outputs)
	}
	if !ran {
		t.Fatal("stage after the panic did not run")
	}
	if after, _ := summary.Result("after"); after.Status != pipeline.StatusOK {
		t.Fatalf("unexpected status %s", after.Status)
	}
}

func TestRunRejectsUnknownStage(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_, err := pipeline.NewRunner(cfg, logging.NewNop(), pipeline.WithOnly("bogus")).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected unknown stage error, got %v", err)
	}
}

func TestRunFailsWhenOutputLocked(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	held := flock.New(filepath.Join(cfg.Paths.OutputDir, ".alcfg.lock"))
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("could not take lock: %v", err)
	}
	defer held.Unlock()

	_, err := pipeline.NewRunner(cfg, logging.NewNop()).Run(context.Background())
	if !errors.Is(err, pipeline.ErrOutputLocked) {
		t.Fatalf("expected ErrOutputLocked, got %v", err)
	}
}

type recordingReporter struct {
	pipeline.Reporter
	finished []string
	loaded   []string
}

func (r *recordingReporter) StageFinished(result pipeline.StageResult) {
	r.finished = append(r.finished, result.Stage+":"+string(result.Status))
}

func (r *recordingReporter) ResourceLoaded(filename, _ string, _ int) {
	r.loaded = append(r.loaded, filename)
}

func TestRunUsesInjectedReporter(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithOnlyStages("combined", "story"))
	writeFixtures(t, cfg)

	rec := &recordingReporter{Reporter: pipeline.NewLogReporter(nil)}
	if _, err := pipeline.NewRunner(cfg, nil, pipeline.WithReporter(rec)).Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	wantFinished := []string{"combined:ok", "voice:skipped", "story:ok", "aux:skipped"}
	if diff := cmp.Diff(wantFinished, rec.finished); diff != "" {
		t.Fatalf("finished mismatch (-want +got):\n%s", diff)
	}
	nameCodeLoads := 0
	for _, f := range rec.loaded {
		if f == pipeline.FileNameCode {
			nameCodeLoads++
		}
	}
	if nameCodeLoads != 1 {
		t.Fatalf("expected name_code.json to load once, loaded %d times", nameCodeLoads)
	}
}

func TestRunTagsLogLinesWithRunID(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithOnlyStages("voice"))
	writeFixtures(t, cfg)

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	summary, err := pipeline.NewRunner(cfg, logger).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected several log lines, got %d", len(lines))
	}
	for _, line := range lines {
		var payload map[string]any
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if payload[logging.FieldCorrelationID] != summary.RunID {
			t.Fatalf("line missing run id: %s", line)
		}
	}
}
