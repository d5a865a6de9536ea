package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alcfg/internal/config"
	"alcfg/internal/resource"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckInputs(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	locator := resource.NewLocator(dir, []string{"."}, "")

	ok := CheckInputs("combined", locator, []string{"a.json"})
	if !ok.Passed || !strings.Contains(ok.Detail, "a.json") {
		t.Fatalf("expected pass with resolved path, got %+v", ok)
	}

	missing := CheckInputs("story", locator, []string{"a.json", "b.json", "c.json"})
	if missing.Passed {
		t.Fatal("expected failure for missing inputs")
	}
	if missing.Detail != "missing b.json, c.json" {
		t.Fatalf("unexpected detail %q", missing.Detail)
	}

	if none := CheckInputs("aux", locator, nil); !none.Passed {
		t.Fatal("expected pass without requirements")
	}
}

func TestRunAll(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "missing")

	results := RunAll(&cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "Log directory" {
		t.Fatalf("unexpected failures %+v", failed)
	}
	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
