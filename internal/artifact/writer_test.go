package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"alcfg/internal/artifact"
	"alcfg/internal/valueutil"
)

func TestWriteIndentsWithoutEscaping(t *testing.T) {
	dir := t.TempDir()
	w := artifact.NewWriter(filepath.Join(dir, "out"))

	doc := valueutil.NewOrdered(2)
	doc.Set("b", "<未知>")
	doc.Set("a", []string{})

	path, err := w.Write("doc.json", doc)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if path != filepath.Join(dir, "out", "doc.json") {
		t.Fatalf("unexpected path %q", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"b\": \"<未知>\",\n  \"a\": []\n}\n"
	if string(got) != want {
		t.Fatalf("content mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriteCustomIndent(t *testing.T) {
	w := artifact.NewWriter(t.TempDir())
	path, err := w.Write("voice.json", map[string]int{"x": 1}, artifact.WithIndent(4))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := os.ReadFile(path)
	if want := "{\n    \"x\": 1\n}\n"; string(got) != want {
		t.Fatalf("content mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriteRaw(t *testing.T) {
	w := artifact.NewWriter(t.TempDir())
	path, err := w.WriteRaw("aux.json", []byte(`{"a":{"1":"<x>"}}`))
	if err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	got, _ := os.ReadFile(path)
	if want := "{\n  \"a\": {\n    \"1\": \"<x>\"\n  }\n}\n"; string(got) != want {
		t.Fatalf("content mismatch:\ngot  %q\nwant %q", got, want)
	}

	if _, err := w.WriteRaw("bad.json", []byte(`{`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
