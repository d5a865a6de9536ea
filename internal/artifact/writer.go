// Package artifact writes generated JSON documents into the output directory.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"alcfg/internal/fileutil"
)

// DefaultIndent is the indentation width of written documents.
const DefaultIndent = 2

// Writer encodes documents as indented UTF-8 JSON without HTML escaping.
type Writer struct {
	dir string
}

// Option adjusts a single write.
type Option func(*writeOptions)

type writeOptions struct {
	indent int
}

// WithIndent overrides the indentation width.
func WithIndent(n int) Option {
	return func(o *writeOptions) {
		if n >= 0 {
			o.indent = n
		}
	}
}

// NewWriter returns a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Path returns where a document named name is written.
func (w *Writer) Path(name string) string { return filepath.Join(w.dir, name) }

// Write encodes v and stores it under name, returning the written path.
func (w *Writer) Write(name string, v any, opts ...Option) (string, error) {
	o := resolve(opts)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", o.indent))
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	return w.store(name, buf.Bytes())
}

// WriteRaw re-indents already encoded JSON and stores it under name.
func (w *Writer) WriteRaw(name string, data []byte, opts ...Option) (string, error) {
	o := resolve(opts)
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", o.indent)); err != nil {
		return "", fmt.Errorf("indent %s: %w", name, err)
	}
	buf.WriteByte('\n')
	return w.store(name, buf.Bytes())
}

func (w *Writer) store(name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

func resolve(opts []Option) writeOptions {
	o := writeOptions{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
