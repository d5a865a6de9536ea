package pipeline

import (
	"time"

	"alcfg/internal/artifact"
	"alcfg/internal/config"
	"alcfg/internal/logging"
	"alcfg/internal/namecode"
	"alcfg/internal/resource"
)

// Env is what a stage sees of the run: its tables, writer, labels, and
// reporter. Tables are loaded once per run and shared between stages.
type Env struct {
	loader   *resource.Loader
	writer   *artifact.Writer
	labels   config.Labels
	now      func() time.Time
	reporter Reporter

	stage   string
	outputs []string
	tables  map[string]loadedTable
	codes   *namecode.Table
}

type loadedTable struct {
	table *resource.Table
	err   error
}

func newEnv(locator *resource.Locator, writer *artifact.Writer, labels config.Labels, now func() time.Time, reporter Reporter) *Env {
	env := &Env{
		writer:   writer,
		labels:   labels,
		now:      now,
		reporter: reporter,
		tables:   map[string]loadedTable{},
	}
	env.loader = resource.NewLoader(locator, env)
	return env
}

// ResourceLoaded forwards loader diagnostics to the run reporter.
func (e *Env) ResourceLoaded(filename, path string, records int) {
	e.reporter.ResourceLoaded(filename, path, records)
}

// ResourceUnavailable forwards loader diagnostics to the run reporter.
func (e *Env) ResourceUnavailable(filename string, err error) {
	e.reporter.ResourceUnavailable(filename, err)
}

func (e *Env) begin(stage string) {
	e.stage = stage
	e.outputs = nil
}

// Table loads filename once per run. The table is empty when err is set.
func (e *Env) Table(filename string) (*resource.Table, error) {
	if cached, ok := e.tables[filename]; ok {
		return cached.table, cached.err
	}
	table, err := e.loader.Load(filename)
	e.tables[filename] = loadedTable{table: table, err: err}
	return table, err
}

// OptionalTable loads filename when it exists. A missing file is not
// reported as a problem; the second return says whether it was found.
func (e *Env) OptionalTable(filename string) (*resource.Table, bool) {
	if cached, ok := e.tables[filename]; ok {
		return cached.table, cached.err == nil
	}
	if _, err := e.loader.Locator().Find(filename); err != nil {
		return resource.Empty(filename), false
	}
	table, err := e.Table(filename)
	return table, err == nil
}

// Codes returns the namecode table, loading it on first use.
func (e *Env) Codes() *namecode.Table {
	if e.codes == nil {
		table, _ := e.Table(FileNameCode)
		e.codes = namecode.FromResource(table)
	}
	return e.codes
}

// Labels returns the configured fallback labels.
func (e *Env) Labels() config.Labels { return e.labels }

// Now returns the run clock's current time.
func (e *Env) Now() time.Time { return e.now() }

// Write stores a document and records it against the running stage.
func (e *Env) Write(name string, v any, opts ...artifact.Option) error {
	path, err := e.writer.Write(name, v, opts...)
	if err != nil {
		return err
	}
	e.recordOutput(path)
	return nil
}

// WriteRaw stores pre-encoded JSON and records it against the running stage.
func (e *Env) WriteRaw(name string, data []byte, opts ...artifact.Option) error {
	path, err := e.writer.WriteRaw(name, data, opts...)
	if err != nil {
		return err
	}
	e.recordOutput(path)
	return nil
}

func (e *Env) recordOutput(path string) {
	e.outputs = append(e.outputs, path)
	e.reporter.OutputWritten(e.stage, path)
}

// Notice reports an informational message for the running stage.
func (e *Env) Notice(message string, attrs ...logging.Attr) {
	e.reporter.Notice(e.stage, message, attrs...)
}
