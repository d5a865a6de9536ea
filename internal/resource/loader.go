package resource

// Reporter receives loader diagnostics. Implementations decide how to surface
// them; the loader itself never logs.
type Reporter interface {
	ResourceLoaded(filename, path string, records int)
	ResourceUnavailable(filename string, err error)
}

type nopReporter struct{}

func (nopReporter) ResourceLoaded(string, string, int) {}

func (nopReporter) ResourceUnavailable(string, error) {}

// Loader finds and parses named tables, degrading every failure to an empty table.
type Loader struct {
	locator  *Locator
	reporter Reporter
}

// NewLoader wires a locator to a reporter. A nil reporter discards diagnostics.
func NewLoader(locator *Locator, reporter Reporter) *Loader {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Loader{locator: locator, reporter: reporter}
}

// Load resolves and parses filename. The returned table is never nil; on
// failure it is empty and err carries ErrMissingResource or
// ErrMalformedResource so callers can decide whether to skip dependent work.
func (l *Loader) Load(filename string) (*Table, error) {
	path, err := l.locator.Find(filename)
	if err != nil {
		l.reporter.ResourceUnavailable(filename, err)
		return Empty(filename), err
	}
	table, err := Load(filename, path)
	if err != nil {
		l.reporter.ResourceUnavailable(filename, err)
		return table, err
	}
	l.reporter.ResourceLoaded(filename, path, table.Len())
	return table, nil
}

// Table loads filename and drops the error; use it for optional inputs.
func (l *Loader) Table(filename string) *Table {
	table, _ := l.Load(filename)
	return table
}

// Locator exposes the underlying search configuration.
func (l *Loader) Locator() *Locator { return l.locator }
