package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// idFields are probed in order to key the elements of a top-level array.
var idFields = []string{"id", "skin_id", "ship_skin_id", "key"}

// Table is a loaded export: records keyed by identifier, in source order.
// Tables are read-only once built.
type Table struct {
	name    string
	path    string
	keys    []string
	records map[string]any
	raw     map[string]string
}

// Empty returns a table with no records, used when a resource is unavailable.
func Empty(name string) *Table {
	return &Table{name: name, records: map[string]any{}, raw: map[string]string{}}
}

// FromRecords builds a table from already-decoded records, keys taken in the given order.
func FromRecords(name string, keys []string, records map[string]any) *Table {
	t := Empty(name)
	for _, key := range keys {
		value, ok := records[key]
		if !ok {
			continue
		}
		data, err := json.Marshal(value)
		if err != nil {
			continue
		}
		t.put(key, value, string(data))
	}
	return t
}

// Name returns the table's filename.
func (t *Table) Name() string { return t.name }

// Path returns the file the table was loaded from, empty for synthetic tables.
func (t *Table) Path() string { return t.path }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns record keys in source order.
func (t *Table) Keys() []string { return append([]string(nil), t.keys...) }

// Get returns the decoded record for key.
func (t *Table) Get(key string) (any, bool) {
	v, ok := t.records[key]
	return v, ok
}

// Object returns the record for key when it is a JSON object.
func (t *Table) Object(key string) (map[string]any, bool) {
	m, ok := t.records[key].(map[string]any)
	return m, ok
}

// Raw returns the record's source JSON text for field projection.
func (t *Table) Raw(key string) string { return t.raw[key] }

func (t *Table) put(key string, value any, raw string) {
	if _, exists := t.records[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.records[key] = value
	t.raw[key] = raw
}

// Load reads and parses the table stored at path.
func Load(name, path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(name), fmt.Errorf("%s: read %s: %w", name, path, err)
	}
	t, err := Parse(name, data)
	if err != nil {
		return t, err
	}
	t.path = path
	return t, nil
}

// Parse decodes table JSON. Objects are taken as-is; arrays are keyed by each
// object element's first truthy id field, and elements without one are dropped.
func Parse(name string, data []byte) (*Table, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || !gjson.ValidBytes(data) {
		return Empty(name), wrap(ErrMalformedResource, name, "invalid JSON", nil)
	}

	doc := gjson.ParseBytes(data)
	t := Empty(name)
	var decodeErr error

	switch {
	case doc.IsObject():
		doc.ForEach(func(key, value gjson.Result) bool {
			decoded, err := decodeRaw(value.Raw)
			if err != nil {
				decodeErr = err
				return false
			}
			t.put(key.String(), decoded, value.Raw)
			return true
		})
	case doc.IsArray():
		doc.ForEach(func(_, elem gjson.Result) bool {
			if !elem.IsObject() {
				return true
			}
			key, ok := elementKey(elem)
			if !ok {
				return true
			}
			decoded, err := decodeRaw(elem.Raw)
			if err != nil {
				decodeErr = err
				return false
			}
			t.put(key, decoded, elem.Raw)
			return true
		})
	default:
		return Empty(name), wrap(ErrMalformedResource, name, "top level is neither an object nor an array", nil)
	}

	if decodeErr != nil {
		return Empty(name), wrap(ErrMalformedResource, name, "decode record", decodeErr)
	}
	return t, nil
}

func elementKey(elem gjson.Result) (string, bool) {
	for _, field := range idFields {
		r := elem.Get(field)
		if truthyResult(r) {
			return r.String(), true
		}
	}
	return "", false
}

func truthyResult(r gjson.Result) bool {
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.True:
		return true
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		return len(r.Map()) > 0
	default:
		return false
	}
}

func decodeRaw(raw string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
