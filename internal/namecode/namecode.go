package namecode

import (
	"regexp"

	"alcfg/internal/resource"
)

// placeholderPattern matches a namecode token and captures its code.
var placeholderPattern = regexp.MustCompile(`\{namecode:(\d+)\}`)

// Table maps namecode identifiers to display names.
type Table struct {
	names map[string]string
}

// New builds a table from a code → name map.
func New(names map[string]string) *Table {
	t := &Table{names: make(map[string]string, len(names))}
	for code, name := range names {
		t.names[code] = name
	}
	return t
}

// FromResource builds a table from the name_code export. Records without a
// string name field are ignored.
func FromResource(table *resource.Table) *Table {
	t := &Table{names: map[string]string{}}
	if table == nil {
		return t
	}
	for _, code := range table.Keys() {
		rec, ok := table.Object(code)
		if !ok {
			continue
		}
		if name, ok := rec["name"].(string); ok {
			t.names[code] = name
		}
	}
	return t
}

// Len returns the number of known codes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Lookup returns the display name for code.
func (t *Table) Lookup(code string) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[code]
	return name, ok
}

// SubstituteString replaces every resolvable placeholder in s.
func (t *Table) SubstituteString(s string) string {
	if t.Len() == 0 {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		m := placeholderPattern.FindStringSubmatch(token)
		if name, ok := t.names[m[1]]; ok {
			return name
		}
		return token
	})
}

// Substitute returns a copy of v with placeholders replaced in every string
// it contains. Map keys and non-string scalars are left as they are.
func (t *Table) Substitute(v any) any {
	switch val := v.(type) {
	case string:
		return t.SubstituteString(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = t.Substitute(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = t.Substitute(item)
		}
		return out
	default:
		return v
	}
}

// SubstituteRecord is Substitute specialised to a JSON object.
func (t *Table) SubstituteRecord(rec map[string]any) map[string]any {
	out, _ := t.Substitute(rec).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	return out
}
