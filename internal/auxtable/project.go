package auxtable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"alcfg/internal/namecode"
	"alcfg/internal/resource"
)

// pathEscaper escapes the characters sjson treats as path syntax.
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	".", `\.`,
	":", `\:`,
	"|", `\|`,
	"#", `\#`,
	"@", `\@`,
	"*", `\*`,
	"?", `\?`,
)

// objectKey builds an sjson path that always addresses an object member,
// even for numeric keys.
func objectKey(key string) string {
	return ":" + pathEscaper.Replace(key)
}

// Project copies fields out of every object record of table into one JSON
// object. Record keys and field names are written in sorted order, absent
// fields are omitted, strings have namecodes resolved and numbers keep their
// source spelling. The section is built in a single pass over the records.
func Project(table *resource.Table, codes *namecode.Table, fields []string) ([]byte, error) {
	if table == nil {
		return []byte("{}"), nil
	}
	sortedFields := slices.Sorted(slices.Values(fields))
	sortedFields = slices.Compact(sortedFields)

	var buf bytes.Buffer
	buf.WriteByte('{')
	written := 0
	for _, key := range slices.Sorted(slices.Values(table.Keys())) {
		record := gjson.Parse(table.Raw(key))
		if !record.IsObject() {
			continue
		}
		projected, err := projectRecord(record, codes, sortedFields)
		if err != nil {
			return nil, fmt.Errorf("%s record %s: %w", table.Name(), key, err)
		}
		name, err := marshalNoEscape(key)
		if err != nil {
			return nil, fmt.Errorf("%s record %s: %w", table.Name(), key, err)
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(projected)
		written++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// projectRecord sets fields in the order given; callers pass them sorted.
func projectRecord(record gjson.Result, codes *namecode.Table, fields []string) ([]byte, error) {
	out := []byte("{}")
	for _, field := range fields {
		value := record.Get(field)
		if !value.Exists() {
			continue
		}
		raw, err := substituteRaw(value, codes)
		if err != nil {
			return nil, err
		}
		out, err = sjson.SetRawBytes(out, objectKey(field), raw)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// substituteRaw returns value's JSON with namecodes resolved in every string.
func substituteRaw(value gjson.Result, codes *namecode.Table) ([]byte, error) {
	switch value.Type {
	case gjson.String:
		return marshalNoEscape(codes.SubstituteString(value.Str))
	case gjson.JSON:
		var decoded any
		dec := json.NewDecoder(strings.NewReader(value.Raw))
		dec.UseNumber()
		if err := dec.Decode(&decoded); err != nil {
			return nil, err
		}
		return marshalNoEscape(codes.Substitute(decoded))
	default:
		return []byte(value.Raw), nil
	}
}

func marshalNoEscape(v any) ([]byte, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(strings.TrimSuffix(sb.String(), "\n")), nil
}
