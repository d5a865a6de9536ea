package valueutil

import (
	"encoding/json"
	"strconv"
	"strings"
)

// String renders a decoded JSON value as text. Strings pass through, numbers
// keep their source spelling, nil becomes "", and containers are re-encoded
// as compact JSON.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Truthy reports whether a decoded JSON value counts as set: non-empty
// strings and containers, non-zero numbers, and true.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	case int:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// Int converts a decoded JSON number (or numeric string) to an int.
func Int(v any) (int, bool) {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), true
		}
		if f, err := val.Float64(); err == nil && f == float64(int(f)) {
			return int(f), true
		}
	case float64:
		if val == float64(int(val)) {
			return int(val), true
		}
	case int:
		return val, true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// NonBlank reports whether v is a string with visible content.
func NonBlank(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
