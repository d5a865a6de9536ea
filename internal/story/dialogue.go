package story

import (
	"alcfg/internal/namecode"
	"alcfg/internal/valueutil"
)

// Dialogues extracts the say lines of one story entry. The entry is either a
// step sequence or an object whose scripts field (or the object itself) holds
// the steps. Object steps are read in numeric key order.
func Dialogues(content any, codes *namecode.Table) []string {
	steps := content
	if obj, ok := content.(map[string]any); ok {
		if scripts, ok := obj["scripts"]; ok {
			steps = scripts
		}
	}

	var lines []string
	add := func(step any) {
		if line, ok := sayLine(step, codes); ok {
			lines = append(lines, line)
		}
	}

	switch s := steps.(type) {
	case []any:
		for _, step := range s {
			add(step)
		}
	case map[string]any:
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		for _, k := range valueutil.SortedKeys(keys) {
			add(s[k])
		}
	}
	return lines
}

func sayLine(step any, codes *namecode.Table) (string, bool) {
	obj, ok := step.(map[string]any)
	if !ok {
		return "", false
	}
	say, ok := obj["say"]
	if !ok || !valueutil.Truthy(say) {
		return "", false
	}
	if text, ok := say.(string); ok {
		return codes.SubstituteString(text), true
	}
	return valueutil.String(codes.Substitute(say)), true
}
