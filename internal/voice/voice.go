package voice

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"alcfg/internal/namecode"
	"alcfg/internal/resource"
	"alcfg/internal/valueutil"
)

// DefaultUnknownSkin names skins whose template entry has no name.
const DefaultUnknownSkin = "未知皮肤"

// Options tunes Build.
type Options struct {
	// UnknownSkin replaces a missing skin name.
	UnknownSkin string
	// Codes resolves namecodes in skin names when set.
	Codes *namecode.Table
}

type skin struct {
	id         string
	groupIndex int
	name       string
}

// Build groups template skins by ship_group, orders each group by
// group_index, and maps every voice slot found in the words table to the
// owning skin's name. Later skins overwrite earlier ones on slot collisions.
// Groups appear in first-seen template order.
func Build(template, words *resource.Table, opts Options) *valueutil.Ordered {
	unknown := opts.UnknownSkin
	if unknown == "" {
		unknown = DefaultUnknownSkin
	}

	groups := valueutil.NewOrdered(0)
	members := map[string][]skin{}
	if template != nil {
		for _, id := range template.Keys() {
			info, ok := template.Object(id)
			if !ok {
				continue
			}
			rawGroup, ok := info["ship_group"]
			if !ok || rawGroup == nil {
				continue
			}
			group := valueutil.String(rawGroup)
			if _, seen := members[group]; !seen {
				groups.Set(group, nil)
			}
			name := unknown
			if v, ok := info["name"]; ok {
				name = opts.Codes.SubstituteString(valueutil.String(v))
			}
			index, _ := valueutil.Int(info["group_index"])
			members[group] = append(members[group], skin{id: id, groupIndex: index, name: name})
		}
	}

	out := valueutil.NewOrdered(groups.Len())
	for _, group := range groups.Keys() {
		list := members[group]
		slices.SortStableFunc(list, func(a, b skin) int { return cmp.Compare(a.groupIndex, b.groupIndex) })

		slots := valueutil.NewOrdered(0)
		for _, s := range list {
			raw := ""
			if words != nil {
				raw = words.Raw(s.id)
			}
			if raw == "" {
				continue
			}
			addSlots(slots, gjson.Parse(raw), s)
		}
		out.Set(group, slots)
	}
	return out
}

func addSlots(slots *valueutil.Ordered, record gjson.Result, s skin) {
	if !record.IsObject() {
		return
	}
	suffix := ""
	if s.groupIndex != 0 {
		suffix = "_" + strconv.Itoa(s.groupIndex)
	}
	record.ForEach(func(field, value gjson.Result) bool {
		if value.Type != gjson.String || strings.TrimSpace(value.Str) == "" {
			return true
		}
		key := field.String()
		if strings.HasPrefix(key, "main") {
			for i := range SplitMainLines(value.Str) {
				slots.Set("main_"+strconv.Itoa(i+1)+suffix, s.name)
			}
			return true
		}
		slots.Set(SlotBase(key)+suffix, s.name)
		return true
	})
}

// SlotBase maps a words field name to its voice slot base.
func SlotBase(field string) string {
	switch field {
	case "drop_descrip":
		return "get"
	case "touch":
		return "touch_1"
	case "touch2":
		return "touch_2"
	default:
		return field
	}
}

// SplitMainLines splits a main voice value on "|" and drops blank segments.
func SplitMainLines(value string) []string {
	var lines []string
	for _, part := range strings.Split(value, "|") {
		if part = strings.TrimSpace(part); part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}
