package roster

import (
	"strconv"

	"github.com/tidwall/gjson"

	"alcfg/internal/namecode"
	"alcfg/internal/resource"
	"alcfg/internal/valueutil"
)

// ShipRecord is one ship with its original id and dense rank.
type ShipRecord struct {
	ID        string `json:"id"`
	ID2       string `json:"id2"`
	Name      string `json:"name"`
	ShipGroup string `json:"ship_group"`
	Painting  string `json:"painting"`
}

// SkinRecord is a renumbered skin pointing back at its source ship id.
type SkinRecord struct {
	ID         string `json:"id"`
	OriginalID string `json:"original_id"`
	Name       string `json:"name"`
	Painting   string `json:"painting"`
}

type entry struct {
	key    string
	record map[string]any
}

// substituted returns the object records of table in numeric key order with
// namecodes resolved. Non-object records are dropped.
func substituted(table *resource.Table, codes *namecode.Table) []entry {
	if table == nil {
		return nil
	}
	keys := valueutil.SortedKeys(table.Keys())
	out := make([]entry, 0, len(keys))
	for _, key := range keys {
		rec, ok := table.Object(key)
		if !ok {
			continue
		}
		out = append(out, entry{key: key, record: codes.SubstituteRecord(rec)})
	}
	return out
}

// ProcessShips builds ship records ranked by numeric source id.
func ProcessShips(ships *resource.Table, codes *namecode.Table) []ShipRecord {
	return shipsFrom(substituted(ships, codes))
}

// ProcessSkins builds skin records for every template entry carrying a painting key.
func ProcessSkins(ships *resource.Table, codes *namecode.Table) []SkinRecord {
	return skinsFrom(substituted(ships, codes))
}

func shipsFrom(entries []entry) []ShipRecord {
	out := make([]ShipRecord, 0, len(entries))
	for i, e := range entries {
		out = append(out, ShipRecord{
			ID:        e.key,
			ID2:       strconv.Itoa(i + 1),
			Name:      valueutil.String(e.record["name"]),
			ShipGroup: shipGroup(e.record["ship_group"]),
			Painting:  valueutil.String(e.record["painting"]),
		})
	}
	return out
}

func skinsFrom(entries []entry) []SkinRecord {
	var out []SkinRecord
	for _, e := range entries {
		painting, ok := e.record["painting"]
		if !ok {
			continue
		}
		out = append(out, SkinRecord{
			ID:         strconv.Itoa(len(out) + 1),
			OriginalID: e.key,
			Name:       valueutil.String(e.record["name"]),
			Painting:   valueutil.String(painting),
		})
	}
	if out == nil {
		out = []SkinRecord{}
	}
	return out
}

// shipGroup picks the first truthy element of a list, or the value itself
// when it is a truthy scalar.
func shipGroup(v any) string {
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if valueutil.Truthy(item) {
				return valueutil.String(item)
			}
		}
		return ""
	}
	if valueutil.Truthy(v) {
		return valueutil.String(v)
	}
	return ""
}

// ProcessWords resolves namecodes in every word record and tags it with the
// key it was stored under. Records and their fields keep source order.
func ProcessWords(words *resource.Table, codes *namecode.Table) *valueutil.Ordered {
	if words == nil {
		return valueutil.NewOrdered(0)
	}
	out := valueutil.NewOrdered(words.Len())
	for _, key := range words.Keys() {
		rec, ok := words.Object(key)
		if !ok {
			continue
		}
		processed := valueutil.NewOrdered(len(rec) + 1)
		gjson.Parse(words.Raw(key)).ForEach(func(field, _ gjson.Result) bool {
			name := field.String()
			if value, ok := rec[name]; ok {
				processed.Set(name, codes.Substitute(value))
			}
			return true
		})
		processed.Set("linked_ship_id", key)
		out.Set(key, processed)
	}
	return out
}
