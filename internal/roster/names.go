package roster

import (
	"strings"

	"alcfg/internal/resource"
)

// NameView is the name.json document.
type NameView struct {
	Ships []NameEntry `json:"ships"`
}

// NameEntry pairs a ship's display fields with its painting resource list.
type NameEntry struct {
	Name      string `json:"name"`
	Painting  string `json:"painting"`
	ShipGroup string `json:"ship_group"`
	ResList   any    `json:"res_list"`
}

// BuildNameView joins ships against the painting filter table by
// case-insensitive painting name. Ships without a filter entry get an empty
// res_list. A nil filter is treated as empty.
func BuildNameView(ships []ShipRecord, filter *resource.Table) NameView {
	byPainting := map[string]map[string]any{}
	if filter != nil {
		for _, key := range filter.Keys() {
			rec, ok := filter.Object(key)
			if !ok {
				continue
			}
			byPainting[strings.ToLower(key)] = rec
		}
	}

	out := NameView{Ships: make([]NameEntry, 0, len(ships))}
	for _, s := range ships {
		var resList any = []any{}
		if rec, ok := byPainting[strings.ToLower(s.Painting)]; ok {
			if v, ok := rec["res_list"]; ok {
				resList = v
			}
		}
		out.Ships = append(out.Ships, NameEntry{
			Name:      s.Name,
			Painting:  s.Painting,
			ShipGroup: s.ShipGroup,
			ResList:   resList,
		})
	}
	return out
}
