package auxtable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/sjson"

	"alcfg/internal/namecode"
	"alcfg/internal/resource"
)

// Section is one converted table.
type Section struct {
	ID      TableID
	Records int
	JSON    []byte
}

// ConvertAll runs every strategy whose table is present in tables. Tables
// that are absent or empty are skipped and reported in the second return.
func ConvertAll(tables map[TableID]*resource.Table, codes *namecode.Table) ([]Section, []TableID, error) {
	var (
		sections []Section
		skipped  []TableID
	)
	for _, s := range strategies {
		table, ok := tables[s.ID]
		if !ok || table == nil || table.Len() == 0 {
			skipped = append(skipped, s.ID)
			continue
		}
		data, err := s.Convert(table, codes)
		if err != nil {
			return nil, nil, fmt.Errorf("convert %s: %w", s.ID, err)
		}
		sections = append(sections, Section{ID: s.ID, Records: table.Len(), JSON: data})
	}
	return sections, skipped, nil
}

// Assemble merges sections into one document, keyed and sorted by section name.
func Assemble(sections []Section) ([]byte, error) {
	ordered := slices.Clone(sections)
	slices.SortFunc(ordered, func(a, b Section) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	doc := []byte("{}")
	for _, s := range ordered {
		var err error
		doc, err = sjson.SetRawBytes(doc, objectKey(s.ID.String()), s.JSON)
		if err != nil {
			return nil, fmt.Errorf("assemble %s: %w", s.ID, err)
		}
	}
	return doc, nil
}
