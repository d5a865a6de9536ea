package auxtable

import "fmt"

// TableID enumerates the auxiliary tables.
type TableID int

const (
	ChatLanguage TableID = iota
	SkillDisplay
	ActivityShipGroup
	SkillData
	GameTip
)

var tableNames = [...]string{
	ChatLanguage:      "chat_language",
	SkillDisplay:      "skill_display",
	ActivityShipGroup: "activity_ship_group",
	SkillData:         "skill_data",
	GameTip:           "gametip",
}

// String returns the section name used in the consolidated document.
func (id TableID) String() string {
	if id < 0 || int(id) >= len(tableNames) {
		return fmt.Sprintf("TableID(%d)", int(id))
	}
	return tableNames[id]
}

// ParseTableID resolves a section name back to its identifier.
func ParseTableID(name string) (TableID, error) {
	for i, n := range tableNames {
		if n == name {
			return TableID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown aux table %q", name)
}
