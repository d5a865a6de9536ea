package auxtable

import (
	"fmt"

	"alcfg/internal/namecode"
	"alcfg/internal/resource"
)

// ConvertFunc renders one table as a JSON object section.
type ConvertFunc func(table *resource.Table, codes *namecode.Table) ([]byte, error)

// Strategy binds a table to its export file and converter.
type Strategy struct {
	ID      TableID
	File    string
	Fields  []string
	Convert ConvertFunc
}

var strategies = []Strategy{
	{ID: ChatLanguage, File: "chat_language.json", Fields: chatLanguageFields, Convert: convertChatLanguage},
	{ID: SkillDisplay, File: "skill_data_display.json", Fields: skillDisplayFields, Convert: convertSkillDisplay},
	{ID: ActivityShipGroup, File: "activity_ship_group.json", Fields: activityShipGroupFields, Convert: convertActivityShipGroup},
	{ID: SkillData, File: "skill_data_template.json", Fields: skillDataFields, Convert: convertSkillData},
	{ID: GameTip, File: "gametip.json", Fields: gameTipFields, Convert: convertGameTip},
}

var (
	chatLanguageFields      = []string{"id", "name", "content"}
	skillDisplayFields      = []string{"id", "name", "desc", "desc_get"}
	activityShipGroupFields = []string{"id", "name", "ship_group", "group_type"}
	skillDataFields         = []string{"id", "name", "desc", "max_level", "type"}
	gameTipFields           = []string{"key", "tip"}
)

// Strategies returns every registered strategy in TableID order.
func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

// Lookup returns the strategy registered for id.
func Lookup(id TableID) (Strategy, error) {
	for _, s := range strategies {
		if s.ID == id {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("no converter registered for %s", id)
}

func convertChatLanguage(table *resource.Table, codes *namecode.Table) ([]byte, error) {
	return Project(table, codes, chatLanguageFields)
}

func convertSkillDisplay(table *resource.Table, codes *namecode.Table) ([]byte, error) {
	return Project(table, codes, skillDisplayFields)
}

func convertActivityShipGroup(table *resource.Table, codes *namecode.Table) ([]byte, error) {
	return Project(table, codes, activityShipGroupFields)
}

func convertSkillData(table *resource.Table, codes *namecode.Table) ([]byte, error) {
	return Project(table, codes, skillDataFields)
}

func convertGameTip(table *resource.Table, codes *namecode.Table) ([]byte, error) {
	return Project(table, codes, gameTipFields)
}
