package roster

import (
	"time"

	"alcfg/internal/namecode"
	"alcfg/internal/resource"
	"alcfg/internal/valueutil"
)

const (
	// SchemaVersion stamps the combined document.
	SchemaVersion = "3.1"
	// TimeLayout is the local timestamp format used in generated metadata.
	TimeLayout = "2006-01-02T15:04:05.000000"
)

// Combined is the al_combined_final.json document.
type Combined struct {
	Metadata   Metadata           `json:"metadata"`
	Ships      []ShipRecord       `json:"ships"`
	Skins      []SkinRecord       `json:"skins"`
	Words      *valueutil.Ordered `json:"words"`
	IDMapping  IDMapping          `json:"id_mapping"`
	ZumingData ZumingView         `json:"zuming_data"`
}

// Metadata describes the generated document.
type Metadata struct {
	Version      string   `json:"version"`
	GenerateTime string   `json:"generate_time"`
	IDScheme     IDScheme `json:"id_scheme"`
}

// IDScheme documents how each section's ids relate to the source.
type IDScheme struct {
	Ships string `json:"ships"`
	Skins string `json:"skins"`
	Words string `json:"words"`
}

var defaultIDScheme = IDScheme{
	Ships: "id=原始ID, id2=连续编号",
	Skins: "id=新编号, original_id=舰船原始ID",
	Words: "保留原始ID",
}

// ZumingView is the reduced ship listing written to zuming.json.
type ZumingView struct {
	Ships []ZumingShip `json:"ships"`
}

// ZumingShip is a ship reduced to id, name, and group.
type ZumingShip struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShipGroup string `json:"ship_group"`
}

// GenerateCombined composes ships, skins, words, id mappings, and the zuming
// view into one document stamped with now.
func GenerateCombined(ships, words *resource.Table, codes *namecode.Table, now time.Time) Combined {
	entries := substituted(ships, codes)
	shipRecords := shipsFrom(entries)
	skinRecords := skinsFrom(entries)
	return Combined{
		Metadata: Metadata{
			Version:      SchemaVersion,
			GenerateTime: now.Format(TimeLayout),
			IDScheme:     defaultIDScheme,
		},
		Ships:      shipRecords,
		Skins:      skinRecords,
		Words:      ProcessWords(words, codes),
		IDMapping:  BuildIDMapping(shipRecords, skinRecords),
		ZumingData: BuildZumingView(shipRecords),
	}
}

// BuildZumingView reduces ships to id, name, and group.
func BuildZumingView(ships []ShipRecord) ZumingView {
	out := ZumingView{Ships: make([]ZumingShip, 0, len(ships))}
	for _, s := range ships {
		out.Ships = append(out.Ships, ZumingShip{ID: s.ID, Name: s.Name, ShipGroup: s.ShipGroup})
	}
	return out
}
