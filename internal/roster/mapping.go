package roster

import "alcfg/internal/valueutil"

// IDMapping holds the derived id lookups between source and renumbered ids.
type IDMapping struct {
	Ship ShipMapping `json:"ship"`
	Skin SkinMapping `json:"skin"`
}

// ShipMapping maps original ship ids to dense ranks and back.
type ShipMapping struct {
	IDToID2 *valueutil.Ordered `json:"id_to_id2"`
	ID2ToID *valueutil.Ordered `json:"id2_to_id"`
}

// SkinMapping maps renumbered skin ids to source ship ids and back.
type SkinMapping struct {
	IDToOriginal *valueutil.Ordered `json:"id_to_original"`
	OriginalToID *valueutil.Ordered `json:"original_to_id"`
}

// BuildIDMapping derives both lookup directions for ships and skins.
func BuildIDMapping(ships []ShipRecord, skins []SkinRecord) IDMapping {
	m := IDMapping{
		Ship: ShipMapping{
			IDToID2: valueutil.NewOrdered(len(ships)),
			ID2ToID: valueutil.NewOrdered(len(ships)),
		},
		Skin: SkinMapping{
			IDToOriginal: valueutil.NewOrdered(len(skins)),
			OriginalToID: valueutil.NewOrdered(len(skins)),
		},
	}
	for _, s := range ships {
		m.Ship.IDToID2.Set(s.ID, s.ID2)
		m.Ship.ID2ToID.Set(s.ID2, s.ID)
	}
	for _, s := range skins {
		m.Skin.IDToOriginal.Set(s.ID, s.OriginalID)
		m.Skin.OriginalToID.Set(s.OriginalID, s.ID)
	}
	return m
}
