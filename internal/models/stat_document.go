package models

import "fmt"

// Category keys of the raw statistics format.
const (
	CategoryCustom   = "minecraft:custom"
	CategoryKilled   = "minecraft:killed"
	CategoryKilledBy = "minecraft:killed_by"
	CategoryMined    = "minecraft:mined"
	CategoryUsed     = "minecraft:used"
	CategoryCrafted  = "minecraft:crafted"
	CategoryBroken   = "minecraft:broken"
	CategoryPickedUp = "minecraft:picked_up"
	CategoryDropped  = "minecraft:dropped"
)

// Named counters inside minecraft:custom.
const (
	CustomPlayTime    = "minecraft:play_time"
	CustomPlayerKills = "minecraft:player_kills"
	CustomDamageDealt = "minecraft:damage_dealt"
	CustomDamageTaken = "minecraft:damage_taken"
)

// RawStatDocument is one player's statistics file as exported by the game server.
// Stats maps a category key to its counters. For minecraft:custom the counters
// are independent named scalars; for every other category they form a
// breakdown by item, block, mob or damage cause.
type RawStatDocument struct {
	Stats       map[string]map[string]int64 `json:"stats"`
	DataVersion int                         `json:"DataVersion,omitempty"`
}

// Validate reports whether the document has the structure the aggregators need.
func (d *RawStatDocument) Validate() error {
	if d == nil {
		return ErrDocumentNotFound
	}
	if d.Stats == nil {
		return fmt.Errorf("%w: missing stats object", ErrMalformedDocument)
	}
	return nil
}
