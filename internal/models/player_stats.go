package models

// CategoryBreakdown maps a sub-key (item, block, mob or damage cause) to its count.
type CategoryBreakdown map[string]int64

// PlayerAggregate is the derived statistics record for one identity in one pass.
// When HadData is false the document was missing or malformed and every
// numeric field is zero.
type PlayerAggregate struct {
	Identity               PlayerIdentity `json:"player"`
	PlayedTimeTicks        int64          `json:"played_time_ticks"`
	PlayerKills            int64          `json:"player_kills"`
	DamageDealt            int64          `json:"damage_dealt"`
	DamageTaken            int64          `json:"damage_taken"`
	DistanceTravelledUnits int64          `json:"distance_travelled_units"`

	MobsKilled    CategoryBreakdown `json:"mobs_killed"`
	Deaths        CategoryBreakdown `json:"deaths"`
	BlocksMined   CategoryBreakdown `json:"blocks_mined"`
	BlocksPlaced  CategoryBreakdown `json:"blocks_placed"`
	ItemsCrafted  CategoryBreakdown `json:"items_crafted"`
	ItemsBroken   CategoryBreakdown `json:"items_broken"`
	ItemsPickedUp CategoryBreakdown `json:"items_picked_up"`
	ItemsDropped  CategoryBreakdown `json:"items_dropped"`

	HadData bool `json:"had_data"`
}

// PlayerDetailResponse is the per-player view returned by the API.
type PlayerDetailResponse struct {
	Aggregate PlayerAggregate `json:"aggregate"`
	Lines     []StatLine      `json:"lines"`
}
