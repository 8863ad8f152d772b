package models

// ServerAggregate sums every PlayerAggregate that had data.
type ServerAggregate struct {
	TotalPlaytime     int64 `json:"total_playtime_ticks"`
	PlayerKills       int64 `json:"player_kills"`
	DamageDealt       int64 `json:"damage_dealt"`
	DamageTaken       int64 `json:"damage_taken"`
	DistanceTravelled int64 `json:"distance_travelled_units"`

	MobsKilled    CategoryBreakdown `json:"mobs_killed"`
	Deaths        CategoryBreakdown `json:"deaths"`
	BlocksMined   CategoryBreakdown `json:"blocks_mined"`
	BlocksPlaced  CategoryBreakdown `json:"blocks_placed"`
	ItemsCrafted  CategoryBreakdown `json:"items_crafted"`
	ItemsBroken   CategoryBreakdown `json:"items_broken"`
	ItemsPickedUp CategoryBreakdown `json:"items_picked_up"`
	ItemsDropped  CategoryBreakdown `json:"items_dropped"`

	// Bookkeeping
	Players         int      `json:"players"`
	PlayersWithData int      `json:"players_with_data"`
	Missing         []string `json:"missing,omitempty"` // ids without data
}

// StatLine is one formatted row of an overview ("Total Playtime", "1.25", "days").
type StatLine struct {
	Label        string `json:"label"`
	Value        int64  `json:"value"`
	DisplayValue string `json:"display_value"`
	Unit         string `json:"unit,omitempty"`
}

// ServerStatsResponse is returned by the server overview endpoint.
type ServerStatsResponse struct {
	Totals ServerAggregate `json:"totals"`
	Lines  []StatLine      `json:"lines"`
}
