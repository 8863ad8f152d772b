package models

// PlayerSummary is the shareable card for one player.
type PlayerSummary struct {
	Player         PlayerIdentity `json:"player"`
	PlayedTimeDays string         `json:"played_time_days"`
	TravelledKm    string         `json:"travelled_km"`
	MobsKilled     int64          `json:"mobs_killed"`
	ItemsCrafted   int64          `json:"items_crafted"`
	BlocksMined    int64          `json:"blocks_mined"`
	ItemsPickedUp  int64          `json:"items_picked_up"`
	MostUsedItem   string         `json:"most_used_item"`
	HadData        bool           `json:"had_data"`
}

// StatRow is one counter of the full per-category listing.
type StatRow struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Value        int64  `json:"value"`
	DisplayValue string `json:"display_value"`
}

// CategoryListing is the detail view of one category for one player.
type CategoryListing struct {
	Player   PlayerIdentity `json:"player"`
	Category string         `json:"category"`
	Rows     []StatRow      `json:"rows"`
	HadData  bool           `json:"had_data"`
}
