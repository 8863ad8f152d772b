package models

// Metric is one of the leaderboard tabs.
type Metric string

const (
	MetricPlayedTime   Metric = "played_time"
	MetricMobsKilled   Metric = "mobs_killed"
	MetricPlayerKills  Metric = "player_kills"
	MetricDeaths       Metric = "deaths"
	MetricBlocksMined  Metric = "blocks_mined"
	MetricBlocksPlaced Metric = "blocks_placed"
	MetricItemsCrafted Metric = "items_crafted"
	MetricItemsBroken  Metric = "items_broken"
	MetricDamage       Metric = "damage"
	MetricDistance     Metric = "distance"
)

// Metrics lists the leaderboard tabs in display order.
var Metrics = []Metric{
	MetricPlayedTime,
	MetricMobsKilled,
	MetricPlayerKills,
	MetricDeaths,
	MetricBlocksMined,
	MetricBlocksPlaced,
	MetricItemsCrafted,
	MetricItemsBroken,
	MetricDamage,
	MetricDistance,
}

var metricTitles = map[Metric]string{
	MetricPlayedTime:   "Played Time",
	MetricMobsKilled:   "Mobs Killed",
	MetricPlayerKills:  "Player Kills",
	MetricDeaths:       "Deaths",
	MetricBlocksMined:  "Blocks Mined",
	MetricBlocksPlaced: "Blocks Placed",
	MetricItemsCrafted: "Items Crafted",
	MetricItemsBroken:  "Items Broken",
	MetricDamage:       "Damage",
	MetricDistance:     "Distance",
}

// Title returns the tab label, e.g. "Played Time".
func (m Metric) Title() string {
	return metricTitles[m]
}

// Valid reports whether m is a known tab.
func (m Metric) Valid() bool {
	_, ok := metricTitles[m]
	return ok
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank         int            `json:"rank"`
	Player       PlayerIdentity `json:"player"`
	RawValue     int64          `json:"value"`
	DisplayValue string         `json:"display_value"`
	Unit         string         `json:"unit,omitempty"`
}

// LeaderboardResponse wraps a ranked metric for the API.
type LeaderboardResponse struct {
	Metric  Metric             `json:"metric"`
	Title   string             `json:"title"`
	Players []LeaderboardEntry `json:"players"`
	Total   int                `json:"total"`
}

// MetricInfo describes an available tab.
type MetricInfo struct {
	Metric Metric `json:"metric"`
	Title  string `json:"title"`
}
