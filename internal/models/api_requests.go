package models

// CategoryQuery holds the query parameters of the per-player listing.
type CategoryQuery struct {
	Category string `validate:"required,oneof=custom crafted dropped killed killed_by mined picked_up used broken"`
	Search   string `validate:"max=64"`
	Sort     string `validate:"oneof=high low"`
}

// LeaderboardQuery holds the query parameters of a leaderboard request.
type LeaderboardQuery struct {
	Limit int `validate:"min=1,max=100"`
}
