package logic

import (
	"context"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// Fetcher retrieves one player's raw statistics. Implementations return
// models.ErrDocumentNotFound when the player has no document and wrap
// models.ErrMalformedDocument when the payload cannot be decoded.
type Fetcher interface {
	Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error)

func (f FetcherFunc) Fetch(ctx context.Context, identity models.PlayerIdentity) (*models.RawStatDocument, error) {
	return f(ctx, identity)
}

// DirectoryLoader returns the ordered, id-unique player directory.
type DirectoryLoader interface {
	Load(ctx context.Context) ([]models.PlayerIdentity, error)
}

// Collector runs one aggregation per identity and returns the results in
// input order.
type Collector interface {
	Collect(ctx context.Context, identities []models.PlayerIdentity, aggregate AggregateFunc) []models.PlayerAggregate
}

// AggregateFunc produces the aggregate of one identity. It must not fail.
type AggregateFunc func(ctx context.Context, identity models.PlayerIdentity) models.PlayerAggregate

// StatsService is consumed by the HTTP handlers and the CLI.
type StatsService interface {
	Players(ctx context.Context) ([]models.PlayerIdentity, error)
	ServerStats(ctx context.Context) (*models.ServerStatsResponse, error)
	Leaderboard(ctx context.Context, metric models.Metric, limit int) (*models.LeaderboardResponse, error)
	PlayerDetail(ctx context.Context, name string) (*models.PlayerDetailResponse, error)
	PlayerCategory(ctx context.Context, name string, q models.CategoryQuery) (*models.CategoryListing, error)
	PlayerSummary(ctx context.Context, name string) (*models.PlayerSummary, error)
}
