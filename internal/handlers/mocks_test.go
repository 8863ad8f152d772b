package handlers

import (
	"context"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// MockStatsService implements logic.StatsService for testing
type MockStatsService struct {
	PlayersFunc        func(ctx context.Context) ([]models.PlayerIdentity, error)
	ServerStatsFunc    func(ctx context.Context) (*models.ServerStatsResponse, error)
	LeaderboardFunc    func(ctx context.Context, metric models.Metric, limit int) (*models.LeaderboardResponse, error)
	PlayerDetailFunc   func(ctx context.Context, name string) (*models.PlayerDetailResponse, error)
	PlayerCategoryFunc func(ctx context.Context, name string, q models.CategoryQuery) (*models.CategoryListing, error)
	PlayerSummaryFunc  func(ctx context.Context, name string) (*models.PlayerSummary, error)
}

func (m *MockStatsService) Players(ctx context.Context) ([]models.PlayerIdentity, error) {
	if m.PlayersFunc != nil {
		return m.PlayersFunc(ctx)
	}
	return nil, nil
}

func (m *MockStatsService) ServerStats(ctx context.Context) (*models.ServerStatsResponse, error) {
	if m.ServerStatsFunc != nil {
		return m.ServerStatsFunc(ctx)
	}
	return &models.ServerStatsResponse{}, nil
}

func (m *MockStatsService) Leaderboard(ctx context.Context, metric models.Metric, limit int) (*models.LeaderboardResponse, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, metric, limit)
	}
	return &models.LeaderboardResponse{Metric: metric, Title: metric.Title()}, nil
}

func (m *MockStatsService) PlayerDetail(ctx context.Context, name string) (*models.PlayerDetailResponse, error) {
	if m.PlayerDetailFunc != nil {
		return m.PlayerDetailFunc(ctx, name)
	}
	return &models.PlayerDetailResponse{}, nil
}

func (m *MockStatsService) PlayerCategory(ctx context.Context, name string, q models.CategoryQuery) (*models.CategoryListing, error) {
	if m.PlayerCategoryFunc != nil {
		return m.PlayerCategoryFunc(ctx, name, q)
	}
	return &models.CategoryListing{}, nil
}

func (m *MockStatsService) PlayerSummary(ctx context.Context, name string) (*models.PlayerSummary, error) {
	if m.PlayerSummaryFunc != nil {
		return m.PlayerSummaryFunc(ctx, name)
	}
	return &models.PlayerSummary{Player: models.PlayerIdentity{ID: "id", DisplayName: name}, MostUsedItem: "-"}, nil
}
