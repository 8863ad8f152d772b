package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/models"
)

func newTestService() (StatsService, *mapFetcher) {
	players := []models.PlayerIdentity{
		{ID: "a", DisplayName: "Alex"},
		{ID: "b", DisplayName: "Steve"},
		{ID: "c", DisplayName: "Notch"},
	}
	fetcher := &mapFetcher{docs: map[string]*models.RawStatDocument{
		"a": doc(map[string]map[string]int64{
			models.CategoryCustom: {models.CustomPlayTime: 100, "minecraft:jump": 4},
			models.CategoryKilled: {"minecraft:zombie": 2},
		}),
		"b": doc(map[string]map[string]int64{
			models.CategoryCustom: {models.CustomPlayTime: 300},
			models.CategoryKilled: {"minecraft:zombie": 1, "minecraft:creeper": 5},
		}),
	}}
	svc := NewStatsService(ServiceConfig{
		Directory: staticDirectory{players: players},
		Fetcher:   fetcher,
		Logger:    zap.NewNop(),
	})
	return svc, fetcher
}

func TestStatsService_ServerStats(t *testing.T) {
	svc, fetcher := newTestService()

	got, err := svc.ServerStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(400), got.Totals.TotalPlaytime)
	assert.Equal(t, models.CategoryBreakdown{"minecraft:zombie": 3, "minecraft:creeper": 5}, got.Totals.MobsKilled)
	assert.Equal(t, []string{"c"}, got.Totals.Missing)
	assert.Len(t, got.Lines, 11)
	assert.Equal(t, []string{"a", "b", "c"}, fetcher.calls)
}

func TestStatsService_Leaderboard(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.Leaderboard(context.Background(), models.MetricMobsKilled, 2)
	require.NoError(t, err)

	assert.Equal(t, "Mobs Killed", got.Title)
	assert.Equal(t, 3, got.Total)
	require.Len(t, got.Players, 2)
	assert.Equal(t, "Steve", got.Players[0].Player.DisplayName)
	assert.Equal(t, "6", got.Players[0].DisplayValue)

	_, err = svc.Leaderboard(context.Background(), "kills", 10)
	assert.True(t, errors.Is(err, models.ErrUnknownMetric))
}

func TestStatsService_PlayerViews(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	detail, err := svc.PlayerDetail(ctx, " Alex ")
	require.NoError(t, err)
	assert.True(t, detail.Aggregate.HadData)
	assert.Equal(t, int64(100), detail.Aggregate.PlayedTimeTicks)

	missing, err := svc.PlayerDetail(ctx, "Notch")
	require.NoError(t, err)
	assert.False(t, missing.Aggregate.HadData)

	listing, err := svc.PlayerCategory(ctx, "Alex", models.CategoryQuery{Category: "custom", Sort: "high"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryCustom, listing.Category)
	require.Len(t, listing.Rows, 2)
	assert.Equal(t, "minecraft:play_time", listing.Rows[0].Key)

	summary, err := svc.PlayerSummary(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Steve", summary.Player.DisplayName)
	assert.Equal(t, int64(6), summary.MobsKilled)

	_, err = svc.PlayerDetail(ctx, "Herobrine")
	assert.True(t, errors.Is(err, models.ErrPlayerNotFound))

	_, err = svc.PlayerCategory(ctx, "Alex", models.CategoryQuery{Category: "stats"})
	assert.True(t, errors.Is(err, models.ErrUnknownCategory))
}

func TestStatsService_DirectoryError(t *testing.T) {
	svc := NewStatsService(ServiceConfig{
		Directory: staticDirectory{err: errors.New("usercache.json: no such file")},
		Fetcher:   &mapFetcher{},
	})

	_, err := svc.ServerStats(context.Background())
	assert.Error(t, err)
}

func TestDedupeAndFindPlayer(t *testing.T) {
	in := []models.PlayerIdentity{
		{ID: "a", DisplayName: "Alex"},
		{ID: " a ", DisplayName: "Alex2"},
		{ID: "", DisplayName: "Ghost"},
		{ID: "b", DisplayName: "Steve"},
	}
	got := Dedupe(in, zap.NewNop().Sugar())
	require.Len(t, got, 2)
	assert.Equal(t, "Alex", got[0].DisplayName)

	p, err := FindPlayer(got, "Steve")
	require.NoError(t, err)
	assert.Equal(t, "b", p.ID)

	_, err = FindPlayer(got, "")
	assert.True(t, errors.Is(err, models.ErrPlayerNotFound))
}
