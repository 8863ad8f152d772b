package logic

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/krazyminecraft/stats-api/internal/models"
)

func TestAggregatePlayer(t *testing.T) {
	p := player("a")
	d := doc(map[string]map[string]int64{
		models.CategoryCustom: {
			models.CustomPlayTime:       1000,
			models.CustomPlayerKills:    2,
			models.CustomDamageDealt:    300,
			models.CustomDamageTaken:    400,
			"minecraft:walk_one_cm":     50,
			"minecraft:sprint_one_cm":   25,
			"minecraft:minecart_one_cm": 9999,
		},
		models.CategoryKilled:   {"minecraft:zombie": 4, "minecraft:creeper": 1},
		models.CategoryKilledBy: {"minecraft:skeleton": 2},
		models.CategoryMined:    {"minecraft:stone": 64},
		models.CategoryUsed:     {"minecraft:torch": 12},
		models.CategoryCrafted:  {"minecraft:stick": 8},
		models.CategoryBroken:   {"minecraft:wooden_pickaxe": 1},
	})

	got := AggregatePlayer(p, d)

	assert.True(t, got.HadData)
	assert.Equal(t, p, got.Identity)
	assert.Equal(t, int64(1000), got.PlayedTimeTicks)
	assert.Equal(t, int64(2), got.PlayerKills)
	assert.Equal(t, int64(300), got.DamageDealt)
	assert.Equal(t, int64(400), got.DamageTaken)
	assert.Equal(t, int64(75), got.DistanceTravelledUnits)
	assert.Equal(t, models.CategoryBreakdown{"minecraft:zombie": 4, "minecraft:creeper": 1}, got.MobsKilled)
	assert.Equal(t, models.CategoryBreakdown{"minecraft:skeleton": 2}, got.Deaths)
	assert.Equal(t, models.CategoryBreakdown{"minecraft:torch": 12}, got.BlocksPlaced)
	assert.Empty(t, got.ItemsPickedUp)
}

func TestAggregatePlayer_NoData(t *testing.T) {
	tests := []struct {
		name string
		doc  *models.RawStatDocument
	}{
		{"not found", nil},
		{"missing stats", &models.RawStatDocument{DataVersion: 3955}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregatePlayer(player("d"), tt.doc)
			assert.False(t, got.HadData)
			assert.Zero(t, got.PlayedTimeTicks)
			assert.Zero(t, got.DistanceTravelledUnits)
			assert.NotNil(t, got.MobsKilled)
			assert.Empty(t, got.MobsKilled)
		})
	}
}

func TestAggregatePlayer_AbsentCustom(t *testing.T) {
	d := doc(map[string]map[string]int64{
		models.CategoryMined: {"minecraft:dirt": 3},
	})
	got := AggregatePlayer(player("c"), d)

	assert.True(t, got.HadData)
	assert.Zero(t, got.PlayedTimeTicks)
	assert.Zero(t, got.PlayerKills)
	assert.Zero(t, got.DamageDealt)
	assert.Zero(t, got.DamageTaken)
	assert.Zero(t, got.DistanceTravelledUnits)
}

func TestFetchOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, FetchOutcome(nil))
	assert.Equal(t, OutcomeNotFound, FetchOutcome(fmt.Errorf("file: %w", models.ErrDocumentNotFound)))
	assert.Equal(t, OutcomeMalformed, FetchOutcome(fmt.Errorf("decode: %w", models.ErrMalformedDocument)))
	assert.Equal(t, OutcomeError, FetchOutcome(errors.New("connection reset")))
	assert.Equal(t, OutcomeError, FetchOutcome(context.Canceled))
}

func TestPass_ReportsFailureOncePerIdentity(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fetcher := &mapFetcher{
		docs: map[string]*models.RawStatDocument{"ok": doc(map[string]map[string]int64{})},
		errs: map[string]error{
			"bad":  fmt.Errorf("decode: %w", models.ErrMalformedDocument),
			"down": errors.New("connection refused"),
		},
	}
	pass := NewPass(fetcher, zap.New(core))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		pass.Player(ctx, player("missing"))
		pass.Player(ctx, player("bad"))
		pass.Player(ctx, player("down"))
		pass.Player(ctx, player("ok"))
	}

	assert.Equal(t, 3, pass.Missing())
	for _, id := range []string{"missing", "bad", "down"} {
		assert.Equal(t, 1, logs.FilterField(zap.String("player_id", id)).Len(), id)
	}
	assert.Zero(t, logs.FilterField(zap.String("player_id", "ok")).Len())

	notFound := logs.FilterField(zap.String("outcome", OutcomeNotFound)).All()
	require.Len(t, notFound, 1)
	assert.Equal(t, zapcore.InfoLevel, notFound[0].Level)
	malformed := logs.FilterField(zap.String("outcome", OutcomeMalformed)).All()
	require.Len(t, malformed, 1)
	assert.Equal(t, zapcore.WarnLevel, malformed[0].Level)
}

func TestPass_DocumentValidates(t *testing.T) {
	fetcher := &mapFetcher{
		docs: map[string]*models.RawStatDocument{"nostats": {DataVersion: 1}},
	}
	pass := NewPass(fetcher, zap.NewNop())

	assert.Nil(t, pass.Document(context.Background(), player("nostats")))
	assert.Equal(t, 1, pass.Missing())
	assert.NotEmpty(t, pass.ID)
}
