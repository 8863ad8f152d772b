package logic

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// SequentialCollector aggregates one identity at a time, so at most one
// document request is in flight.
type SequentialCollector struct{}

func (SequentialCollector) Collect(ctx context.Context, identities []models.PlayerIdentity, aggregate AggregateFunc) []models.PlayerAggregate {
	out := make([]models.PlayerAggregate, 0, len(identities))
	for _, identity := range identities {
		out = append(out, aggregate(ctx, identity))
	}
	return out
}

// CollectPlayers runs one pass over identities. It panics when two identities
// share an id: the directory must be deduplicated before it reaches here.
func CollectPlayers(ctx context.Context, identities []models.PlayerIdentity, fetcher Fetcher, collector Collector, logger *zap.Logger) []models.PlayerAggregate {
	mustBeUnique(identities)
	if collector == nil {
		collector = SequentialCollector{}
	}

	start := time.Now()
	pass := NewPass(fetcher, logger)
	aggregates := collector.Collect(ctx, identities, pass.Player)
	passDuration.Observe(time.Since(start).Seconds())
	playersWithoutData.Set(float64(pass.Missing()))

	logger.Sugar().Infow("Aggregation pass finished",
		"pass_id", pass.ID,
		"players", len(identities),
		"without_data", pass.Missing(),
		"duration", time.Since(start),
	)
	return aggregates
}

// AggregateServer fetches every identity in order and folds the results.
// It always returns a result, even when every fetch fails.
func AggregateServer(ctx context.Context, identities []models.PlayerIdentity, fetcher Fetcher, logger *zap.Logger) models.ServerAggregate {
	return MergePlayers(CollectPlayers(ctx, identities, fetcher, SequentialCollector{}, logger))
}

// MergePlayers sums scalar fields and merges breakdowns key-wise over every
// aggregate with data. Order of the input does not affect the result.
func MergePlayers(aggregates []models.PlayerAggregate) models.ServerAggregate {
	total := models.ServerAggregate{
		MobsKilled:    models.CategoryBreakdown{},
		Deaths:        models.CategoryBreakdown{},
		BlocksMined:   models.CategoryBreakdown{},
		BlocksPlaced:  models.CategoryBreakdown{},
		ItemsCrafted:  models.CategoryBreakdown{},
		ItemsBroken:   models.CategoryBreakdown{},
		ItemsPickedUp: models.CategoryBreakdown{},
		ItemsDropped:  models.CategoryBreakdown{},
	}

	for _, p := range aggregates {
		total.Players++
		if !p.HadData {
			total.Missing = append(total.Missing, p.Identity.ID)
			continue
		}
		total.PlayersWithData++

		total.TotalPlaytime += p.PlayedTimeTicks
		total.PlayerKills += p.PlayerKills
		total.DamageDealt += p.DamageDealt
		total.DamageTaken += p.DamageTaken
		total.DistanceTravelled += p.DistanceTravelledUnits

		mergeBreakdown(total.MobsKilled, p.MobsKilled)
		mergeBreakdown(total.Deaths, p.Deaths)
		mergeBreakdown(total.BlocksMined, p.BlocksMined)
		mergeBreakdown(total.BlocksPlaced, p.BlocksPlaced)
		mergeBreakdown(total.ItemsCrafted, p.ItemsCrafted)
		mergeBreakdown(total.ItemsBroken, p.ItemsBroken)
		mergeBreakdown(total.ItemsPickedUp, p.ItemsPickedUp)
		mergeBreakdown(total.ItemsDropped, p.ItemsDropped)
	}
	sort.Strings(total.Missing)
	return total
}

func mergeBreakdown(dst, src models.CategoryBreakdown) {
	for key, n := range src {
		dst[key] += n
	}
}

func mustBeUnique(identities []models.PlayerIdentity) {
	seen := make(map[string]struct{}, len(identities))
	for _, identity := range identities {
		if _, dup := seen[identity.ID]; dup {
			panic(fmt.Sprintf("invariant violation: duplicate player id %q in directory", identity.ID))
		}
		seen[identity.ID] = struct{}{}
	}
}

// ServerOverview formats the totals shown on the server page.
func ServerOverview(s models.ServerAggregate) []models.StatLine {
	deaths := BreakdownTotal(s.Deaths)
	mobs := BreakdownTotal(s.MobsKilled)
	mined := BreakdownTotal(s.BlocksMined)
	placed := BreakdownTotal(s.BlocksPlaced)
	crafted := BreakdownTotal(s.ItemsCrafted)
	broken := BreakdownTotal(s.ItemsBroken)

	return []models.StatLine{
		{Label: "Total Playtime", Value: s.TotalPlaytime, DisplayValue: TicksToDays(s.TotalPlaytime), Unit: "days"},
		countLine("Total Player Kills", s.PlayerKills),
		countLine("Total Deaths", deaths),
		countLine("Total Mobs Killed", mobs),
		countLine("Total Blocks Mined", mined),
		countLine("Total Blocks Placed", placed),
		countLine("Total Items Crafted", crafted),
		countLine("Total Items Broken", broken),
		countLine("Total Damage Dealt", s.DamageDealt),
		countLine("Total Damage Taken", s.DamageTaken),
		{Label: "Total Distance Travelled", Value: s.DistanceTravelled, DisplayValue: UnitsToKilometers(s.DistanceTravelled), Unit: "km"},
	}
}

func countLine(label string, n int64) models.StatLine {
	return models.StatLine{Label: label, Value: n, DisplayValue: GroupThousands(n)}
}
