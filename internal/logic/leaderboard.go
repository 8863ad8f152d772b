package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// LeaderboardSize is the number of ranked players per tab.
const LeaderboardSize = 10

// MetricValue maps a tab to the aggregate field it ranks by.
func MetricValue(p models.PlayerAggregate, metric models.Metric) int64 {
	switch metric {
	case models.MetricPlayedTime:
		return p.PlayedTimeTicks
	case models.MetricMobsKilled:
		return BreakdownTotal(p.MobsKilled)
	case models.MetricPlayerKills:
		return p.PlayerKills
	case models.MetricDeaths:
		return BreakdownTotal(p.Deaths)
	case models.MetricBlocksMined:
		return BreakdownTotal(p.BlocksMined)
	case models.MetricBlocksPlaced:
		return BreakdownTotal(p.BlocksPlaced)
	case models.MetricItemsCrafted:
		return BreakdownTotal(p.ItemsCrafted)
	case models.MetricItemsBroken:
		return BreakdownTotal(p.ItemsBroken)
	case models.MetricDamage:
		return p.DamageDealt
	case models.MetricDistance:
		return p.DistanceTravelledUnits
	}
	return 0
}

// FormatMetric renders a raw metric value and its unit.
func FormatMetric(metric models.Metric, value int64) (display, unit string) {
	switch metric {
	case models.MetricPlayedTime:
		return TicksToDays(value), "days"
	case models.MetricDistance:
		return UnitsToKilometers(value), "km"
	default:
		return GroupThousands(value), ""
	}
}

// ParseMetric accepts a slug ("played_time") or a tab title ("Played Time").
// An empty string selects the first tab.
func ParseMetric(s string) (models.Metric, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Metrics[0], nil
	}
	slug := models.Metric(strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, " ", "_"), "-", "_")))
	if slug.Valid() {
		return slug, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownMetric, s)
}

// RankPlayers sorts aggregates by metric, descending, keeping input order for
// equal values, and returns at most limit entries (LeaderboardSize when
// limit <= 0).
func RankPlayers(aggregates []models.PlayerAggregate, metric models.Metric, limit int) []models.LeaderboardEntry {
	if limit <= 0 {
		limit = LeaderboardSize
	}

	type scored struct {
		player models.PlayerIdentity
		value  int64
	}
	rows := make([]scored, len(aggregates))
	for i, p := range aggregates {
		rows[i] = scored{player: p.Identity, value: MetricValue(p, metric)}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].value > rows[j].value
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for i, r := range rows {
		display, unit := FormatMetric(metric, r.value)
		entries = append(entries, models.LeaderboardEntry{
			Rank:         i + 1,
			Player:       r.player,
			RawValue:     r.value,
			DisplayValue: display,
			Unit:         unit,
		})
	}
	return entries
}
