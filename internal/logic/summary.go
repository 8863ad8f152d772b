package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/krazyminecraft/stats-api/internal/models"
)

var (
	timeKeySet     = toSet(TimeKeys)
	distanceKeySet = toSet(DistanceKeys)
)

func toSet(keys []string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// CategoryKey expands a short category name ("killed_by") to its document key.
func CategoryKey(short string) (string, error) {
	key := short
	if !strings.HasPrefix(key, namespacePrefix) {
		key = namespacePrefix + key
	}
	if key == models.CategoryCustom {
		return key, nil
	}
	for _, c := range BreakdownCategories {
		if c == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownCategory, short)
}

// FormatStatValue renders one counter of the detail listing.
func FormatStatValue(key string, value int64) string {
	if _, ok := timeKeySet[key]; ok {
		return TicksToDays(value) + " Days"
	}
	if _, ok := distanceKeySet[key]; ok {
		return UnitsToKilometers(value) + " km"
	}
	return GroupThousands(value)
}

// ListCategory lists every counter of one category, filtered by a
// case-insensitive search on the label and sorted by value ("high" or "low").
// Equal values are ordered by key.
func ListCategory(doc *models.RawStatDocument, category, search, order string) []models.StatRow {
	breakdown := ExtractBreakdown(doc, category)
	search = strings.ToLower(strings.TrimSpace(search))

	rows := make([]models.StatRow, 0, len(breakdown))
	for key, value := range breakdown {
		label := HumanizeKey(key)
		if search != "" && !strings.Contains(strings.ToLower(label), search) {
			continue
		}
		rows = append(rows, models.StatRow{
			Key:          key,
			Label:        label,
			Value:        value,
			DisplayValue: FormatStatValue(key, value),
		})
	}

	ascending := order == "low"
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			if ascending {
				return rows[i].Value < rows[j].Value
			}
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// BuildSummary derives the shareable card of one player. Travelled distance
// uses the wide set of distance counters, unlike the leaderboard.
func BuildSummary(identity models.PlayerIdentity, doc *models.RawStatDocument) models.PlayerSummary {
	summary := models.PlayerSummary{
		Player:         identity,
		PlayedTimeDays: TicksToDays(0),
		TravelledKm:    UnitsToKilometers(0),
		MostUsedItem:   "-",
	}
	if doc.Validate() != nil {
		return summary
	}

	summary.HadData = true
	summary.PlayedTimeDays = TicksToDays(ExtractCustom(doc, models.CustomPlayTime))
	summary.TravelledKm = UnitsToKilometers(SumCustom(doc, DistanceKeys))
	summary.MobsKilled = BreakdownTotal(ExtractBreakdown(doc, models.CategoryKilled))
	summary.ItemsCrafted = BreakdownTotal(ExtractBreakdown(doc, models.CategoryCrafted))
	summary.BlocksMined = BreakdownTotal(ExtractBreakdown(doc, models.CategoryMined))
	summary.ItemsPickedUp = BreakdownTotal(ExtractBreakdown(doc, models.CategoryPickedUp))
	if key, ok := topKey(ExtractBreakdown(doc, models.CategoryUsed)); ok {
		summary.MostUsedItem = HumanizeKey(key)
	}
	return summary
}

func topKey(b models.CategoryBreakdown) (string, bool) {
	var (
		best  string
		top   int64
		found bool
	)
	for key, n := range b {
		if !found || n > top || (n == top && key < best) {
			best, top, found = key, n, true
		}
	}
	return best, found
}

// PlayerLines formats one player's aggregate the way the server overview does.
func PlayerLines(p models.PlayerAggregate) []models.StatLine {
	return []models.StatLine{
		{Label: "Played Time", Value: p.PlayedTimeTicks, DisplayValue: TicksToDays(p.PlayedTimeTicks), Unit: "days"},
		countLine("Player Kills", p.PlayerKills),
		countLine("Deaths", BreakdownTotal(p.Deaths)),
		countLine("Mobs Killed", BreakdownTotal(p.MobsKilled)),
		countLine("Blocks Mined", BreakdownTotal(p.BlocksMined)),
		countLine("Blocks Placed", BreakdownTotal(p.BlocksPlaced)),
		countLine("Items Crafted", BreakdownTotal(p.ItemsCrafted)),
		countLine("Items Broken", BreakdownTotal(p.ItemsBroken)),
		countLine("Damage Dealt", p.DamageDealt),
		countLine("Damage Taken", p.DamageTaken),
		{Label: "Distance Travelled", Value: p.DistanceTravelledUnits, DisplayValue: UnitsToKilometers(p.DistanceTravelledUnits), Unit: "km"},
	}
}
