package logic

import "github.com/krazyminecraft/stats-api/internal/models"

// MovementKeys are the minecraft:custom counters summed into the headline
// "distance travelled" metric.
var MovementKeys = []string{
	"minecraft:walk_one_cm",
	"minecraft:walk_under_water_one_cm",
	"minecraft:sprint_one_cm",
	"minecraft:swim_one_cm",
	"minecraft:fall_one_cm",
	"minecraft:fly_one_cm",
	"minecraft:climb_one_cm",
}

// DistanceKeys is the wider set of distance counters shown by the detail view
// and the summary card. It includes vehicles, mounts and elytra.
var DistanceKeys = []string{
	"minecraft:boat_one_cm",
	"minecraft:aviate_one_cm",
	"minecraft:happy_ghast_one_cm",
	"minecraft:crouch_one_cm",
	"minecraft:climb_one_cm",
	"minecraft:minecart_one_cm",
	"minecraft:walk_one_cm",
	"minecraft:walk_under_water_one_cm",
	"minecraft:sprint_one_cm",
	"minecraft:fly_one_cm",
	"minecraft:walk_on_water_one_cm",
	"minecraft:swim_one_cm",
	"minecraft:fall_one_cm",
	"minecraft:horse_one_cm",
	"minecraft:pig_one_cm",
	"minecraft:walk_off_water_one_cm",
}

// TimeKeys are minecraft:custom counters measured in ticks.
var TimeKeys = []string{
	"minecraft:play_time",
	"minecraft:time_since_rest",
	"minecraft:total_world_time",
	"minecraft:sneak_time",
}

// BreakdownCategories are the categories whose counters form a breakdown.
var BreakdownCategories = []string{
	models.CategoryKilled,
	models.CategoryKilledBy,
	models.CategoryMined,
	models.CategoryUsed,
	models.CategoryCrafted,
	models.CategoryBroken,
	models.CategoryPickedUp,
	models.CategoryDropped,
}

// ExtractBreakdown returns a copy of the counters of category, or an empty
// breakdown when the document or category is absent. It works for every
// category including minecraft:custom, which lets listing views enumerate
// counters without knowing their names in advance.
func ExtractBreakdown(doc *models.RawStatDocument, category string) models.CategoryBreakdown {
	out := models.CategoryBreakdown{}
	if doc == nil {
		return out
	}
	for key, n := range doc.Stats[category] {
		out[key] = n
	}
	return out
}

// ExtractCustom reads one named minecraft:custom counter, zero when absent.
func ExtractCustom(doc *models.RawStatDocument, key string) int64 {
	if doc == nil {
		return 0
	}
	return doc.Stats[models.CategoryCustom][key]
}

// SumCustom adds the named minecraft:custom counters.
func SumCustom(doc *models.RawStatDocument, keys []string) int64 {
	var total int64
	for _, k := range keys {
		total += ExtractCustom(doc, k)
	}
	return total
}

// DistanceTravelled is the headline movement total (seven counters).
func DistanceTravelled(doc *models.RawStatDocument) int64 {
	return SumCustom(doc, MovementKeys)
}

// BreakdownTotal sums a breakdown's counts.
func BreakdownTotal(b models.CategoryBreakdown) int64 {
	var total int64
	for _, n := range b {
		total += n
	}
	return total
}
