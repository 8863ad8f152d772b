package logic

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// TicksPerSecond is the fixed game-clock rate.
	TicksPerSecond = 20
	// UnitsPerKilometer converts the raw distance counters (centimetres) to km.
	UnitsPerKilometer = 100000

	namespacePrefix = "minecraft:"
)

var (
	numberPrinter = message.NewPrinter(language.English)
	titleCaser    = cases.Title(language.English)
)

// TicksToDays renders a tick count as days with two decimals.
func TicksToDays(ticks int64) string {
	days := float64(ticks) / TicksPerSecond / 3600 / 24
	return strconv.FormatFloat(days, 'f', 2, 64)
}

// UnitsToKilometers renders a raw distance counter as kilometres with two decimals.
func UnitsToKilometers(units int64) string {
	return strconv.FormatFloat(float64(units)/UnitsPerKilometer, 'f', 2, 64)
}

// GroupThousands renders n with English thousands separators.
func GroupThousands(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}

// HumanizeKey turns "minecraft:diamond_pickaxe" into "Diamond Pickaxe".
func HumanizeKey(key string) string {
	s := strings.TrimPrefix(key, namespacePrefix)
	s = strings.ReplaceAll(s, "_", " ")
	return titleCaser.String(s)
}
