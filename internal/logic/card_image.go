package logic

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/krazyminecraft/stats-api/internal/models"
)

// CardPalette holds the colours of the summary card.
type CardPalette struct {
	Background string
	Panel      string
	Accent     string
	Text       string
	Muted      string
}

// DefaultCardPalette matches the site's dark theme.
var DefaultCardPalette = CardPalette{
	Background: "111827",
	Panel:      "374151",
	Accent:     "3b82f6",
	Text:       "ffffff",
	Muted:      "d1d5db",
}

const (
	cardWidth  = 660
	cardHeight = 260
	cardScale  = 2
)

// SummaryRows returns the label/value pairs printed on the card.
func SummaryRows(s models.PlayerSummary) [][2]string {
	return [][2]string{
		{"Played Time:", s.PlayedTimeDays + " days"},
		{"Traveled:", s.TravelledKm + " km"},
		{"Mobs Killed:", GroupThousands(s.MobsKilled)},
		{"Items Crafted:", GroupThousands(s.ItemsCrafted)},
		{"Blocks Mined:", GroupThousands(s.BlocksMined)},
		{"Items Picked Up:", GroupThousands(s.ItemsPickedUp)},
		{"Most Used Item:", s.MostUsedItem},
	}
}

// RenderSummaryCard draws the summary as a PNG at twice the card size.
func RenderSummaryCard(s models.PlayerSummary, palette CardPalette) ([]byte, error) {
	w, h := cardWidth*cardScale, cardHeight*cardScale
	r, err := chart.PNG(w, h)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)

	fillRect(r, 0, 0, w, h, drawing.ColorFromHex(palette.Background))

	// Head placeholder with the player's initial
	pad := 16 * cardScale
	head := h - 2*pad
	fillRect(r, pad, pad, pad+head, pad+head, drawing.ColorFromHex(palette.Panel))
	initial := "?"
	if name := strings.TrimSpace(s.Player.DisplayName); name != "" {
		initial = strings.ToUpper(string([]rune(name)[:1]))
	}
	r.SetFontColor(drawing.ColorFromHex(palette.Accent))
	r.SetFontSize(96)
	tb := r.MeasureText(initial)
	r.Text(initial, pad+(head-tb.Width())/2, pad+(head+tb.Height())/2)

	// Name and stats grid
	left := pad + head + pad
	right := w - pad
	r.SetFontColor(drawing.ColorFromHex(palette.Text))
	r.SetFontSize(30)
	r.Text(s.Player.DisplayName, left, pad+30*cardScale)

	r.SetFontSize(18)
	lineHeight := 26 * cardScale
	y := pad + 30*cardScale + lineHeight
	for _, row := range SummaryRows(s) {
		r.SetFontColor(drawing.ColorFromHex(palette.Muted))
		r.Text(row[0], left, y)
		r.SetFontColor(drawing.ColorFromHex(palette.Text))
		vb := r.MeasureText(row[1])
		r.Text(row[1], right-vb.Width(), y)
		y += lineHeight
	}

	buf := bytes.NewBuffer(nil)
	if err := r.Save(buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, color drawing.Color) {
	r.SetFillColor(color)
	r.SetStrokeColor(color)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
	r.Fill()
}
