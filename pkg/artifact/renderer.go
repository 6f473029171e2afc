// Package artifact renders and stores the refresh summary image.
package artifact

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// Width is the fixed artifact width in pixels.
	Width = 1000
	// Height is the fixed artifact height in pixels.
	Height = 600
)

// Ranked is one top-GDP entry drawn on the artifact.
type Ranked struct {
	Name         string
	EstimatedGDP *float64
}

// Summary is the data rendered into the artifact.
type Summary struct {
	Total       int
	Top         []Ranked
	GeneratedAt time.Time
}

// Renderer draws the refresh summary as a PNG.
type Renderer struct {
	title   font.Face
	body    font.Face
	printer *message.Printer
}

// NewRenderer parses the embedded fonts once and returns a ready renderer.
func NewRenderer() (*Renderer, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	return &Renderer{
		title:   truetype.NewFace(bold, &truetype.Options{Size: 36}),
		body:    truetype.NewFace(regular, &truetype.Options{Size: 24}),
		printer: message.NewPrinter(language.English),
	}, nil
}

// Render produces the PNG bytes for the given summary.
func (r *Renderer) Render(s Summary) ([]byte, error) {
	dc := gg.NewContext(Width, Height)

	dc.SetRGB(0.08, 0.09, 0.12)
	dc.Clear()

	dc.SetRGB(0.92, 0.94, 0.97)
	dc.SetFontFace(r.title)
	dc.DrawString("Country Refresh Summary", 60, 80)

	dc.SetFontFace(r.body)
	dc.DrawString(fmt.Sprintf("Total countries: %d", s.Total), 60, 140)
	dc.DrawString("Generated at: "+s.GeneratedAt.UTC().Format(time.RFC3339), 60, 176)

	dc.SetRGB(0.55, 0.75, 1.0)
	dc.DrawString("Top 5 by estimated GDP (USD)", 60, 240)

	dc.SetRGB(0.92, 0.94, 0.97)
	if len(s.Top) == 0 {
		dc.DrawString("No GDP data available", 60, 290)
	} else {
		y := 290.0
		for i, entry := range s.Top {
			line := fmt.Sprintf("%d. %s — %s", i+1, entry.Name, r.formatGDP(entry.EstimatedGDP))
			dc.DrawString(line, 60, y)
			y += 44
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode summary image: %w", err)
	}
	return buf.Bytes(), nil
}

// formatGDP renders the estimate with thousands grouping and at most two
// fraction digits, or the literal null when no estimate exists.
func (r *Renderer) formatGDP(v *float64) string {
	if v == nil {
		return "null"
	}
	return r.printer.Sprintf("%v", number.Decimal(*v, number.MaxFractionDigits(2)))
}
