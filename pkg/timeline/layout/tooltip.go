package layout

import (
	"github.com/leonelquinteros/gotext"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

// SalesTooltip builds the hover tooltip of a console: a title row with the
// generation badge when known, then one row per lifetime sales figure. Figures
// without a source get an unverified marker.
func SalesTooltip(c *model.Console, theme Theme) []draw.TooltipRow {
	title := draw.TooltipRow{{Text: c.ShortName, Color: theme.StrongText}}
	if c.Generation != nil {
		title = append(title, draw.Span{
			Text:  " · " + gotext.Get("Gen %d", *c.Generation),
			Color: theme.WeakText,
		})
	}

	rows := []draw.TooltipRow{
		title,
		{{Text: gotext.Get("Sales:"), Color: theme.Text}},
	}

	for _, m := range c.MeasuresOf(model.UnitsSold) {
		row := draw.TooltipRow{{Text: SalesLine(m), Color: theme.Text}}
		if !m.Verified() {
			row = append(row, draw.Span{Text: " " + UnverifiedMarker(), Color: theme.Warn})
		}
		rows = append(rows, row)
	}
	return rows
}

// SalesLine formats a units-sold figure in millions, indented under "Sales:".
// Global figures sit one level left of the regional ones.
func SalesLine(m model.Measure) string {
	indent := "    "
	if m.Region == model.Global {
		indent = "  "
	}
	millions := float64(m.Value.Point) / 1_000_000
	return indent + gotext.Get("%s: %.2f M", regionLabel(m.Region), millions)
}

// regionLabel returns the translated short name of r
func regionLabel(r model.Region) string {
	switch r {
	case model.Global:
		return gotext.Get("Global")
	case model.JP:
		return gotext.Get("JP")
	case model.NA:
		return gotext.Get("NA")
	case model.EU:
		return gotext.Get("EU")
	default:
		return r.String()
	}
}

// UnverifiedMarker is shown next to figures without a source
func UnverifiedMarker() string {
	return "⚠ " + gotext.Get("Unverified")
}
