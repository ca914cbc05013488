package layout

import (
	"image/color"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
)

// Sizes shared by every backend
const (
	RowHeight        = 28.0 // one console bar
	CompactRowHeight = 24.0
	BottomPadding    = 24.0 // room for the year labels under the last lineage
	LabelMargin      = 8.0  // horizontal space around a bar label
	AccentHeight     = 2.0  // full-colour strip along the bottom of a bar
	LabelSize        = 14.0
	LineageNameSize  = 16.0
	GridlineWidth    = 1.0
)

// Alpha factors applied to the lineage colour
const (
	headerAlpha     = 0.6
	stripAlpha      = 0.2
	barAlpha        = 0.2
	barHoverAlpha   = 0.4
	gridlineAlpha   = 0.5
	labelLerpToward = 0.5
)

// Theme holds the text colours the layout draws with. Lineage colours come
// from the catalog.
type Theme struct {
	Background color.RGBA
	WeakText   color.RGBA // gridlines, year labels
	Text       color.RGBA
	StrongText color.RGBA // hovered labels
	Warn       color.RGBA // unverified figures
}

// DefaultTheme is the dark palette shared by the window and the exports
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{26, 26, 46, 255},   // dark blue-gray
		WeakText:   color.RGBA{120, 130, 180, 255}, // soft blue-purple-gray
		Text:       color.RGBA{200, 210, 245, 255}, // off-white with a blue tint
		StrongText: draw.White,
		Warn:       color.RGBA{255, 200, 100, 255}, // orange
	}
}

// labelColor is the bar label colour; halfway to strong unless hovered
func (t Theme) labelColor(hovered bool) color.RGBA {
	if hovered {
		return t.StrongText
	}
	return draw.Lerp(t.Text, t.StrongText, labelLerpToward)
}
