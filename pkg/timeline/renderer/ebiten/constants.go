package ebiten

import (
	"image/color"
)

// Tooltip colours
var (
	colorTooltipBackground = color.RGBA{30, 30, 50, 235} // semi-transparent dark
	colorTooltipBorder     = color.RGBA{80, 88, 130, 255}
)

// Scrolling and zoom steps
const (
	wheelScrollStep = 40.0 // content pixels per wheel notch
	keyScrollStep   = 60.0 // content pixels per key repeat
	keyZoomFactor   = 1.25
	wheelZoomFactor = 1.1
)

// prefsSaveDelay is how long zooming must pause before preferences are written
const prefsSaveDelay = 500 // milliseconds
