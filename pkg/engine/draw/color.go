package draw

import (
	"image/color"
	"math"
)

// Common colours. color.RGBA is alpha-premultiplied, so Transparent is all zero.
var (
	Transparent = color.RGBA{}
	White       = color.RGBA{255, 255, 255, 255}
)

// MultiplyAlpha fades c towards transparent. Since color.RGBA is
// premultiplied, every channel is scaled, not just alpha.
func MultiplyAlpha(c color.RGBA, factor float64) color.RGBA {
	if factor <= 0 {
		return Transparent
	}
	if factor >= 1 {
		return c
	}

	scale := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * factor))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), scale(c.A)}
}

// Lerp blends from a (t=0) to b (t=1), channel by channel
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Hex converts 0xRRGGBB into an opaque colour
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 255}
}
