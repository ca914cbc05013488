package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return src, nil
}

// face returns a cached face of the given size
func (h *Host) face(size float64) *text.GoTextFace {
	f, ok := h.faces[size]
	if !ok {
		f = &text.GoTextFace{
			Source: h.fontSource,
			Size:   size,
		}
		h.faces[size] = f
	}
	return f
}

// measure returns the single-line size of s
func (h *Host) measure(s string, size float64) (w, hgt float64) {
	return text.Measure(s, h.face(size), 0)
}
