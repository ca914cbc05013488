package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
)

// ScreenshotName returns the file name for a screenshot taken at t
func ScreenshotName(t time.Time) string {
	return fmt.Sprintf("timeline-%s.svg", t.Format("20060102-150405"))
}

// SaveScreenshot writes the recorded frame as an SVG file in dir and returns
// its path
func SaveScreenshot(dir string, rec *draw.Recorder, theme layout.Theme) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot directory: %w", err)
	}

	path := filepath.Join(dir, ScreenshotName(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}

	if err := WriteSVG(f, rec, theme); err != nil {
		f.Close()
		return "", fmt.Errorf("writing screenshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing screenshot %s: %w", path, err)
	}
	return path, nil
}

// RenderFrame lays out one frame of tl into a recorder of w×h, scrolled to
// scroll and at the given scale. A non-nil pointer enables hover.
func RenderFrame(tl *layout.Timeline, w, h, pixelsPerYear float64, scroll geom.Point, pointer *geom.Point) *draw.Recorder {
	rec := draw.NewRecorder(w, h)
	if pointer != nil {
		rec.WithPointer(pointer.X, pointer.Y)
	}

	pps := pixelsPerYear
	contentW, _ := tl.ContentSize(pps)
	tl.Show(rec, layout.Frame{
		Viewport:       rec.Clip.Translate(scroll.X, scroll.Y),
		AvailableWidth: max(w, contentW),
		PixelsPerYear:  &pps,
	})
	return rec
}
