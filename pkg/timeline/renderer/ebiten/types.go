package ebiten

import (
	"context"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
	engineinput "github.com/darkwater/console-timeline/pkg/engine/input"
	"github.com/darkwater/console-timeline/pkg/timeline/catalog"
	"github.com/darkwater/console-timeline/pkg/timeline/config"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
	"github.com/darkwater/console-timeline/pkg/timeline/renderer"
	"github.com/darkwater/console-timeline/pkg/timeline/state"
)

// Options configure a Host
type Options struct {
	Source        renderer.Source
	Theme         layout.Theme
	RowHeight     float64
	InitialScale  float64 // px per year before the first fit
	Width, Height int     // initial window size
	Title         string

	Prefs         config.Prefs
	PrefsPath     string // empty disables saving
	ScreenshotDir string

	Logger *slog.Logger
}

// Host runs the timeline in a resizable window
type Host struct {
	source   renderer.Source
	timeline *layout.Timeline
	view     *state.View
	opts     Options
	logger   *slog.Logger

	// Window dimensions, tracked through Layout
	windowWidth  int
	windowHeight int

	// Font source and cached faces per size
	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace

	// 1×1 white source for DrawTriangles
	whitePixel *ebiten.Image

	repeater *engineinput.Repeater

	// Left-button drag panning
	dragging bool
	dragLast geom.Point

	// Zoom changes waiting to be written to the preferences file
	prefsDirty bool
	lastZoom   time.Time

	windowOpenedLogged bool
	ctx                context.Context
}

// catalog returns the catalog drawn this frame
func (h *Host) catalog() *catalog.Catalog {
	return h.timeline.Catalog
}
