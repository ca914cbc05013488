// Package ebiten provides the windowed timeline host built on Ebiten.
package ebiten

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "github.com/darkwater/console-timeline/pkg/engine/input"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
	"github.com/darkwater/console-timeline/pkg/timeline/state"
)

// New creates a host over opts.Source. Saved preferences override the
// initial scale and window size.
func New(opts Options) (*Host, error) {
	if opts.Source == nil || opts.Source.Current() == nil {
		return nil, fmt.Errorf("ebiten host: no catalog")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Title == "" {
		opts.Title = "Console Timeline"
	}

	scale := opts.InitialScale
	if opts.Prefs.PixelsPerYear > 0 {
		scale = opts.Prefs.PixelsPerYear
	}
	if opts.Prefs.WindowWidth > 0 && opts.Prefs.WindowHeight > 0 {
		opts.Width, opts.Height = opts.Prefs.WindowWidth, opts.Prefs.WindowHeight
	}

	tl := layout.New(opts.Source.Current())
	tl.Theme = opts.Theme
	if opts.RowHeight > 0 {
		tl.RowHeight = opts.RowHeight
	}

	fontSource, err := loadFontSource()
	if err != nil {
		return nil, err
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Host{
		source:       opts.Source,
		timeline:     tl,
		view:         state.NewView(scale),
		opts:         opts,
		logger:       opts.Logger,
		windowWidth:  opts.Width,
		windowHeight: opts.Height,
		fontSource:   fontSource,
		faces:        make(map[float64]*text.GoTextFace),
		whitePixel:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		repeater:     engineinput.NewRepeater(),
		ctx:          context.Background(),
	}, nil
}

// Init sets up the window
func (h *Host) Init() {
	ebiten.SetWindowSize(h.windowWidth, h.windowHeight)
	ebiten.SetWindowTitle(h.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Run opens the window and blocks until it is closed, the user quits or ctx
// is cancelled
func (h *Host) Run(ctx context.Context) error {
	h.ctx = ctx
	h.Init()

	h.logger.Info("opening window", "width", h.windowWidth, "height", h.windowHeight,
		"consoles", h.catalog().ConsoleCount())

	err := ebiten.RunGame(h)
	h.flushPrefs()
	return err
}

// Layout tracks the window size; the screen is drawn at window resolution
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.windowWidth = outsideWidth
	h.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
