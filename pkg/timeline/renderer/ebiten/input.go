package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
	engineinput "github.com/darkwater/console-timeline/pkg/engine/input"
	"github.com/darkwater/console-timeline/pkg/timeline/axis"
	"github.com/darkwater/console-timeline/pkg/timeline/config"
	"github.com/darkwater/console-timeline/pkg/timeline/devtools"
)

// keyCode pairs an Ebiten key with the code the bindings know it by.
// Held keys with repeat fire again after the repeat delay.
type keyCode struct {
	key    ebiten.Key
	code   string
	repeat bool
}

var polledKeys = []keyCode{
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeyHome, "home", false},
	{ebiten.KeyEnd, "end", false},
	{ebiten.KeyEqual, "=", false},
	{ebiten.KeyNumpadAdd, "numpad_add", false},
	{ebiten.KeyMinus, "-", false},
	{ebiten.KeyNumpadSubtract, "numpad_subtract", false},
	{ebiten.Key0, "0", false},
	{ebiten.KeyNumpad0, "numpad_0", false},
	{ebiten.KeyF12, "f12", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
}

// buttonCode pairs a mouse button with its binding code. The left button
// is reserved for dragging.
type buttonCode struct {
	button ebiten.MouseButton
	code   string
}

var polledButtons = []buttonCode{
	{ebiten.MouseButtonMiddle, "mouse_middle"},
}

// Update handles input and picks up reloaded catalogs (Ebiten interface)
func (h *Host) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !h.windowOpenedLogged {
		h.windowOpenedLogged = true
		w, hgt := ebiten.WindowSize()
		h.logger.Info("window opened", "width", w, "height", hgt)
	}

	select {
	case <-h.ctx.Done():
		return ebiten.Termination
	default:
	}

	if c := h.source.Current(); c != nil && c != h.timeline.Catalog {
		h.timeline.Catalog = c
		h.logger.Info("catalog reloaded", "lineages", len(c.Lineages), "consoles", c.ConsoleCount())
	}

	h.handleWheel()
	h.handleDrag()

	now := time.Now()
	for _, k := range polledKeys {
		var fire bool
		if k.repeat {
			fire = h.repeater.Fire(k.code, ebiten.IsKeyPressed(k.key), now)
		} else {
			fire = inpututil.IsKeyJustPressed(k.key)
		}
		if !fire {
			continue
		}
		if done := h.apply(engineinput.Resolve(k.code)); done {
			return ebiten.Termination
		}
	}

	for _, b := range polledButtons {
		if !inpututil.IsMouseButtonJustPressed(b.button) {
			continue
		}
		if done := h.apply(engineinput.ResolveFrom(engineinput.DeviceMouse, b.code)); done {
			return ebiten.Termination
		}
	}

	h.clampView()
	h.savePrefsIfIdle(now)
	return nil
}

// apply carries out an intent and reports whether the user asked to quit
func (h *Host) apply(intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionScrollLeft:
		h.view.ScrollBy(-keyScrollStep, 0)
	case engineinput.ActionScrollRight:
		h.view.ScrollBy(keyScrollStep, 0)
	case engineinput.ActionScrollUp:
		h.view.ScrollBy(0, -keyScrollStep)
	case engineinput.ActionScrollDown:
		h.view.ScrollBy(0, keyScrollStep)
	case engineinput.ActionScrollHome:
		h.view.Scroll.X = 0
	case engineinput.ActionScrollEnd:
		contentW, _ := h.timeline.ContentSize(h.view.PixelsPerYear)
		h.view.Scroll.X = contentW
	case engineinput.ActionZoomIn:
		h.zoomAt(keyZoomFactor, float64(h.windowWidth)/2)
	case engineinput.ActionZoomOut:
		h.zoomAt(1/keyZoomFactor, float64(h.windowWidth)/2)
	case engineinput.ActionZoomReset:
		h.view.Reset(h.opts.InitialScale)
		h.markZoomed()
	case engineinput.ActionScreenshot:
		h.saveScreenshot()
	case engineinput.ActionQuit:
		h.logger.Info("quit requested")
		return true
	}
	return false
}

// handleWheel scrolls vertically, horizontally with shift, and zooms at the
// pointer with ctrl
func (h *Host) handleWheel() {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		x, _ := ebiten.CursorPosition()
		factor := wheelZoomFactor
		if dy < 0 {
			factor = 1 / wheelZoomFactor
		}
		h.zoomAt(factor, float64(x))
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		h.view.ScrollBy(-(dy+dx)*wheelScrollStep, 0)
	default:
		h.view.ScrollBy(-dx*wheelScrollStep, -dy*wheelScrollStep)
	}
}

// handleDrag pans while the left button is held
func (h *Host) handleDrag() {
	x, y := ebiten.CursorPosition()
	pos := geom.Pt(float64(x), float64(y))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		h.dragging = true
		h.dragLast = pos
	case h.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		d := h.dragLast.Sub(pos)
		h.view.ScrollBy(d.X, d.Y)
		h.dragLast = pos
	default:
		h.dragging = false
	}
}

func (h *Host) zoomAt(factor, pointerX float64) {
	h.view.ZoomAt(factor, pointerX, axis.LeftMargin)
	h.markZoomed()
}

func (h *Host) clampView() {
	contentW, contentH := h.timeline.ContentSize(h.view.PixelsPerYear)
	h.view.Clamp(max(contentW, float64(h.windowWidth)), contentH, float64(h.windowWidth), float64(h.windowHeight))
}

func (h *Host) markZoomed() {
	h.prefsDirty = true
	h.lastZoom = time.Now()
}

// savePrefsIfIdle writes the zoom once it has settled, so wheel zooming does
// not write the file every frame
func (h *Host) savePrefsIfIdle(now time.Time) {
	if h.prefsDirty && now.Sub(h.lastZoom) >= prefsSaveDelay*time.Millisecond {
		h.flushPrefs()
	}
}

func (h *Host) flushPrefs() {
	if !h.prefsDirty || h.opts.PrefsPath == "" {
		return
	}
	h.prefsDirty = false

	prefs := config.Prefs{
		PixelsPerYear: h.view.PixelsPerYear,
		WindowWidth:   h.windowWidth,
		WindowHeight:  h.windowHeight,
	}
	if err := config.SavePrefs(h.opts.PrefsPath, prefs); err != nil {
		h.logger.Warn("could not save preferences", "err", err)
		return
	}
	h.logger.Debug("preferences saved", "path", h.opts.PrefsPath, "pixels_per_year", prefs.PixelsPerYear)
}

func (h *Host) saveScreenshot() {
	rec := devtools.RenderFrame(h.timeline, float64(h.windowWidth), float64(h.windowHeight),
		h.view.PixelsPerYear, h.view.Scroll, h.pointer())

	path, err := devtools.SaveScreenshot(h.opts.ScreenshotDir, rec, h.timeline.Theme)
	if err != nil {
		h.logger.Error("screenshot failed", "err", err)
		return
	}
	h.logger.Info("screenshot saved", "path", path)
}
