// Package input turns device events into timeline intents in layers: raw
// device codes, debounced codes, bindings, then intents.
package input

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
)

// Action represents a high-level intent on the timeline.
type Action int

const (
	ActionNone Action = iota

	// Navigation
	ActionScrollLeft
	ActionScrollRight
	ActionScrollUp
	ActionScrollDown
	ActionScrollHome // back to the first year
	ActionScrollEnd  // to the last year

	// Zoom
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset

	// Meta
	ActionScreenshot
	ActionQuit
)

// Intent is the 4th-layer description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "f12").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after key-repeat handling.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

var (
	bindingsMu sync.RWMutex

	// bindings maps raw codes to actions (3rd layer).
	// Multiple codes may point to the same Action.
	bindings = defaultBindings()
)

func defaultBindings() map[string]Action {
	return map[string]Action{
		// Scrolling (arrows, Vim)
		"arrow_left":  ActionScrollLeft,
		"h":           ActionScrollLeft,
		"arrow_right": ActionScrollRight,
		"l":           ActionScrollRight,
		"arrow_up":    ActionScrollUp,
		"k":           ActionScrollUp,
		"arrow_down":  ActionScrollDown,
		"j":           ActionScrollDown,
		"home":        ActionScrollHome,
		"end":         ActionScrollEnd,

		// Zoom
		"=":               ActionZoomIn,
		"+":               ActionZoomIn,
		"numpad_add":      ActionZoomIn,
		"-":               ActionZoomOut,
		"numpad_subtract": ActionZoomOut,
		"0":               ActionZoomReset,
		"numpad_0":        ActionZoomReset,
		"mouse_middle":    ActionZoomReset,

		// Screenshot
		"f12":        ActionScreenshot,
		"screenshot": ActionScreenshot,

		// Quit
		"q":      ActionQuit,
		"escape": ActionQuit,
		"quit":   ActionQuit,
	}
}

// reserved codes keep their bindings so navigation can't be remapped away
func reserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape":
		return true
	}
	return false
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()

	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a keyboard code through every layer
func Resolve(code string) Intent {
	return ResolveFrom(DeviceKeyboard, code)
}

// ResolveFrom runs a code from any device through every layer
func ResolveFrom(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionScrollLeft:
		return "Scroll Left"
	case ActionScrollRight:
		return "Scroll Right"
	case ActionScrollUp:
		return "Scroll Up"
	case ActionScrollDown:
		return "Scroll Down"
	case ActionScrollHome:
		return "Scroll Home"
	case ActionScrollEnd:
		return "Scroll End"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Zoom Reset"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction looks an action up by its ActionName, ignoring case, spaces
// and underscores ("zoom_in", "Zoom In").
func ParseAction(name string) (Action, bool) {
	norm := func(s string) string {
		return strings.ToLower(strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s))
	}
	want := norm(name)
	for a := ActionScrollLeft; a <= ActionQuit; a++ {
		if norm(ActionName(a)) == want {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()

	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering for help output.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given action
// with a single code.
func SetSingleBinding(action Action, code string) {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()

	for c, a := range bindings {
		if reserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved(code) {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings
func ResetBindings() {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	bindings = defaultBindings()
}
