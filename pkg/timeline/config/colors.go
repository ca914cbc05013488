package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/input"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
)

// parseColorRGBA parses "R,G,B,A" into color.RGBA. Values 0-255.
func parseColorRGBA(s string) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.RGBA{}, false
	}
	var vals [4]uint8
	for i := range vals {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, false
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, true
}

// Theme returns the default theme with the colors.* overrides applied
func (c Config) Theme() (layout.Theme, error) {
	theme := layout.DefaultTheme()
	slots := map[string]*color.RGBA{
		"background":  &theme.Background,
		"weak_text":   &theme.WeakText,
		"text":        &theme.Text,
		"strong_text": &theme.StrongText,
		"warn":        &theme.Warn,
	}

	for _, key := range sortedKeys(c.Colors) {
		slot, ok := slots[strings.ToLower(key)]
		if !ok {
			return theme, fmt.Errorf("colors.%s: unknown theme color", key)
		}
		v, ok := parseColorRGBA(c.Colors[key])
		if !ok {
			return theme, fmt.Errorf("colors.%s: want R,G,B,A, got %q", key, c.Colors[key])
		}
		// overrides are straight alpha; drawing expects premultiplied
		*slot = draw.MultiplyAlpha(color.RGBA{R: v.R, G: v.G, B: v.B, A: 255}, float64(v.A)/255)
	}
	return theme, nil
}

// ApplyBindings rebinds each configured action to its key code
func (c Config) ApplyBindings() error {
	for _, name := range sortedKeys(c.Bindings) {
		action, ok := input.ParseAction(name)
		if !ok {
			return fmt.Errorf("bindings.%s: unknown action", name)
		}
		input.SetSingleBinding(action, strings.ToLower(c.Bindings[name]))
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
