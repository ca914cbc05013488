package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs are the settings the window remembers between runs
type Prefs struct {
	PixelsPerYear float64 `toml:"pixels_per_year"`
	WindowWidth   int     `toml:"window_width"`
	WindowHeight  int     `toml:"window_height"`
}

// DefaultPrefsPath returns prefs.toml under the user config directory
func DefaultPrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "console-timeline", "prefs.toml"), nil
}

// PrefsFile returns the configured preferences path or the default one
func (c Config) PrefsFile() (string, error) {
	if c.PrefsPath != "" {
		return c.PrefsPath, nil
	}
	return DefaultPrefsPath()
}

// LoadPrefs reads preferences from path. A missing file yields zero Prefs
// and no error.
func LoadPrefs(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// SavePrefs writes preferences to path, creating parent directories as
// needed.
func SavePrefs(path string, p Prefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling prefs: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
