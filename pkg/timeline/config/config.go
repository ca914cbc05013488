// Package config loads runtime settings through viper and the persisted
// window preferences through TOML.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/darkwater/console-timeline/pkg/timeline/layout"
)

// EnvPrefix is prepended to every environment override, e.g. TIMELINE_LOCALE
const EnvPrefix = "TIMELINE"

// WindowConfig is the initial window size
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config holds all runtime configuration.
// Values are populated from .console-timeline.yaml, TIMELINE_* env vars and
// CLI flags.
type Config struct {
	Catalog       string            `mapstructure:"catalog"` // YAML catalog; empty for the built-in data
	Watch         bool              `mapstructure:"watch"`
	Locale        string            `mapstructure:"locale"`
	LocalesDir    string            `mapstructure:"locales_dir"`
	RowHeight     float64           `mapstructure:"row_height"`
	InitialScale  float64           `mapstructure:"initial_scale"` // px per year before the first fit
	PrefsPath     string            `mapstructure:"prefs_path"`    // empty for the user config dir
	ScreenshotDir string            `mapstructure:"screenshot_dir"`
	Debug         bool              `mapstructure:"debug"`
	Window        WindowConfig      `mapstructure:"window"`
	Colors        map[string]string `mapstructure:"colors"`   // theme overrides, "R,G,B,A"
	Bindings      map[string]string `mapstructure:"bindings"` // action name -> key code
}

// Defaults registers the built-in default of every key
func Defaults() {
	viper.SetDefault("catalog", "")
	viper.SetDefault("watch", false)
	viper.SetDefault("locale", "en")
	viper.SetDefault("locales_dir", "locales")
	viper.SetDefault("row_height", layout.RowHeight)
	viper.SetDefault("initial_scale", 20.0)
	viper.SetDefault("prefs_path", "")
	viper.SetDefault("screenshot_dir", ".")
	viper.SetDefault("debug", false)
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
}

// BindEnv makes every key overridable from the environment; nested keys use
// underscores (TIMELINE_WINDOW_WIDTH)
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	Defaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot work with
func (c Config) Validate() error {
	if c.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive, got %v", c.RowHeight)
	}
	if c.InitialScale <= 0 {
		return fmt.Errorf("initial_scale must be positive, got %v", c.InitialScale)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
