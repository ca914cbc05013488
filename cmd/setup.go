package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leonelquinteros/gotext"

	"github.com/darkwater/console-timeline/pkg/engine/logging"
	"github.com/darkwater/console-timeline/pkg/timeline/catalog"
	"github.com/darkwater/console-timeline/pkg/timeline/config"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
	"github.com/darkwater/console-timeline/pkg/timeline/renderer"
)

// app is what every command needs after configuration is read
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	theme   layout.Theme
	catalog *catalog.Catalog
	source  renderer.Source
	watcher *catalog.Watcher
}

// setup loads the configuration, logging, translations, key bindings and
// the catalog. An invalid catalog is an error.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Setup(logging.Config{Debug: cfg.Debug, Output: os.Stderr})

	if cfg.Locale != "" && cfg.Locale != "en" {
		gotext.Configure(cfg.LocalesDir, cfg.Locale, "default")
		logger.Debug("locale configured", "locale", cfg.Locale, "dir", cfg.LocalesDir)
	}

	theme, err := cfg.Theme()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyBindings(); err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "source", catalogName(cfg.Catalog),
		"lineages", len(cat.Lineages), "consoles", cat.ConsoleCount(),
		"years", fmt.Sprintf("%d-%d", cat.StartYear, cat.EndYear))

	a := &app{cfg: cfg, logger: logger, theme: theme, catalog: cat, source: renderer.Static{Catalog: cat}}

	if cfg.Watch {
		if cfg.Catalog == "" {
			logger.Warn("--watch needs --catalog; the built-in data never changes")
			return a, nil
		}
		w, err := catalog.NewWatcher(cfg.Catalog, cat, logger)
		if err != nil {
			return nil, fmt.Errorf("watching catalog: %w", err)
		}
		if err := w.Start(); err != nil {
			return nil, fmt.Errorf("watching catalog: %w", err)
		}
		a.watcher = w
		a.source = w
		logger.Info("watching catalog", "path", cfg.Catalog)
	}
	return a, nil
}

// close stops the catalog watcher, if any
func (a *app) close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// loadCatalog reads path, or returns the built-in catalog for an empty path
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(path)
}

func catalogName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
