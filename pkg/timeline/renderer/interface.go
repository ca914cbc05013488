// Package renderer holds what the timeline hosts share: the catalog source
// they draw from and the interface the CLI runs them through.
package renderer

import (
	"context"

	"github.com/darkwater/console-timeline/pkg/timeline/catalog"
)

// Build information, set with -ldflags at release time
var (
	Version = "dev"
	Commit  = "unknown"
)

// Source yields the catalog to draw. A catalog.Watcher swaps it when the
// file changes; a host reads it once per frame.
type Source interface {
	Current() *catalog.Catalog
}

// Static is a Source that never changes
type Static struct {
	Catalog *catalog.Catalog
}

func (s Static) Current() *catalog.Catalog {
	return s.Catalog
}

// Renderer is an output backend for the timeline: the window or the terminal
type Renderer interface {
	// Run draws until the output is complete or the user quits. Cancelling
	// ctx stops an interactive renderer.
	Run(ctx context.Context) error
}
