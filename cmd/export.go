package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/devtools"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render one frame of the timeline to SVG or HTML",
	Long: `Export lays out a single frame the way the window would and writes it as
an SVG document, or as an HTML page with --html.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringP("out", "o", "", "output file (required)")
	f.Float64("width", 1280, "frame width in pixels")
	f.Float64("height", 720, "frame height in pixels")
	f.Float64("scale", 0, "pixels per year (default: initial_scale)")
	f.Float64("scroll-x", 0, "horizontal scroll offset in pixels")
	f.Float64("scroll-y", 0, "vertical scroll offset in pixels")
	f.Bool("html", false, "wrap the SVG in an HTML page")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	f := cmd.Flags()
	out, _ := f.GetString("out")
	width, _ := f.GetFloat64("width")
	height, _ := f.GetFloat64("height")
	scale, _ := f.GetFloat64("scale")
	scrollX, _ := f.GetFloat64("scroll-x")
	scrollY, _ := f.GetFloat64("scroll-y")
	asHTML, _ := f.GetBool("html")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("frame size must be positive, got %vx%v", width, height)
	}
	if scale <= 0 {
		scale = a.cfg.InitialScale
	}

	tl := layout.New(a.catalog)
	tl.Theme = a.theme
	tl.RowHeight = a.cfg.RowHeight
	rec := devtools.RenderFrame(tl, width, height, scale, geom.Pt(scrollX, scrollY), nil)

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if asHTML {
		err = devtools.WriteHTML(file, rec, a.theme, "Console Timeline")
	} else {
		err = devtools.WriteSVG(file, rec, a.theme)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	a.logger.Info("frame exported", "path", out, "width", width, "height", height, "html", asHTML)
	return nil
}
