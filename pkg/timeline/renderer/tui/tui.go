// Package tui prints the timeline to a terminal: one character column per
// mapper pixel, with lifetime sales listed under the chart.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	gcolor "github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/terminal"
	"github.com/darkwater/console-timeline/pkg/timeline/axis"
	"github.com/darkwater/console-timeline/pkg/timeline/catalog"
	"github.com/darkwater/console-timeline/pkg/timeline/layout"
	"github.com/darkwater/console-timeline/pkg/timeline/model"
	"github.com/darkwater/console-timeline/pkg/timeline/renderer"
)

// Cell glyphs
const (
	IconBar   = "█"
	IconFade  = "▒" // year-only end of production
	IconRule  = "─"
	IconBlank = " "
)

// NameWidth is the column count reserved for names, the terminal's left margin
const NameWidth = 18

// minLabelGap is the column distance a ruler label needs, four digits plus space
const minLabelGap = 6

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Printer renders a catalog as text
type Printer struct {
	Source renderer.Source
	Out    io.Writer
	Width  int  // total columns
	Color  bool // emit 24-bit colour codes
	Theme  layout.Theme
}

// New returns a printer writing to out, sized to its terminal. Colour is
// disabled when out is not a terminal.
func New(src renderer.Source, out *os.File) *Printer {
	width, _ := terminal.GetSize(out)
	return &Printer{
		Source: src,
		Out:    out,
		Width:  width,
		Color:  terminal.IsTerminal(out),
		Theme:  layout.DefaultTheme(),
	}
}

// Run prints the current catalog once
func (p *Printer) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(p.Out, p.Render(p.Source.Current()))
	return err
}

// Mapper returns the axis fitted to the printer width, leaving the last
// column free so lines never wrap
func (p *Printer) Mapper(c *catalog.Catalog) axis.Mapper {
	m := axis.Mapper{LeftMargin: NameWidth, StartYear: c.StartYear, EndYear: c.EndYear}
	m.Fit(float64(p.columns()))
	return m
}

func (p *Printer) columns() int {
	return max(p.Width-1, NameWidth+10)
}

// Render returns the chart followed by the sales listing
func (p *Printer) Render(c *catalog.Catalog) string {
	m := p.Mapper(c)
	var b strings.Builder

	b.WriteString(p.ruler(m))
	b.WriteByte('\n')

	for li := range c.Lineages {
		l := &c.Lineages[li]
		b.WriteString(p.lineageHeader(l))
		b.WriteByte('\n')
		for ci := range l.Consoles {
			b.WriteString(p.consoleRow(m, l, &l.Consoles[ci]))
			b.WriteByte('\n')
		}
	}

	sales := p.salesListing(c)
	if sales != "" {
		b.WriteByte('\n')
		b.WriteString(sales)
	}
	return b.String()
}

// ruler labels years at a step wide enough for the labels, aligned to it
func (p *Printer) ruler(m axis.Mapper) string {
	step := RulerStep(m.PixelsPerYear)
	cells := []rune(strings.Repeat(IconBlank, p.columns()))

	first := (m.StartYear + step - 1) / step * step
	for y := first; y < m.EndYear; y += step {
		col := int(math.Round(m.DateToX(model.Year(y))))
		label := strconv.Itoa(y)
		if col+len(label) > len(cells) {
			break
		}
		copy(cells[col:], []rune(label))
	}
	return p.paint(strings.TrimRight(string(cells), IconBlank), p.Theme.WeakText)
}

// RulerStep returns the smallest of 1, 2, 5, 10 or 20 years whose labels do
// not touch at the given columns per year
func RulerStep(columnsPerYear float64) int {
	for _, step := range []int{1, 2, 5, 10, 20} {
		if float64(step)*columnsPerYear >= minLabelGap {
			return step
		}
	}
	return 50
}

func (p *Printer) lineageHeader(l *model.Lineage) string {
	name := truncate(l.Name, p.columns()-2)
	rule := strings.Repeat(IconRule, max(p.columns()-utf8.RuneCountInString(name)-1, 0))
	return p.paint(name, draw.White) + " " + p.paint(rule, draw.MultiplyAlpha(l.Color, 0.6))
}

// consoleRow draws the name column and the bar. Every bar gets at least one
// cell so short-lived consoles stay visible.
func (p *Printer) consoleRow(m axis.Mapper, l *model.Lineage, c *model.Console) string {
	start, end := layout.BarExtent(m, c, float64(p.columns()))
	from := int(math.Round(start))
	to := max(int(math.Round(end)), from+1)
	to = min(to, p.columns())

	var b strings.Builder
	b.WriteString(p.paint(pad("  "+c.Name, NameWidth), p.Theme.Text))
	b.WriteString(strings.Repeat(IconBlank, max(from-NameWidth, 0)))
	b.WriteString(p.paint(strings.Repeat(IconBar, max(to-from, 0)), l.Color))

	if eop, ok := c.Discontinued(); ok && eop.Date.IsYearOnly() {
		fade := min(max(int(math.Round(m.PixelsPerYear)), 1), p.columns()-to)
		b.WriteString(p.paint(strings.Repeat(IconFade, max(fade, 0)), draw.MultiplyAlpha(l.Color, 0.6)))
	}
	return b.String()
}

// salesListing prints the hover tooltip of every console with figures, plus
// a sparkline of its yearly sales when the catalog has them
func (p *Printer) salesListing(c *catalog.Catalog) string {
	var b strings.Builder
	for li := range c.Lineages {
		for ci := range c.Lineages[li].Consoles {
			con := &c.Lineages[li].Consoles[ci]
			series, hasSeries := con.SeriesOf(model.UnitsSoldPerYear, model.Global)
			if len(con.MeasuresOf(model.UnitsSold)) == 0 && !hasSeries {
				continue
			}

			for _, row := range layout.SalesTooltip(con, p.Theme) {
				for _, span := range row {
					b.WriteString(p.paint(span.Text, span.Color))
				}
				b.WriteByte('\n')
			}
			if hasSeries && len(series.Points) > 0 {
				first, last := series.Points[0].Year, series.Points[len(series.Points)-1].Year
				fmt.Fprintf(&b, "  %s %s %d–%d\n",
					gotext.Get("Per year:"), p.paint(Sparkline(series.Points), p.Theme.StrongText), first, last)
			}
		}
	}
	return b.String()
}

// Sparkline draws one block per point, scaled to the largest value
func Sparkline(points []model.TimePoint) string {
	var peak uint64
	for _, pt := range points {
		peak = max(peak, pt.Value)
	}

	out := make([]rune, len(points))
	for i, pt := range points {
		level := 0
		if peak > 0 {
			level = int(pt.Value * uint64(len(sparkLevels)-1) / peak)
		}
		out[i] = sparkLevels[level]
	}
	return string(out)
}

// paint colours s when colour output is on
func (p *Printer) paint(s string, c color.RGBA) string {
	if !p.Color || s == "" {
		return s
	}
	return gcolor.RGB(c.R, c.G, c.B).Sprint(s)
}

// pad left-aligns s in a field of width columns, cutting it when too long
func pad(s string, width int) string {
	s = truncate(s, width-1)
	return s + strings.Repeat(IconBlank, width-utf8.RuneCountInString(s))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
