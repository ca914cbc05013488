package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/leonelquinteros/gotext"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/engine/geom"
	"github.com/darkwater/console-timeline/pkg/timeline/catalog"
	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

var testColor = draw.Hex(0x4080C0)

// testCatalog has one lineage of three consoles:
//
//	Alpha  1990 (JP) / 1991 (NA) .. 1995, year-only end
//	Beta   1992-03 .. open
//	Gamma  2000 .. 2004-06
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(1970, 2025, []model.Lineage{{
		Name:  "Test Lineage",
		Maker: model.Sega,
		Color: testColor,
		Consoles: []model.Console{
			{
				Name: "Alpha", ShortName: "A", Generation: model.Gen(4),
				Releases: []model.Release{
					{Region: model.NA, Date: model.Year(1991)},
					{Region: model.JP, Date: model.Year(1990)},
				},
				Milestones: []model.Milestone{{Kind: model.EndOfProduction, Date: model.Year(1995)}},
				Measures: []model.Measure{
					{Kind: model.UnitsSold, Value: model.Exact[uint64](30_750_000), Region: model.Global, Source: model.Cite("IR")},
					{Kind: model.UnitsSold, Value: model.Exact[uint64](3_580_000), Region: model.JP},
				},
			},
			{
				Name: "Beta", ShortName: "B",
				Releases: []model.Release{{Region: model.Global, Date: model.YearMonth(1992, 3)}},
			},
			{
				Name: "Gamma", ShortName: "G",
				Releases:   []model.Release{{Region: model.Global, Date: model.Year(2000)}},
				Milestones: []model.Milestone{{Kind: model.EndOfProduction, Date: model.YearMonth(2004, 6)}},
			},
		},
	}})
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	return c
}

// render shows one frame at 20 px/year (content width 1300) in an 800×400
// window scrolled to scrollX
func render(t *testing.T, rec *draw.Recorder, scrollX float64) (*Timeline, float64) {
	t.Helper()

	tl := New(testCatalog(t))
	scale := 20.0
	tl.Show(rec, Frame{
		Viewport:       geom.RectFromXYRanges(scrollX, scrollX+800, 0, 400),
		AvailableWidth: 1300,
		PixelsPerYear:  &scale,
	})
	return tl, scale
}

func findFill(rec *draw.Recorder, r geom.Rect) (draw.Op, bool) {
	for _, op := range rec.OpsOfKind(draw.OpFillRect) {
		if op.Rect == r {
			return op, true
		}
	}
	return draw.Op{}, false
}

func TestShow_FitsScale(t *testing.T) {
	tl := New(testCatalog(t))

	tests := []struct {
		stored float64
		want   float64
	}{
		{1, (800.0 - 200.0) / 55},
		{30, 30},
	}

	for _, tt := range tests {
		scale := tt.stored
		tl.Show(draw.NewRecorder(800, 400), Frame{
			Viewport:       geom.RectFromXYRanges(0, 800, 0, 400),
			AvailableWidth: 800,
			PixelsPerYear:  &scale,
		})
		if math.Abs(scale-tt.want) > 1e-9 {
			t.Errorf("scale after Show from %v = %v, want %v", tt.stored, scale, tt.want)
		}
	}
}

func TestShow_BarExtent(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	render(t, rec, 0)

	// 1990-01 .. 1995-01 at 20 px/year
	want := geom.RectFromXYRanges(600, 700, 0, 28)
	op, ok := findFill(rec, want)
	if !ok {
		t.Fatalf("no bar drawn at %v", want)
	}
	if wantColor := draw.MultiplyAlpha(testColor, 0.2); op.Color != wantColor {
		t.Errorf("bar color = %v, want %v", op.Color, wantColor)
	}

	if _, ok := findFill(rec, want.WithMinY(26)); !ok {
		t.Error("no accent strip along the bottom of the bar")
	}
}

func TestShow_OpenEndedBar(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	render(t, rec, 0)

	// 1992-03 .. available width, second row
	start := 200 + 20*(22+2.0/12)
	if _, ok := findFill(rec, geom.RectFromXYRanges(start, 1300, 28, 56)); !ok {
		t.Error("open-ended bar does not reach the available width")
	}
}

func TestShow_CullsOffscreenBars(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	render(t, rec, 750) // Alpha ends at content x 700

	if _, ok := rec.TextOp("Alpha"); ok {
		t.Error("label drawn for a bar left of the viewport")
	}
	if meshes := rec.OpsOfKind(draw.OpMesh); len(meshes) != 0 {
		t.Errorf("got %d meshes for a culled bar, want 0", len(meshes))
	}
	if _, ok := rec.TextOp("Beta"); !ok {
		t.Error("visible bar was culled")
	}
}

func TestShow_YearOnlyEndFades(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	render(t, rec, 0)

	meshes := rec.OpsOfKind(draw.OpMesh)
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2 (Alpha only)", len(meshes))
	}

	body := meshes[0].Mesh
	if got, want := body.Bounds(), geom.RectFromXYRanges(700, 720, 0, 28); got != want {
		t.Errorf("fade bounds = %v, want %v", got, want)
	}
	if body.Vertices[0].Color != draw.MultiplyAlpha(testColor, 0.2) {
		t.Errorf("fade starts at %v, want the bar background", body.Vertices[0].Color)
	}
	if body.Vertices[1].Color != draw.Transparent {
		t.Errorf("fade ends at %v, want transparent", body.Vertices[1].Color)
	}

	accent := meshes[1].Mesh
	if got, want := accent.Bounds(), geom.RectFromXYRanges(700, 720, 26, 28); got != want {
		t.Errorf("accent fade bounds = %v, want %v", got, want)
	}
	if accent.Vertices[0].Color != testColor {
		t.Errorf("accent fade starts at %v, want %v", accent.Vertices[0].Color, testColor)
	}
}

func TestShow_TiedEndDatesUseLastListed(t *testing.T) {
	tests := []struct {
		name   string
		ends   []model.PartialDate
		meshes int
	}{
		{"month listed last", []model.PartialDate{model.Year(1995), model.YearMonth(1995, 1)}, 0},
		{"year listed last", []model.PartialDate{model.YearMonth(1995, 1), model.Year(1995)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var milestones []model.Milestone
			for _, d := range tt.ends {
				milestones = append(milestones, model.Milestone{Kind: model.EndOfProduction, Date: d})
			}
			c, err := catalog.New(1970, 2025, []model.Lineage{{
				Name: "Ties", Maker: model.Sega, Color: testColor,
				Consoles: []model.Console{{
					Name: "Delta", ShortName: "D",
					Releases:   []model.Release{{Region: model.JP, Date: model.Year(1990)}},
					Milestones: milestones,
				}},
			}})
			if err != nil {
				t.Fatalf("catalog.New() error: %v", err)
			}

			rec := draw.NewRecorder(800, 400)
			scale := 20.0
			New(c).Show(rec, Frame{
				Viewport:       geom.RectFromXYRanges(0, 800, 0, 400),
				AvailableWidth: 1300,
				PixelsPerYear:  &scale,
			})
			if got := len(rec.OpsOfKind(draw.OpMesh)); got != tt.meshes {
				t.Errorf("got %d meshes, want %d", got, tt.meshes)
			}
		})
	}
}

func TestShow_Gridlines(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	render(t, rec, 0)

	// 20 px/year steps by 5; content 0..800 covers 1970..2000
	lines := rec.OpsOfKind(draw.OpLine)
	if len(lines) != 7 {
		t.Fatalf("got %d gridlines, want 7", len(lines))
	}
	if lines[0].From != geom.Pt(200.5, 0) || lines[0].To != geom.Pt(200.5, 400) {
		t.Errorf("first gridline %v -> %v, want x=200.5 across the clip", lines[0].From, lines[0].To)
	}

	label, ok := rec.TextOp("1970")
	if !ok {
		t.Fatal("no 1970 label")
	}
	if label.Anchor != geom.LeftBottom || label.Rect.Left() != 202 || label.Rect.Bottom() != 400 {
		t.Errorf("1970 label at %v anchored %v, want left-bottom at (202, 400)", label.Rect, label.Anchor)
	}
	if _, ok := rec.TextOp("2005"); ok {
		t.Error("label drawn for a year right of the viewport")
	}
}

func TestShow_LineageBand(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	render(t, rec, 0)

	header, ok := findFill(rec, geom.RectFromXYRanges(0, 200, 0, 84))
	if !ok {
		t.Fatal("no lineage header")
	}
	if want := draw.MultiplyAlpha(testColor, 0.6); header.Color != want {
		t.Errorf("header color = %v, want %v", header.Color, want)
	}

	if _, ok := findFill(rec, geom.RectFromXYRanges(200, 800, 0, 84)); !ok {
		t.Error("background strip does not reach the clip's right edge")
	}

	name, ok := rec.TextOp("Test Lineage")
	if !ok || name.Anchor != geom.CenterCenter || name.Color != draw.White {
		t.Errorf("lineage name op = %+v", name)
	}
}

func TestShow_LabelSticksToClipLeft(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	render(t, rec, 700) // Beta starts at content x ~643

	label, ok := rec.TextOp("Beta")
	if !ok {
		t.Fatal("no Beta label")
	}
	if label.Rect.Left() != LabelMargin {
		t.Errorf("label left = %v, want %v", label.Rect.Left(), LabelMargin)
	}
}

func TestLabelAnchor(t *testing.T) {
	clip := geom.RectFromXYRanges(0, 800, 0, 400)

	tests := []struct {
		name  string
		bar   geom.Rect
		w     float64
		wantX float64
	}{
		{"fully visible", geom.RectFromXYRanges(100, 400, 0, 28), 50, 108},
		{"clamped to clip left", geom.RectFromXYRanges(-200, 400, 0, 28), 50, 8},
		{"stops at bar end", geom.RectFromXYRanges(-200, 50, 0, 28), 50, 50 - 66 + 8},
		{"narrow bar overflows", geom.RectFromXYRanges(-40, 20, 0, 28), 50, -32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labelAnchor(tt.bar, clip, tt.w)
			if got.X != tt.wantX {
				t.Errorf("anchor x = %v, want %v", got.X, tt.wantX)
			}
			if got.Y != 14 {
				t.Errorf("anchor y = %v, want 14", got.Y)
			}
		})
	}
}

func TestShow_Hover(t *testing.T) {
	rec := draw.NewRecorder(800, 400).WithPointer(650, 10)
	tl, _ := render(t, rec, 0)

	bar := geom.RectFromXYRanges(600, 700, 0, 28)
	op, ok := findFill(rec, bar)
	if !ok {
		t.Fatal("hovered bar not drawn")
	}
	if want := draw.MultiplyAlpha(testColor, 0.4); op.Color != want {
		t.Errorf("hovered bar color = %v, want %v", op.Color, want)
	}

	label, _ := rec.TextOp("Alpha")
	if label.Color != tl.Theme.StrongText {
		t.Errorf("hovered label color = %v, want %v", label.Color, tl.Theme.StrongText)
	}

	if len(rec.Tooltips) != 1 {
		t.Fatalf("got %d tooltips, want 1", len(rec.Tooltips))
	}
	if got := rec.Tooltips[0][1].Text(); got != "Sales:" {
		t.Errorf("tooltip second row = %q, want Sales:", got)
	}
}

func TestShow_NoHover(t *testing.T) {
	rec := draw.NewRecorder(800, 400)
	tl, _ := render(t, rec, 0)

	if len(rec.Tooltips) != 0 {
		t.Errorf("got %d tooltips without a pointer", len(rec.Tooltips))
	}
	label, _ := rec.TextOp("Alpha")
	if want := draw.Lerp(tl.Theme.Text, tl.Theme.StrongText, 0.5); label.Color != want {
		t.Errorf("label color = %v, want %v", label.Color, want)
	}
}

func TestContentSize(t *testing.T) {
	tl := New(testCatalog(t))

	w, h := tl.ContentSize(20)
	if w != 1300 || h != 3*28+24 {
		t.Errorf("ContentSize(20) = %v×%v, want 1300×108", w, h)
	}

	tl.RowHeight = CompactRowHeight
	if _, h := tl.ContentSize(20); h != 3*24+24 {
		t.Errorf("compact height = %v, want 96", h)
	}
}

func TestBarExtent_PanicsWithoutRelease(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BarExtent() did not panic for a console without releases")
		}
	}()
	tl := New(testCatalog(t))
	BarExtent(tl.Mapper(20), &model.Console{Name: "Ghost"}, 800)
}

func TestSalesTooltip(t *testing.T) {
	c := testCatalog(t)
	_, alpha, _ := c.Find("A")
	theme := DefaultTheme()

	rows := SalesTooltip(alpha, theme)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	if got := rows[0].Text(); got != "A · Gen 4" {
		t.Errorf("title = %q, want %q", got, "A · Gen 4")
	}
	if got := rows[2].Text(); got != "  Global: 30.75 M" {
		t.Errorf("global row = %q", got)
	}
	if strings.Contains(rows[2].Text(), "Unverified") {
		t.Error("sourced figure marked unverified")
	}

	jp := rows[3]
	if got := jp[0].Text; got != "    JP: 3.58 M" {
		t.Errorf("JP row = %q", got)
	}
	if len(jp) != 2 || !strings.Contains(jp[1].Text, "Unverified") || jp[1].Color != theme.Warn {
		t.Errorf("unsourced figure row = %+v, want a warning span", jp)
	}
}

func TestSalesTooltip_NoGeneration(t *testing.T) {
	c := testCatalog(t)
	_, beta, _ := c.Find("B")

	rows := SalesTooltip(beta, DefaultTheme())
	if got := rows[0].Text(); got != "B" {
		t.Errorf("title = %q, want B", got)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows for a console without figures, want 2", len(rows))
	}
}

func TestSalesLine_Regions(t *testing.T) {
	tests := []struct {
		region model.Region
		want   string
	}{
		{model.Global, "  Global: 1.50 M"},
		{model.JP, "    JP: 1.50 M"},
		{model.NA, "    NA: 1.50 M"},
		{model.EU, "    EU: 1.50 M"},
	}

	for _, tt := range tests {
		m := model.Measure{Kind: model.UnitsSold, Value: model.Exact[uint64](1_500_000), Region: tt.region}
		if got := SalesLine(m); got != tt.want {
			t.Errorf("SalesLine(%v) = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestSalesTooltip_German(t *testing.T) {
	gotext.Configure("../../../locales", "de", "default")
	t.Cleanup(func() { gotext.Configure("../../../locales", "en", "default") })

	c := testCatalog(t)
	_, alpha, _ := c.Find("A")

	rows := SalesTooltip(alpha, DefaultTheme())
	if got, want := rows[0].Text(), "A · Gen. 4"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
	if got, want := rows[2].Text(), "  Weltweit: 30.75 Mio."; got != want {
		t.Errorf("global row = %q, want %q", got, want)
	}
}
