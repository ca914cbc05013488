package catalog

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

const validYAML = `
start_year: 1980
end_year: 2000
lineages:
  - name: Sega
    maker: sega
    color: "#1E90FF"
    consoles:
      - name: Mega Drive
        short_name: MD
        generation: 4
        releases:
          - {region: jp, date: "1988-10-29"}
          - {region: na, date: "1989-08"}
        milestones:
          - {kind: end_of_production, date: "1997"}
        measures:
          - kind: units_sold
            value: 30750000
            low: 29000000
            high: 32000000
            source: {label: Sega}
          - {kind: units_sold, region: jp, value: 3580000}
        series:
          - kind: units_sold_per_year
            points: {1990: 2000000, 1989: 1000000}
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.yaml", validYAML)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.StartYear != 1980 || c.EndYear != 2000 {
		t.Errorf("range = %d..%d, want 1980..2000", c.StartYear, c.EndYear)
	}
	if len(c.Lineages) != 1 || len(c.Lineages[0].Consoles) != 1 {
		t.Fatalf("got %d lineages, want 1 with 1 console", len(c.Lineages))
	}

	l := c.Lineages[0]
	if l.Maker != model.Sega {
		t.Errorf("Maker = %v, want Sega", l.Maker)
	}
	if want := (color.RGBA{R: 0x1E, G: 0x90, B: 0xFF, A: 0xFF}); l.Color != want {
		t.Errorf("Color = %v, want %v", l.Color, want)
	}

	con := l.Consoles[0]
	if con.Generation == nil || *con.Generation != 4 {
		t.Errorf("Generation = %v, want 4", con.Generation)
	}
	if first, _ := con.FirstRelease(); first != model.YearMonthDay(1988, 10, 29) {
		t.Errorf("FirstRelease() = %v, want 1988-10-29", first)
	}
	if end, ok := con.Discontinued(); !ok || !end.Date.IsYearOnly() || end.Date.Year() != 1997 {
		t.Errorf("Discontinued() = %v, %v; want year-only 1997", end.Date, ok)
	}

	sold := con.MeasuresOf(model.UnitsSold)
	if len(sold) != 2 {
		t.Fatalf("got %d UnitsSold measures, want 2", len(sold))
	}
	if !sold[0].Verified() || sold[1].Verified() {
		t.Errorf("Verified() = %v, %v; want true, false", sold[0].Verified(), sold[1].Verified())
	}
	if sold[1].Region != model.JP {
		t.Errorf("Region = %v, want JP", sold[1].Region)
	}

	s, ok := con.SeriesOf(model.UnitsSoldPerYear, model.Global)
	if !ok || len(s.Points) != 2 || s.Points[0].Year != 1989 {
		t.Errorf("series points = %v, want sorted starting at 1989", s.Points)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		edit func(string) string
		want string
	}{
		{"no releases", func(s string) string {
			return strings.Replace(s, `          - {region: jp, date: "1988-10-29"}
          - {region: na, date: "1989-08"}
`, "", 1)
		}, "no release"},
		{"unknown field", func(s string) string { return strings.Replace(s, "short_name", "shortname", 1) }, "shortname"},
		{"bad color", func(s string) string { return strings.Replace(s, "#1E90FF", "blue", 1) }, "color"},
		{"bad maker", func(s string) string { return strings.Replace(s, "maker: sega", "maker: atari", 1) }, "atari"},
		{"bad date", func(s string) string { return strings.Replace(s, "1989-08", "1989-18", 1) }, "invalid date"},
		{"bad region", func(s string) string { return strings.Replace(s, "region: na", "region: au", 1) }, "region"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.edit(validYAML)))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_NoReleaseIsValidationError(t *testing.T) {
	data := `
start_year: 1980
end_year: 2000
lineages:
  - {name: X, maker: valve, color: "#ffffff", consoles: [{name: Y, short_name: Y}]}
`
	_, err := Parse([]byte(data))
	if !errors.Is(err, ErrNoRelease) {
		t.Errorf("error = %v, want ErrNoRelease", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF8000", color.RGBA{255, 128, 0, 255}},
		{"ff800080", color.RGBA{128, 64, 0, 128}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "#12345", "#GGGGGG"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded, want error", in)
		}
	}
}
