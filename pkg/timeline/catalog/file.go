package catalog

import (
	"bytes"
	"cmp"
	"fmt"
	"image/color"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

// fileCatalog is the on-disk YAML layout of a catalog
type fileCatalog struct {
	StartYear int           `yaml:"start_year"`
	EndYear   int           `yaml:"end_year"`
	Lineages  []fileLineage `yaml:"lineages"`
}

type fileLineage struct {
	Name     string        `yaml:"name"`
	Maker    string        `yaml:"maker"`
	Color    string        `yaml:"color"` // "#RRGGBB"
	Consoles []fileConsole `yaml:"consoles"`
}

type fileConsole struct {
	Name       string          `yaml:"name"`
	ShortName  string          `yaml:"short_name"`
	Generation *uint8          `yaml:"generation"`
	Releases   []fileRelease   `yaml:"releases"`
	Milestones []fileMilestone `yaml:"milestones"`
	Measures   []fileMeasure   `yaml:"measures"`
	Series     []fileSeries    `yaml:"series"`
}

type fileSource struct {
	Label string  `yaml:"label"`
	URL   *string `yaml:"url"`
}

type fileRelease struct {
	Region string      `yaml:"region"`
	Date   string      `yaml:"date"`
	Source *fileSource `yaml:"source"`
}

type fileMilestone struct {
	Kind   string      `yaml:"kind"`
	Date   string      `yaml:"date"`
	Region *string     `yaml:"region"`
	Source *fileSource `yaml:"source"`
}

type fileMeasure struct {
	Kind     string      `yaml:"kind"`
	Value    uint64      `yaml:"value"`
	Low      *uint64     `yaml:"low"`
	High     *uint64     `yaml:"high"`
	Region   string      `yaml:"region"`
	AsOfYear *int        `yaml:"as_of_year"`
	Source   *fileSource `yaml:"source"`
}

type fileSeries struct {
	Kind   string         `yaml:"kind"`
	Region string         `yaml:"region"`
	Points map[int]uint64 `yaml:"points"` // year -> value
	Source *fileSource    `yaml:"source"`
}

var (
	makers = map[string]model.Maker{
		"nintendo": model.Nintendo, "sony": model.Sony, "microsoft": model.Microsoft,
		"sega": model.Sega, "valve": model.Valve,
	}
	regions = map[string]model.Region{
		"": model.Global, "global": model.Global, "jp": model.JP, "na": model.NA, "eu": model.EU,
	}
	milestoneKinds = map[string]model.MilestoneKind{
		"end_of_production":     model.EndOfProduction,
		"last_first_party_game": model.LastFirstPartyGame,
		"last_third_party_game": model.LastThirdPartyGame,
		"last_unit_sold":        model.LastUnitSold,
	}
	measureKinds = map[string]model.MeasureKind{
		"units_sold": model.UnitsSold, "games_released": model.GamesReleased, "attach_rate": model.AttachRate,
	}
	seriesKinds = map[string]model.SeriesKind{
		"units_sold_per_year": model.UnitsSoldPerYear, "games_released_per_year": model.GamesReleasedPerYear,
	}
)

// Load reads a YAML catalog file and validates it
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML catalog data and validates it. Unknown fields are
// rejected so a typo cannot silently drop data.
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	lineages := make([]model.Lineage, 0, len(fc.Lineages))
	for _, fl := range fc.Lineages {
		l, err := fl.toModel()
		if err != nil {
			return nil, err
		}
		lineages = append(lineages, l)
	}

	return New(fc.StartYear, fc.EndYear, lineages)
}

func (fl fileLineage) toModel() (model.Lineage, error) {
	l := model.Lineage{Name: fl.Name}

	maker, ok := makers[strings.ToLower(fl.Maker)]
	if !ok {
		return l, &ValidationError{Lineage: fl.Name, Err: fmt.Errorf("unknown maker %q", fl.Maker)}
	}
	l.Maker = maker

	c, err := ParseHexColor(fl.Color)
	if err != nil {
		return l, &ValidationError{Lineage: fl.Name, Err: err}
	}
	l.Color = c

	for _, fc := range fl.Consoles {
		con, err := fc.toModel()
		if err != nil {
			return l, &ValidationError{Lineage: fl.Name, Console: fc.Name, Err: err}
		}
		l.Consoles = append(l.Consoles, con)
	}
	return l, nil
}

func (fc fileConsole) toModel() (model.Console, error) {
	con := model.Console{Name: fc.Name, ShortName: fc.ShortName, Generation: fc.Generation}

	for _, r := range fc.Releases {
		region, err := lookup(regions, r.Region, "region")
		if err != nil {
			return con, err
		}
		date, err := parseDate(r.Date)
		if err != nil {
			return con, err
		}
		con.Releases = append(con.Releases, model.Release{Region: region, Date: date, Source: r.Source.toModel()})
	}

	for _, ms := range fc.Milestones {
		kind, err := lookup(milestoneKinds, ms.Kind, "milestone kind")
		if err != nil {
			return con, err
		}
		date, err := parseDate(ms.Date)
		if err != nil {
			return con, err
		}
		out := model.Milestone{Kind: kind, Date: date, Source: ms.Source.toModel()}
		if ms.Region != nil {
			region, err := lookup(regions, *ms.Region, "region")
			if err != nil {
				return con, err
			}
			out.Region = model.In(region)
		}
		con.Milestones = append(con.Milestones, out)
	}

	for _, fm := range fc.Measures {
		kind, err := lookup(measureKinds, fm.Kind, "measure kind")
		if err != nil {
			return con, err
		}
		region, err := lookup(regions, fm.Region, "region")
		if err != nil {
			return con, err
		}
		con.Measures = append(con.Measures, model.Measure{
			Kind:     kind,
			Value:    model.Estimate[uint64]{Point: fm.Value, Low: fm.Low, High: fm.High},
			Region:   region,
			AsOfYear: fm.AsOfYear,
			Source:   fm.Source.toModel(),
		})
	}

	for _, fs := range fc.Series {
		kind, err := lookup(seriesKinds, fs.Kind, "series kind")
		if err != nil {
			return con, err
		}
		region, err := lookup(regions, fs.Region, "region")
		if err != nil {
			return con, err
		}
		con.Series = append(con.Series, model.Series{
			Kind:   kind,
			Region: region,
			Points: sortedPoints(fs.Points),
			Source: fs.Source.toModel(),
		})
	}

	return con, nil
}

func (fs *fileSource) toModel() *model.Source {
	if fs == nil {
		return nil
	}
	return &model.Source{Label: fs.Label, URL: fs.URL}
}

func lookup[V any](table map[string]V, name, what string) (V, error) {
	v, ok := table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return v, fmt.Errorf("unknown %s %q", what, name)
	}
	return v, nil
}

func parseDate(s string) (model.PartialDate, error) {
	d, err := model.ParsePartialDate(s)
	if err != nil {
		return d, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return d, nil
}

func sortedPoints(points map[int]uint64) []model.TimePoint {
	out := make([]model.TimePoint, 0, len(points))
	for year, v := range points {
		out = append(out, model.TimePoint{Year: year, Value: v})
	}
	slices.SortFunc(out, func(a, b model.TimePoint) int { return cmp.Compare(a.Year, b.Year) })
	return out
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a premultiplied colour
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}

	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
