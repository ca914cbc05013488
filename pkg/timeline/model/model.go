package model

import "image/color"

// Maker is the company behind a lineage
type Maker int

const (
	Nintendo Maker = iota
	Sony
	Microsoft
	Sega
	Valve
)

func (m Maker) String() string {
	switch m {
	case Nintendo:
		return "Nintendo"
	case Sony:
		return "Sony"
	case Microsoft:
		return "Microsoft"
	case Sega:
		return "Sega"
	case Valve:
		return "Valve"
	default:
		return "Unknown"
	}
}

// Region is a market a console was released or measured in
type Region int

const (
	Global Region = iota
	JP
	NA
	EU
)

func (r Region) String() string {
	switch r {
	case Global:
		return "Global"
	case JP:
		return "JP"
	case NA:
		return "NA"
	case EU:
		return "EU"
	default:
		return "Unknown"
	}
}

// Lineage is a maker's family of consoles, e.g. "Nintendo Home".
// Consoles are ordered; the order implies succession.
type Lineage struct {
	Name     string
	Maker    Maker
	Color    color.RGBA
	Consoles []Console
}

// Console is a single hardware platform
type Console struct {
	Name       string // "Super Nintendo Entertainment System"
	ShortName  string // "SNES"
	Generation *uint8
	Releases   []Release   // one per region launch
	Milestones []Milestone // end of production, last game, ...
	Measures   []Measure   // lifetime snapshots
	Series     []Series    // per-year data
}

// Gen returns a pointer to g, for filling Console.Generation
func Gen(g uint8) *uint8 {
	return &g
}

// FirstRelease returns the earliest release date. ok is false when the
// console has no releases, which a validated catalog never contains.
func (c *Console) FirstRelease() (date PartialDate, ok bool) {
	for i, r := range c.Releases {
		if i == 0 || r.Date.Before(date) {
			date = r.Date
		}
	}
	return date, len(c.Releases) > 0
}

// Discontinued returns the latest EndOfProduction milestone, if any. Among
// milestones that compare equal the last one listed wins.
func (c *Console) Discontinued() (Milestone, bool) {
	var (
		latest Milestone
		found  bool
	)
	for _, m := range c.Milestones {
		if m.Kind != EndOfProduction {
			continue
		}
		if !found || latest.Date.Compare(m.Date) <= 0 {
			latest = m
			found = true
		}
	}
	return latest, found
}

// MeasuresOf returns the measures of one kind, in catalog order
func (c *Console) MeasuresOf(kind MeasureKind) []Measure {
	var out []Measure
	for _, m := range c.Measures {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// SeriesOf returns the first series of one kind for a region
func (c *Console) SeriesOf(kind SeriesKind, region Region) (Series, bool) {
	for _, s := range c.Series {
		if s.Kind == kind && s.Region == region {
			return s, true
		}
	}
	return Series{}, false
}

// Source is a citation for a figure or date
type Source struct {
	Label string  // "Nintendo IR 2025Q2"
	URL   *string // optional for offline sources
}

// Cite returns a Source with only a label
func Cite(label string) *Source {
	return &Source{Label: label}
}

// Release is a console launch in one region
type Release struct {
	Region Region
	Date   PartialDate
	Source *Source
}

// MilestoneKind is a lifecycle event type
type MilestoneKind int

const (
	EndOfProduction MilestoneKind = iota
	LastFirstPartyGame
	LastThirdPartyGame
	LastUnitSold
)

func (k MilestoneKind) String() string {
	switch k {
	case EndOfProduction:
		return "EndOfProduction"
	case LastFirstPartyGame:
		return "LastFirstPartyGame"
	case LastThirdPartyGame:
		return "LastThirdPartyGame"
	case LastUnitSold:
		return "LastUnitSold"
	default:
		return "Unknown"
	}
}

// Milestone is a dated lifecycle event of a console
type Milestone struct {
	Kind   MilestoneKind
	Date   PartialDate
	Region *Region
	Source *Source
}

// In returns a pointer to r, for filling optional regions
func In(r Region) *Region {
	return &r
}
