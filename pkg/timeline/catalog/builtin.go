package catalog

import (
	"sync"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	m "github.com/darkwater/console-timeline/pkg/timeline/model"
)

// Axis range of the built-in dataset
const (
	StartYear = 1970
	EndYear   = 2026
)

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the compiled-in catalog. It panics on the first call if the
// data fails validation.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		builtin = MustNew(StartYear, EndYear, builtinLineages())
	})
	return builtin
}

func units(n uint64) m.Estimate[uint64] { return m.Exact(n) }

func sold(n uint64, src string) m.Measure {
	meas := m.Measure{Kind: m.UnitsSold, Value: units(n), Region: m.Global}
	if src != "" {
		meas.Source = m.Cite(src)
	}
	return meas
}

func soldIn(region m.Region, n uint64, src string) m.Measure {
	meas := sold(n, src)
	meas.Region = region
	return meas
}

func eop(d m.PartialDate) m.Milestone {
	return m.Milestone{Kind: m.EndOfProduction, Date: d}
}

func rel(region m.Region, d m.PartialDate) m.Release {
	return m.Release{Region: region, Date: d}
}

func builtinLineages() []m.Lineage {
	return []m.Lineage{
		{
			Name:  "Nintendo Home",
			Maker: m.Nintendo,
			Color: draw.Hex(0xE60012),
			Consoles: []m.Console{
				{
					Name: "Nintendo Entertainment System", ShortName: "NES", Generation: m.Gen(3),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1983, 7, 15)), rel(m.NA, m.YearMonth(1985, 10)), rel(m.EU, m.Year(1986))},
					Milestones: []m.Milestone{eop(m.YearMonth(2003, 9))},
					Measures: []m.Measure{
						sold(61_910_000, "Nintendo IR"),
						soldIn(m.JP, 19_350_000, "Nintendo IR"),
						soldIn(m.NA, 34_000_000, ""),
					},
				},
				{
					Name: "Super Nintendo Entertainment System", ShortName: "SNES", Generation: m.Gen(4),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1990, 11, 21)), rel(m.NA, m.YearMonth(1991, 8)), rel(m.EU, m.Year(1992))},
					Milestones: []m.Milestone{eop(m.YearMonth(2003, 9))},
					Measures: []m.Measure{
						sold(49_100_000, "Nintendo IR"),
						soldIn(m.JP, 17_170_000, "Nintendo IR"),
						soldIn(m.NA, 23_350_000, "Nintendo IR"),
					},
				},
				{
					Name: "Nintendo 64", ShortName: "N64", Generation: m.Gen(5),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1996, 6, 23)), rel(m.NA, m.YearMonth(1996, 9)), rel(m.EU, m.YearMonth(1997, 3))},
					Milestones: []m.Milestone{eop(m.Year(2002))},
					Measures: []m.Measure{
						sold(32_930_000, "Nintendo IR"),
						soldIn(m.JP, 5_540_000, "Nintendo IR"),
					},
				},
				{
					Name: "Nintendo GameCube", ShortName: "GameCube", Generation: m.Gen(6),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(2001, 9, 14)), rel(m.NA, m.YearMonth(2001, 11)), rel(m.EU, m.YearMonth(2002, 5))},
					Milestones: []m.Milestone{eop(m.Year(2007))},
					Measures:   []m.Measure{sold(21_740_000, "Nintendo IR")},
				},
				{
					Name: "Wii", ShortName: "Wii", Generation: m.Gen(7),
					Releases:   []m.Release{rel(m.NA, m.YearMonthDay(2006, 11, 19)), rel(m.JP, m.YearMonth(2006, 12)), rel(m.EU, m.YearMonth(2006, 12))},
					Milestones: []m.Milestone{eop(m.YearMonth(2013, 10))},
					Measures:   []m.Measure{sold(101_630_000, "Nintendo IR")},
				},
				{
					Name: "Wii U", ShortName: "Wii U", Generation: m.Gen(8),
					Releases:   []m.Release{rel(m.NA, m.YearMonthDay(2012, 11, 18)), rel(m.EU, m.YearMonth(2012, 11)), rel(m.JP, m.YearMonth(2012, 12))},
					Milestones: []m.Milestone{eop(m.YearMonth(2017, 1))},
					Measures:   []m.Measure{sold(13_560_000, "Nintendo IR")},
				},
				{
					Name: "Nintendo Switch", ShortName: "Switch", Generation: m.Gen(9),
					Releases: []m.Release{rel(m.Global, m.YearMonthDay(2017, 3, 3))},
					Measures: []m.Measure{
						{Kind: m.UnitsSold, Value: units(152_120_000), Region: m.Global, AsOfYear: m.AsOf(2025), Source: m.Cite("Nintendo IR 2025Q2")},
						soldIn(m.JP, 35_000_000, ""),
					},
					Series: []m.Series{{
						Kind:   m.UnitsSoldPerYear,
						Region: m.Global,
						Source: m.Cite("Nintendo IR"),
						Points: []m.TimePoint{
							{Year: 2017, Value: 15_050_000},
							{Year: 2018, Value: 16_950_000},
							{Year: 2019, Value: 21_030_000},
							{Year: 2020, Value: 28_830_000},
							{Year: 2021, Value: 23_060_000},
							{Year: 2022, Value: 17_970_000},
							{Year: 2023, Value: 15_700_000},
							{Year: 2024, Value: 10_800_000},
						},
					}},
				},
				{
					Name: "Nintendo Switch 2", ShortName: "Switch 2", Generation: m.Gen(9),
					Releases: []m.Release{rel(m.Global, m.YearMonthDay(2025, 6, 5))},
					Measures: []m.Measure{
						{Kind: m.UnitsSold, Value: units(5_820_000), Region: m.Global, AsOfYear: m.AsOf(2025), Source: m.Cite("Nintendo IR 2025Q2")},
					},
				},
			},
		},
		{
			Name:  "Nintendo Handheld",
			Maker: m.Nintendo,
			Color: draw.Hex(0x8B8FA8),
			Consoles: []m.Console{
				{
					Name: "Game Boy", ShortName: "GB", Generation: m.Gen(4),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1989, 4, 21)), rel(m.NA, m.YearMonth(1989, 7)), rel(m.EU, m.YearMonth(1990, 9))},
					Milestones: []m.Milestone{eop(m.Year(2003))},
					Measures:   []m.Measure{sold(118_690_000, "Nintendo IR")},
				},
				{
					Name: "Game Boy Advance", ShortName: "GBA", Generation: m.Gen(6),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(2001, 3, 21)), rel(m.NA, m.YearMonth(2001, 6)), rel(m.EU, m.YearMonth(2001, 6))},
					Milestones: []m.Milestone{eop(m.Year(2010))},
					Measures:   []m.Measure{sold(81_510_000, "Nintendo IR")},
				},
				{
					Name: "Nintendo DS", ShortName: "DS", Generation: m.Gen(7),
					Releases:   []m.Release{rel(m.NA, m.YearMonthDay(2004, 11, 21)), rel(m.JP, m.YearMonth(2004, 12)), rel(m.EU, m.YearMonth(2005, 3))},
					Milestones: []m.Milestone{eop(m.Year(2014))},
					Measures:   []m.Measure{sold(154_020_000, "Nintendo IR")},
				},
				{
					Name: "Nintendo 3DS", ShortName: "3DS", Generation: m.Gen(8),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(2011, 2, 26)), rel(m.EU, m.YearMonth(2011, 3)), rel(m.NA, m.YearMonth(2011, 3))},
					Milestones: []m.Milestone{eop(m.YearMonthDay(2020, 9, 16))},
					Measures:   []m.Measure{sold(75_940_000, "Nintendo IR")},
				},
			},
		},
		{
			Name:  "PlayStation",
			Maker: m.Sony,
			Color: draw.Hex(0x003791),
			Consoles: []m.Console{
				{
					Name: "PlayStation", ShortName: "PS1", Generation: m.Gen(5),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1994, 12, 3)), rel(m.NA, m.YearMonth(1995, 9)), rel(m.EU, m.YearMonth(1995, 9))},
					Milestones: []m.Milestone{eop(m.YearMonth(2006, 3))},
					Measures:   []m.Measure{sold(102_490_000, "Sony IR")},
				},
				{
					Name: "PlayStation 2", ShortName: "PS2", Generation: m.Gen(6),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(2000, 3, 4)), rel(m.NA, m.YearMonth(2000, 10)), rel(m.EU, m.YearMonth(2000, 11))},
					Milestones: []m.Milestone{eop(m.YearMonth(2012, 12)), eop(m.YearMonth(2013, 1))},
					Measures: []m.Measure{
						{Kind: m.UnitsSold, Value: m.Between[uint64](155_000_000, 150_000_000, 160_000_000), Region: m.Global, Source: m.Cite("Sony 2024")},
					},
				},
				{
					Name: "PlayStation 3", ShortName: "PS3", Generation: m.Gen(7),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(2006, 11, 11)), rel(m.NA, m.YearMonth(2006, 11)), rel(m.EU, m.YearMonth(2007, 3))},
					Milestones: []m.Milestone{eop(m.Year(2017))},
					Measures:   []m.Measure{sold(87_400_000, "")},
				},
				{
					Name: "PlayStation 4", ShortName: "PS4", Generation: m.Gen(8),
					Releases: []m.Release{rel(m.NA, m.YearMonthDay(2013, 11, 15)), rel(m.EU, m.YearMonth(2013, 11)), rel(m.JP, m.YearMonth(2014, 2))},
					Measures: []m.Measure{sold(117_200_000, "Sony IR")},
				},
				{
					Name: "PlayStation 5", ShortName: "PS5", Generation: m.Gen(9),
					Releases: []m.Release{rel(m.NA, m.YearMonthDay(2020, 11, 12)), rel(m.JP, m.YearMonth(2020, 11)), rel(m.EU, m.YearMonth(2020, 11))},
					Measures: []m.Measure{
						{Kind: m.UnitsSold, Value: units(80_300_000), Region: m.Global, AsOfYear: m.AsOf(2025), Source: m.Cite("Sony IR 2025Q2")},
					},
				},
			},
		},
		{
			Name:  "PlayStation Portable",
			Maker: m.Sony,
			Color: draw.Hex(0x5A6E9C),
			Consoles: []m.Console{
				{
					Name: "PlayStation Portable", ShortName: "PSP", Generation: m.Gen(7),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(2004, 12, 12)), rel(m.NA, m.YearMonth(2005, 3)), rel(m.EU, m.YearMonth(2005, 9))},
					Milestones: []m.Milestone{eop(m.Year(2014))},
					Measures:   []m.Measure{sold(80_000_000, "")},
				},
				{
					Name: "PlayStation Vita", ShortName: "Vita", Generation: m.Gen(8),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(2011, 12, 17)), rel(m.NA, m.YearMonth(2012, 2)), rel(m.EU, m.YearMonth(2012, 2))},
					Milestones: []m.Milestone{eop(m.YearMonth(2019, 3))},
					Measures: []m.Measure{
						{Kind: m.UnitsSold, Value: m.Between[uint64](15_000_000, 10_000_000, 16_000_000), Region: m.Global},
					},
				},
			},
		},
		{
			Name:  "Xbox",
			Maker: m.Microsoft,
			Color: draw.Hex(0x107C10),
			Consoles: []m.Console{
				{
					Name: "Xbox", ShortName: "Xbox", Generation: m.Gen(6),
					Releases:   []m.Release{rel(m.NA, m.YearMonthDay(2001, 11, 15)), rel(m.JP, m.YearMonth(2002, 2)), rel(m.EU, m.YearMonth(2002, 3))},
					Milestones: []m.Milestone{eop(m.Year(2006))},
					Measures:   []m.Measure{sold(24_000_000, "Microsoft")},
				},
				{
					Name: "Xbox 360", ShortName: "360", Generation: m.Gen(7),
					Releases:   []m.Release{rel(m.NA, m.YearMonthDay(2005, 11, 22)), rel(m.EU, m.YearMonth(2005, 12)), rel(m.JP, m.YearMonth(2005, 12))},
					Milestones: []m.Milestone{eop(m.YearMonth(2016, 4))},
					Measures:   []m.Measure{sold(84_000_000, "")},
				},
				{
					Name: "Xbox One", ShortName: "One", Generation: m.Gen(8),
					Releases:   []m.Release{rel(m.NA, m.YearMonthDay(2013, 11, 22)), rel(m.EU, m.YearMonth(2013, 11)), rel(m.JP, m.YearMonth(2014, 9))},
					Milestones: []m.Milestone{eop(m.Year(2020))},
					Measures: []m.Measure{
						{Kind: m.UnitsSold, Value: m.Between[uint64](58_000_000, 50_000_000, 60_000_000), Region: m.Global},
					},
				},
				{
					Name: "Xbox Series X|S", ShortName: "Series", Generation: m.Gen(9),
					Releases: []m.Release{rel(m.Global, m.YearMonthDay(2020, 11, 10))},
					Measures: []m.Measure{sold(30_000_000, "")},
				},
			},
		},
		{
			Name:  "Sega",
			Maker: m.Sega,
			Color: draw.Hex(0x1E90FF),
			Consoles: []m.Console{
				{
					Name: "SG-1000", ShortName: "SG-1000", Generation: m.Gen(3),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1983, 7, 15))},
					Milestones: []m.Milestone{eop(m.Year(1985))},
				},
				{
					Name: "Master System", ShortName: "SMS", Generation: m.Gen(3),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1985, 10, 20)), rel(m.NA, m.YearMonth(1986, 9)), rel(m.EU, m.Year(1987))},
					Milestones: []m.Milestone{eop(m.YearMonth(1996, 12))},
					Measures:   []m.Measure{sold(13_000_000, "")},
				},
				{
					Name: "Mega Drive / Genesis", ShortName: "Genesis", Generation: m.Gen(4),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1988, 10, 29)), rel(m.NA, m.YearMonth(1989, 8)), rel(m.EU, m.YearMonth(1990, 11))},
					Milestones: []m.Milestone{eop(m.Year(1997))},
					Measures: []m.Measure{
						sold(30_750_000, "Sega"),
						soldIn(m.JP, 3_580_000, "Sega"),
						soldIn(m.NA, 18_000_000, ""),
						soldIn(m.EU, 8_000_000, ""),
					},
				},
				{
					Name: "Sega Saturn", ShortName: "Saturn", Generation: m.Gen(5),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1994, 11, 22)), rel(m.NA, m.YearMonth(1995, 5)), rel(m.EU, m.YearMonth(1995, 7))},
					Milestones: []m.Milestone{eop(m.Year(2000))},
					Measures:   []m.Measure{sold(9_260_000, "")},
				},
				{
					Name: "Dreamcast", ShortName: "Dreamcast", Generation: m.Gen(6),
					Releases:   []m.Release{rel(m.JP, m.YearMonthDay(1998, 11, 27)), rel(m.NA, m.YearMonthDay(1999, 9, 9)), rel(m.EU, m.YearMonth(1999, 10))},
					Milestones: []m.Milestone{eop(m.YearMonth(2001, 3))},
					Measures:   []m.Measure{sold(9_130_000, "Sega")},
				},
			},
		},
		{
			Name:  "Valve",
			Maker: m.Valve,
			Color: draw.Hex(0xC7D5E0),
			Consoles: []m.Console{
				{
					Name: "Steam Deck", ShortName: "Steam Deck",
					Releases: []m.Release{rel(m.Global, m.YearMonthDay(2022, 2, 25))},
					Measures: []m.Measure{
						{Kind: m.UnitsSold, Value: m.Between[uint64](4_000_000, 3_000_000, 5_000_000), Region: m.Global, AsOfYear: m.AsOf(2024)},
					},
				},
			},
		},
	}
}
