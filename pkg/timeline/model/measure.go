package model

import "cmp"

// MeasureKind is the statistic a Measure captures
type MeasureKind int

const (
	UnitsSold     MeasureKind = iota // lifetime
	GamesReleased                    // lifetime
	AttachRate                       // games per console, ×100
)

func (k MeasureKind) String() string {
	switch k {
	case UnitsSold:
		return "UnitsSold"
	case GamesReleased:
		return "GamesReleased"
	case AttachRate:
		return "AttachRate"
	default:
		return "Unknown"
	}
}

// SeriesKind is the statistic a Series tracks per year
type SeriesKind int

const (
	UnitsSoldPerYear SeriesKind = iota
	GamesReleasedPerYear
)

func (k SeriesKind) String() string {
	switch k {
	case UnitsSoldPerYear:
		return "UnitsSoldPerYear"
	case GamesReleasedPerYear:
		return "GamesReleasedPerYear"
	default:
		return "Unknown"
	}
}

// Estimate is a point value with optional bounds
type Estimate[T cmp.Ordered] struct {
	Point T
	Low   *T
	High  *T
}

// Exact returns an estimate without bounds
func Exact[T cmp.Ordered](v T) Estimate[T] {
	return Estimate[T]{Point: v}
}

// Between returns an estimate with both bounds set
func Between[T cmp.Ordered](point, low, high T) Estimate[T] {
	return Estimate[T]{Point: point, Low: &low, High: &high}
}

// Consistent reports whether Low <= Point <= High for the bounds present
func (e Estimate[T]) Consistent() bool {
	if e.Low != nil && cmp.Less(e.Point, *e.Low) {
		return false
	}
	if e.High != nil && cmp.Less(*e.High, e.Point) {
		return false
	}
	return true
}

// Measure is a scalar statistic snapshot
type Measure struct {
	Kind     MeasureKind
	Value    Estimate[uint64]
	Region   Region
	AsOfYear *int
	Source   *Source
}

// Verified reports whether the figure has a citation
func (m Measure) Verified() bool {
	return m.Source != nil
}

// TimePoint is one year of a Series
type TimePoint struct {
	Year  int
	Value uint64
}

// Series is a per-year statistic
type Series struct {
	Kind   SeriesKind
	Points []TimePoint
	Region Region
	Source *Source
}

// AsOf returns a pointer to y, for filling Measure.AsOfYear
func AsOf(y int) *int {
	return &y
}
