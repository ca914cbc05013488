// Package axis converts between calendar dates and horizontal content-space
// pixel positions on the timeline.
package axis

import (
	"math"

	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

// LeftMargin is the width reserved for lineage headers before the first year
const LeftMargin = 200.0

// Mapper maps dates to x positions for a year range [StartYear, EndYear).
// PixelsPerYear is owned by the host and passed in each frame.
type Mapper struct {
	LeftMargin    float64
	StartYear     int
	EndYear       int
	PixelsPerYear float64
}

// New returns a mapper with the standard left margin
func New(start, end int, pixelsPerYear float64) Mapper {
	return Mapper{LeftMargin: LeftMargin, StartYear: start, EndYear: end, PixelsPerYear: pixelsPerYear}
}

// Span returns the number of years on the axis
func (m Mapper) Span() int {
	return m.EndYear - m.StartYear
}

// Width returns the full content width of the timeline
func (m Mapper) Width() float64 {
	return m.LeftMargin + m.PixelsPerYear*float64(m.Span())
}

// DateToX returns the x position of the start of the date's month. The day is
// ignored; a year-only date maps to January.
func (m Mapper) DateToX(d model.PartialDate) float64 {
	years := float64(d.Year()-m.StartYear) + (float64(d.Month())-1)/12
	return m.LeftMargin + years*m.PixelsPerYear
}

// XToDate returns the year and month at x. The month is clamped to [1, 12],
// so the first two twelfths of a year both report January.
func (m Mapper) XToDate(x float64) model.PartialDate {
	years := (x - m.LeftMargin) / m.PixelsPerYear
	whole := math.Trunc(years)

	month := int(math.Floor((years - whole) * 12))
	month = min(max(month, 1), 12)

	return model.YearMonth(m.StartYear+int(whole), uint8(month))
}

// Fit raises PixelsPerYear so the axis fills availableWidth. It never lowers
// the scale.
func (m *Mapper) Fit(availableWidth float64) {
	m.PixelsPerYear = FitScale(m.PixelsPerYear, availableWidth, m.LeftMargin, m.StartYear, m.EndYear)
}

// FitScale returns max(current, (availableWidth-leftMargin)/(end-start))
func FitScale(current, availableWidth, leftMargin float64, start, end int) float64 {
	return math.Max(current, MinScale(availableWidth, leftMargin, start, end))
}

// MinScale returns the smallest scale at which the years fill availableWidth
func MinScale(availableWidth, leftMargin float64, start, end int) float64 {
	return (availableWidth - leftMargin) / float64(end-start)
}

// YearStep returns the gridline interval in years for a scale, keeping year
// labels from overlapping when zoomed out
func YearStep(pixelsPerYear float64) int {
	switch {
	case pixelsPerYear >= 50:
		return 1
	case pixelsPerYear >= 25:
		return 2
	case pixelsPerYear >= 10:
		return 5
	default:
		return 10
	}
}

// VisibleYears returns the gridline years between content x positions left
// and right. The first year is not aligned to the step.
func (m Mapper) VisibleYears(left, right float64) []int {
	first := max(m.XToDate(left).Year(), m.StartYear)
	last := min(m.XToDate(right).Year(), m.EndYear-1)
	step := YearStep(m.PixelsPerYear)

	var years []int
	for y := first; y <= last; y += step {
		years = append(years, y)
	}
	return years
}
