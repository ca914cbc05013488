// Package model holds the console catalog data types. Values are built once
// and never mutated afterwards.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision is how much of a PartialDate is known
type Precision uint8

const (
	PrecisionYear Precision = iota
	PrecisionMonth
	PrecisionDay
)

// PartialDate is a calendar date known to year, year-month or
// year-month-day precision
type PartialDate struct {
	y         int
	m, d      uint8
	precision Precision
}

// Year returns a year-only date
func Year(y int) PartialDate {
	return PartialDate{y: y, precision: PrecisionYear}
}

// YearMonth returns a date known to the month
func YearMonth(y int, m uint8) PartialDate {
	return PartialDate{y: y, m: m, precision: PrecisionMonth}
}

// YearMonthDay returns a fully known date
func YearMonthDay(y int, m, d uint8) PartialDate {
	return PartialDate{y: y, m: m, d: d, precision: PrecisionDay}
}

// Year returns the year component
func (p PartialDate) Year() int {
	return p.y
}

// Month returns the month, defaulting to 1 when unknown
func (p PartialDate) Month() uint8 {
	if p.precision == PrecisionYear {
		return 1
	}
	return p.m
}

// Day returns the day, defaulting to 1 when unknown
func (p PartialDate) Day() uint8 {
	if p.precision != PrecisionDay {
		return 1
	}
	return p.d
}

// Precision returns how much of the date is known
func (p PartialDate) Precision() Precision {
	return p.precision
}

// IsYearOnly reports whether only the year is known. Year-only end dates are
// drawn with a fade since the exact end is uncertain.
func (p PartialDate) IsYearOnly() bool {
	return p.precision == PrecisionYear
}

// CmpKey returns the (year, month, day) ordering key with unknown parts as 1
func (p PartialDate) CmpKey() (int, uint8, uint8) {
	return p.y, p.Month(), p.Day()
}

// Compare returns -1, 0 or +1 comparing p and o by CmpKey. Dates that differ
// only in precision (1990 vs 1990-01-01) compare equal.
func (p PartialDate) Compare(o PartialDate) int {
	py, pm, pd := p.CmpKey()
	oy, om, od := o.CmpKey()

	switch {
	case py != oy:
		return sign(py - oy)
	case pm != om:
		return sign(int(pm) - int(om))
	default:
		return sign(int(pd) - int(od))
	}
}

// Before reports whether p sorts strictly before o
func (p PartialDate) Before(o PartialDate) bool {
	return p.Compare(o) < 0
}

func (p PartialDate) String() string {
	switch p.precision {
	case PrecisionMonth:
		return fmt.Sprintf("%d-%02d", p.y, p.m)
	case PrecisionDay:
		return fmt.Sprintf("%d-%02d-%02d", p.y, p.m, p.d)
	default:
		return strconv.Itoa(p.y)
	}
}

// Valid reports whether the known month/day parts are in calendar range
func (p PartialDate) Valid() bool {
	if p.precision >= PrecisionMonth && (p.m < 1 || p.m > 12) {
		return false
	}
	if p.precision == PrecisionDay && (p.d < 1 || p.d > daysIn(p.y, p.m)) {
		return false
	}
	return true
}

// ParsePartialDate parses "YYYY", "YYYY-MM" or "YYYY-MM-DD"
func ParsePartialDate(s string) (PartialDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) == 0 || len(parts) > 3 {
		return PartialDate{}, fmt.Errorf("date %q: want YYYY, YYYY-MM or YYYY-MM-DD", s)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return PartialDate{}, fmt.Errorf("date %q: bad component %q", s, part)
		}
		nums[i] = n
	}

	var d PartialDate
	switch len(nums) {
	case 1:
		d = Year(nums[0])
	case 2:
		if nums[1] > 255 {
			return PartialDate{}, fmt.Errorf("date %q: month out of range", s)
		}
		d = YearMonth(nums[0], uint8(nums[1]))
	default:
		if nums[1] > 255 || nums[2] > 255 {
			return PartialDate{}, fmt.Errorf("date %q: month or day out of range", s)
		}
		d = YearMonthDay(nums[0], uint8(nums[1]), uint8(nums[2]))
	}

	if !d.Valid() {
		return PartialDate{}, fmt.Errorf("date %q: not a calendar date", s)
	}
	return d, nil
}

func daysIn(y int, m uint8) uint8 {
	switch m {
	case 2:
		if y%4 == 0 && (y%100 != 0 || y%400 == 0) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
