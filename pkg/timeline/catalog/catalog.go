// Package catalog holds the validated console dataset the timeline renders.
// A Catalog is immutable once New returns it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

// Catalog is the ordered list of lineages plus the year range of the axis.
// EndYear is exclusive.
type Catalog struct {
	StartYear int
	EndYear   int
	Lineages  []model.Lineage
}

// New validates the lineages and returns a catalog over [start, end).
// The returned error joins every ValidationError found.
func New(start, end int, lineages []model.Lineage) (*Catalog, error) {
	c := &Catalog{StartYear: start, EndYear: end, Lineages: lineages}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is New for compiled-in data; invalid data panics.
func MustNew(start, end int, lineages []model.Lineage) *Catalog {
	c, err := New(start, end, lineages)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the integrity rules every frame relies on: each console has
// a release, dates are calendar dates, estimates are consistent and short
// names are unique.
func (c *Catalog) Validate() error {
	var errs []error

	if c.EndYear <= c.StartYear {
		errs = append(errs, &ValidationError{
			Err: fmt.Errorf("%w: %d..%d", ErrEmptyRange, c.StartYear, c.EndYear),
		})
	}

	seen := mapset.New[string]()
	for _, l := range c.Lineages {
		for i := range l.Consoles {
			con := &l.Consoles[i]
			fail := func(err error) {
				errs = append(errs, &ValidationError{Lineage: l.Name, Console: con.Name, Err: err})
			}

			if seen.Has(con.ShortName) {
				fail(fmt.Errorf("%w: %q", ErrDuplicateConsole, con.ShortName))
			}
			seen.Put(con.ShortName)

			if len(con.Releases) == 0 {
				fail(ErrNoRelease)
			}
			for _, r := range con.Releases {
				if !r.Date.Valid() {
					fail(fmt.Errorf("%w: release %v", ErrInvalidDate, r.Date))
				}
			}
			for _, m := range con.Milestones {
				if !m.Date.Valid() {
					fail(fmt.Errorf("%w: %v %v", ErrInvalidDate, m.Kind, m.Date))
				}
			}
			for _, m := range con.Measures {
				if !m.Value.Consistent() {
					fail(fmt.Errorf("%w: %v %v", ErrInvalidEstimate, m.Kind, m.Region))
				}
			}
		}
	}

	return errors.Join(errs...)
}

// ConsoleCount returns the number of consoles over all lineages
func (c *Catalog) ConsoleCount() int {
	n := 0
	for _, l := range c.Lineages {
		n += len(l.Consoles)
	}
	return n
}

// Find returns the console with the given short name and its lineage
func (c *Catalog) Find(shortName string) (*model.Lineage, *model.Console, bool) {
	for li := range c.Lineages {
		l := &c.Lineages[li]
		for ci := range l.Consoles {
			if l.Consoles[ci].ShortName == shortName {
				return l, &l.Consoles[ci], true
			}
		}
	}
	return nil, nil, false
}
