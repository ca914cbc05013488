package catalog

import (
	"errors"
	"testing"

	"github.com/darkwater/console-timeline/pkg/engine/draw"
	"github.com/darkwater/console-timeline/pkg/timeline/model"
)

func testConsole(short string, releases ...model.Release) model.Console {
	return model.Console{Name: short + " console", ShortName: short, Releases: releases}
}

func testLineage(consoles ...model.Console) []model.Lineage {
	return []model.Lineage{{Name: "Test", Maker: model.Nintendo, Color: draw.Hex(0x336699), Consoles: consoles}}
}

func TestBuiltin_Valid(t *testing.T) {
	c := Builtin()

	if c.StartYear != StartYear || c.EndYear != EndYear {
		t.Errorf("range = %d..%d, want %d..%d", c.StartYear, c.EndYear, StartYear, EndYear)
	}
	if len(c.Lineages) == 0 {
		t.Fatal("builtin catalog has no lineages")
	}

	for _, l := range c.Lineages {
		for _, con := range l.Consoles {
			if _, ok := con.FirstRelease(); !ok {
				t.Errorf("%s has no release", con.ShortName)
			}
		}
	}

	if _, con, ok := c.Find("SNES"); !ok || con.Name != "Super Nintendo Entertainment System" {
		t.Errorf("Find(SNES) = %v, %v", con, ok)
	}
}

func TestNew_NoReleaseFails(t *testing.T) {
	_, err := New(1970, 2025, testLineage(testConsole("Ghost")))
	if err == nil {
		t.Fatal("New() succeeded for a console without releases")
	}
	if !errors.Is(err, ErrNoRelease) {
		t.Errorf("error = %v, want ErrNoRelease", err)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v is not a ValidationError", err)
	}
	if ve.Lineage != "Test" || ve.Console != "Ghost console" {
		t.Errorf("ValidationError at %q/%q, want Test/Ghost console", ve.Lineage, ve.Console)
	}
}

func TestNew_Errors(t *testing.T) {
	ok := model.Release{Region: model.JP, Date: model.Year(1990)}

	tests := []struct {
		name     string
		start    int
		end      int
		lineages []model.Lineage
		want     error
	}{
		{"empty range", 2000, 2000, nil, ErrEmptyRange},
		{"duplicate", 1970, 2025, testLineage(testConsole("A", ok), testConsole("A", ok)), ErrDuplicateConsole},
		{"bad month", 1970, 2025, testLineage(testConsole("A", model.Release{Date: model.YearMonth(1990, 13)})), ErrInvalidDate},
		{
			"bad estimate", 1970, 2025,
			testLineage(model.Console{
				ShortName: "A",
				Releases:  []model.Release{ok},
				Measures:  []model.Measure{{Kind: model.UnitsSold, Value: model.Between[uint64](5, 6, 7)}},
			}),
			ErrInvalidEstimate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.start, tt.end, tt.lineages)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNew_ReportsEveryProblem(t *testing.T) {
	_, err := New(1970, 2025, testLineage(testConsole("A"), testConsole("B")))

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		t.Fatalf("error %v does not join multiple errors", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("joined %d errors, want 2", n)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() did not panic for a console without releases")
		}
	}()
	MustNew(1970, 2025, testLineage(testConsole("Ghost")))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Lineage: "Sega", Console: "Saturn", Err: ErrNoRelease}
	if got, want := err.Error(), "catalog: Sega / Saturn: console has no release"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestConsoleCount(t *testing.T) {
	ok := model.Release{Date: model.Year(1990)}
	c := MustNew(1970, 2025, testLineage(testConsole("A", ok), testConsole("B", ok)))
	if got := c.ConsoleCount(); got != 2 {
		t.Errorf("ConsoleCount() = %d, want 2", got)
	}
}
