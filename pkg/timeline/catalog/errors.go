package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying catalog integrity failures.
var (
	ErrNoRelease        = errors.New("console has no release")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyRange       = errors.New("empty year range")
	ErrDuplicateConsole = errors.New("duplicate console")
	ErrInvalidEstimate  = errors.New("estimate bounds do not contain the point value")
)

// ValidationError locates an integrity failure inside the catalog. Lineage and
// Console are empty when the failure concerns the catalog as a whole.
type ValidationError struct {
	Lineage string
	Console string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.Console != "":
		return fmt.Sprintf("catalog: %s / %s: %v", e.Lineage, e.Console, e.Err)
	case e.Lineage != "":
		return fmt.Sprintf("catalog: %s: %v", e.Lineage, e.Err)
	default:
		return fmt.Sprintf("catalog: %v", e.Err)
	}
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
