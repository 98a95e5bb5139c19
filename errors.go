package xybri

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/xybri/gamut"
)

var (
	// ErrInvalidInput matches every error caused by a value outside its
	// documented range.
	ErrInvalidInput = errors.New("xybri: invalid input")
	// ErrDegenerateGeometry matches errors caused by a computation that
	// would divide by zero, such as a zero y chromaticity.
	ErrDegenerateGeometry = errors.New("xybri: degenerate geometry")
	ErrDegenerateTriangle = gamut.ErrDegenerateTriangle
)

// InvalidInputError reports a field of an RGB or XYBri value that is out
// of range. It matches ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("xybri: %s must be between %g and %g, but is: %g", e.Field, e.Min, e.Max, e.Value)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return "xybri: degenerate geometry: " + e.Reason
}

func (e *DegenerateGeometryError) Is(target error) bool { return target == ErrDegenerateGeometry }

// the comparison is written so that NaN is out of range
func check_range(field string, val, lo, hi float64) error {
	if val >= lo && val <= hi {
		return nil
	}
	return &InvalidInputError{Field: field, Value: val, Min: lo, Max: hi}
}
