package sample

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned when a sampler is built from an empty sequence.
	ErrNoItems = errors.New("sample: no items")

	// ErrLengthMismatch is returned when items and weights differ in length.
	ErrLengthMismatch = errors.New("sample: items and weights differ in length")

	// ErrInvalidWeight is the sentinel matched by errors.Is for any
	// *InvalidWeightError.
	ErrInvalidWeight = errors.New("sample: invalid weight")

	// ErrDegenerateDistribution is returned when every weight is zero, so no
	// item could ever be drawn.
	ErrDegenerateDistribution = errors.New("sample: total weight is zero")
)

// InvalidWeightError reports a negative weight and where it occurred.
//
// It unwraps to ErrInvalidWeight.
type InvalidWeightError struct {
	Index  int
	Weight float64
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("sample: invalid weight %g at index %d", e.Weight, e.Index)
}

func (e *InvalidWeightError) Unwrap() error { return ErrInvalidWeight }
