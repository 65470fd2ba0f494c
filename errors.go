package tesser

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all tesser packages.
// Use errors.Is to classify an error; use errors.As with the typed errors
// below to get the offending values.
var (
	// ErrDimension is returned when vector or matrix shapes do not fit together.
	ErrDimension = errors.New("tesser: dimension mismatch")

	// ErrIndex is returned when an index lies outside of a buffer or matrix.
	ErrIndex = errors.New("tesser: index out of range")

	// ErrSequencing is returned when the recording protocol is violated.
	ErrSequencing = errors.New("tesser: recording sequence violated")

	// ErrRange is returned for an invalid numeric parameter.
	ErrRange = errors.New("tesser: parameter out of range")

	// ErrDegenerateVector is returned when normalizing a zero-length vector.
	ErrDegenerateVector = errors.New("tesser: degenerate vector")
)

// DimensionError reports incompatible shapes.
// Want and Got are human-readable shapes such as "4x4" or "3".
type DimensionError struct {
	Op   string
	Want string
	Got  string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("tesser: %s: dimension mismatch: want %s, got %s", e.Op, e.Want, e.Got)
}

// Is reports whether target is ErrDimension.
func (e *DimensionError) Is(target error) bool { return target == ErrDimension }

// IndexError reports an index outside of [0, Limit) along Axis.
type IndexError struct {
	Op    string
	Axis  string
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tesser: %s: %s index %d out of range [0, %d)", e.Op, e.Axis, e.Index, e.Limit)
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// SequencingError reports a call made in the wrong recording state.
type SequencingError struct {
	Op     string
	Reason string
}

func (e *SequencingError) Error() string {
	return fmt.Sprintf("tesser: %s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrSequencing.
func (e *SequencingError) Is(target error) bool { return target == ErrSequencing }

// RangeError reports a numeric parameter outside of its valid range.
type RangeError struct {
	Op    string
	Param string
	Value float64
	Want  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tesser: %s: %s=%g out of range, want %s", e.Op, e.Param, e.Value, e.Want)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

// DegenerateVectorError reports an operation that needs a non-zero vector.
type DegenerateVectorError struct {
	Op string
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("tesser: %s: zero-length vector", e.Op)
}

// Is reports whether target is ErrDegenerateVector.
func (e *DegenerateVectorError) Is(target error) bool { return target == ErrDegenerateVector }

// Shape formats a rows×cols shape for DimensionError messages.
func Shape(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}
