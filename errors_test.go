package tesser

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "dimension",
			err:      &DimensionError{Op: "Multiply", Want: "4x4", Got: "1x5"},
			sentinel: ErrDimension,
			contains: "want 4x4, got 1x5",
		},
		{
			name:     "index",
			err:      &IndexError{Op: "At", Axis: "element", Index: 3, Limit: 2},
			sentinel: ErrIndex,
			contains: "element index 3 out of range [0, 2)",
		},
		{
			name:     "sequencing",
			err:      &SequencingError{Op: "Write", Reason: "element already complete"},
			sentinel: ErrSequencing,
			contains: "element already complete",
		},
		{
			name:     "range",
			err:      &RangeError{Op: "PerspectiveRange", Param: "near", Value: -1, Want: "> 0"},
			sentinel: ErrRange,
			contains: "near=-1",
		},
		{
			name:     "degenerate",
			err:      &DegenerateVectorError{Op: "Normalize"},
			sentinel: ErrDegenerateVector,
			contains: "zero-length",
		},
	}

	all := []error{ErrDimension, ErrIndex, ErrSequencing, ErrRange, ErrDegenerateVector}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("frame 7: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			for _, other := range all {
				if other != tt.sentinel && errors.Is(wrapped, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", wrapped, other)
				}
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("recompute: %w", &IndexError{Op: "Set", Axis: "component", Index: 8, Limit: 4})

	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("errors.As(%v) = false, want true", err)
	}
	if ie.Axis != "component" || ie.Index != 8 || ie.Limit != 4 {
		t.Errorf("IndexError = %+v, want component 8 of 4", ie)
	}
}

func TestShape(t *testing.T) {
	if got := Shape(5, 3); got != "5x3" {
		t.Errorf("Shape(5, 3) = %q, want %q", got, "5x3")
	}
}
