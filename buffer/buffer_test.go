package buffer

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/tesser"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name              string
		granularity       int
		vectorsPerElement int
		wantErr           bool
	}{
		{"valid", 2, 2, false},
		{"single", 1, 1, false},
		{"zero granularity", 0, 2, true},
		{"negative granularity", -1, 2, true},
		{"zero vectors", 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.granularity, tt.vectorsPerElement)
			if tt.wantErr {
				if !errors.Is(err, tesser.ErrDimension) {
					t.Errorf("New(%d, %d) error = %v, want ErrDimension", tt.granularity, tt.vectorsPerElement, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if b.Capacity() != tt.granularity {
				t.Errorf("Capacity() = %d, want %d", b.Capacity(), tt.granularity)
			}
			if got := len(b.Floats()); got != tt.granularity*tt.vectorsPerElement*4 {
				t.Errorf("len(Floats()) = %d, want %d", got, tt.granularity*tt.vectorsPerElement*4)
			}
		})
	}
}

func TestSetAt(t *testing.T) {
	b, _ := New(2, 2)
	if err := b.Set(1, 1, 3, 42); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := b.At(1, 1, 3)
	if err != nil {
		t.Fatalf("At() error = %v", err)
	}
	if got != 42 {
		t.Errorf("At(1, 1, 3) = %v, want 42", got)
	}
	// Last float of the flat store.
	if f := b.Floats(); f[len(f)-1] != 42 {
		t.Errorf("Floats()[last] = %v, want 42", f[len(f)-1])
	}
}

func TestIndexErrors(t *testing.T) {
	b, _ := New(2, 3)

	tests := []struct {
		name      string
		element   int
		vector    int
		component int
		axis      string
	}{
		{"element past capacity", 2, 0, 0, "element"},
		{"negative element", -1, 0, 0, "element"},
		{"vector past element", 0, 3, 0, "vector"},
		{"component past four", 0, 0, 4, "component"},
		{"negative component", 0, 0, -1, "component"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.At(tt.element, tt.vector, tt.component)
			var ie *tesser.IndexError
			if !errors.As(err, &ie) {
				t.Fatalf("At() error = %v, want *IndexError", err)
			}
			if ie.Axis != tt.axis {
				t.Errorf("IndexError.Axis = %q, want %q", ie.Axis, tt.axis)
			}
			if err := b.Set(tt.element, tt.vector, tt.component, 1); !errors.Is(err, tesser.ErrIndex) {
				t.Errorf("Set() error = %v, want ErrIndex", err)
			}
		})
	}
}

func TestGrowDoublesAndPreserves(t *testing.T) {
	b, _ := New(2, 2)
	_ = b.SetVector(0, 0, 1, 2, 3, 4)
	_ = b.SetVector(1, 1, 5, 6, 7, 8)

	if grew, err := b.Grow(3); !grew || err != nil {
		t.Fatalf("Grow(3) = %v, %v, want true, nil", grew, err)
	}
	if b.Capacity() != 4 {
		t.Errorf("Capacity() = %d, want 4", b.Capacity())
	}

	if grew, err := b.Grow(9); !grew || err != nil {
		t.Fatalf("Grow(9) = %v, %v, want true, nil", grew, err)
	}
	if b.Capacity() != 16 {
		t.Errorf("Capacity() = %d after Grow(9), want 16", b.Capacity())
	}

	for _, c := range []struct {
		element, vector int
		want            []float32
	}{
		{0, 0, []float32{1, 2, 3, 4}},
		{1, 1, []float32{5, 6, 7, 8}},
		{2, 0, []float32{0, 0, 0, 0}},
	} {
		got := make([]float32, 4)
		for i := range got {
			got[i], _ = b.At(c.element, c.vector, i)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("element %d vector %d mismatch (-want +got):\n%s", c.element, c.vector, diff)
		}
	}
}

func TestGrowNeverShrinks(t *testing.T) {
	b, _ := New(8, 1)
	if grew, err := b.Grow(3); grew || err != nil {
		t.Errorf("Grow(3) = %v, %v, want false, nil", grew, err)
	}
	if b.Capacity() != 8 {
		t.Errorf("Capacity() = %d, want 8", b.Capacity())
	}
}

func TestGrowRejectsOverflowingCapacity(t *testing.T) {
	b, _ := New(3, 1)
	_ = b.SetVector(2, 0, 1, 2, 3, 4)

	for _, n := range []int{math.MaxInt, math.MaxInt/16 + 1} {
		grew, err := b.Grow(n)
		if grew || !errors.Is(err, tesser.ErrRange) {
			t.Errorf("Grow(%d) = %v, %v, want false, ErrRange", n, grew, err)
		}
	}
	if b.Capacity() != 3 {
		t.Errorf("Capacity() = %d after rejected Grow, want 3", b.Capacity())
	}
	if got, _ := b.At(2, 0, 3); got != 4 {
		t.Errorf("At(2, 0, 3) = %v after rejected Grow, want 4", got)
	}
}

func TestBytesAliasesFloats(t *testing.T) {
	b, _ := New(1, 1)
	_ = b.SetVector(0, 0, 1.5, -2, 0, 3)

	raw := b.Bytes()
	if len(raw) != 16 {
		t.Fatalf("len(Bytes()) = %d, want 16", len(raw))
	}
	got := math.Float32frombits(binary.NativeEndian.Uint32(raw[4:8]))
	if got != -2 {
		t.Errorf("Bytes()[4:8] = %v, want -2", got)
	}

	_ = b.Set(0, 0, 0, 9)
	if got := math.Float32frombits(binary.NativeEndian.Uint32(raw[0:4])); got != 9 {
		t.Errorf("Bytes() did not alias storage: got %v, want 9", got)
	}
}

func TestIntBitsRoundTrip(t *testing.T) {
	values := []int32{
		0, 1, -1, 7, 255, 1 << 20,
		math.MaxInt32, math.MinInt32,
		0x7f800001,  // signaling NaN pattern
		0x7fc00000,  // quiet NaN pattern
		-0x00400000, // negative NaN pattern
		0x7f800000,  // +Inf
	}

	for _, v := range values {
		f := IntBits(v)
		if got := BitsInt(f); got != v {
			t.Errorf("BitsInt(IntBits(%#x)) = %#x, want %#x", v, got, v)
		}
	}
}

func TestIntBitsSurvivesBuffer(t *testing.T) {
	b, _ := New(1, 1)
	const tag int32 = 0x7fc00123
	if err := b.Set(0, 0, 3, IntBits(tag)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	f, _ := b.At(0, 0, 3)
	if got := BitsInt(f); got != tag {
		t.Errorf("BitsInt(At()) = %#x, want %#x", got, tag)
	}
}

func TestIntBitsIsNotConversion(t *testing.T) {
	if IntBits(1) == 1 {
		t.Error("IntBits(1) == 1, want a bit reinterpretation")
	}
	if IntBits(0) != 0 {
		t.Errorf("IntBits(0) = %v, want 0", IntBits(0))
	}
}
