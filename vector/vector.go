// Package vector provides dense float32 vectors of a fixed dimension.
//
// All arithmetic mutates the receiver in place and returns an error only
// when the operands do not fit together. Use Clone to keep the original.
package vector

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/tesser"
)

// Component indices for the named accessors.
const (
	X = 0
	Y = 1
	Z = 2
	Q = 3
)

// Vector is an ordered sequence of float32 components.
// The dimension is fixed at construction; vectors of different dimension
// never combine.
type Vector struct {
	c []float32
}

// New returns the zero vector of the given dimension.
func New(dimension int) (*Vector, error) {
	if dimension <= 0 {
		return nil, &tesser.DimensionError{Op: "vector.New", Want: "> 0", Got: strconv.Itoa(dimension)}
	}
	return &Vector{c: make([]float32, dimension)}, nil
}

// Of returns a vector holding the given components.
// Of panics when called without components.
func Of(components ...float32) *Vector {
	if len(components) == 0 {
		panic("vector: Of called without components")
	}
	c := make([]float32, len(components))
	copy(c, components)
	return &Vector{c: c}
}

// Dimension returns the number of components.
func (v *Vector) Dimension() int {
	return len(v.c)
}

// At returns component i. It panics if i is out of range, like a slice index.
func (v *Vector) At(i int) float32 {
	return v.c[i]
}

// SetAt sets component i. It panics if i is out of range, like a slice index.
func (v *Vector) SetAt(i int, value float32) {
	v.c[i] = value
}

// X returns component 0.
func (v *Vector) X() float32 { return v.c[X] }

// Y returns component 1.
func (v *Vector) Y() float32 { return v.c[Y] }

// Z returns component 2.
func (v *Vector) Z() float32 { return v.c[Z] }

// Q returns component 3, the fourth spatial axis.
func (v *Vector) Q() float32 { return v.c[Q] }

// Components returns a copy of all components.
func (v *Vector) Components() []float32 {
	out := make([]float32, len(v.c))
	copy(out, v.c)
	return out
}

// Load replaces all components.
func (v *Vector) Load(components ...float32) error {
	if len(components) != len(v.c) {
		return v.mismatch("Load", len(components))
	}
	copy(v.c, components)
	return nil
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	return Of(v.c...)
}

// Add adds u to v component-wise.
func (v *Vector) Add(u *Vector) error {
	if len(u.c) != len(v.c) {
		return v.mismatch("Add", len(u.c))
	}
	for i := range v.c {
		v.c[i] += u.c[i]
	}
	return nil
}

// Sub subtracts u from v component-wise.
func (v *Vector) Sub(u *Vector) error {
	if len(u.c) != len(v.c) {
		return v.mismatch("Sub", len(u.c))
	}
	for i := range v.c {
		v.c[i] -= u.c[i]
	}
	return nil
}

// Scale multiplies every component by s.
func (v *Vector) Scale(s float32) {
	for i := range v.c {
		v.c[i] *= s
	}
}

// Div divides every component by s.
// Division by zero is rejected instead of producing infinities.
func (v *Vector) Div(s float32) error {
	if s == 0 {
		return &tesser.RangeError{Op: "vector.Div", Param: "divisor", Value: 0, Want: "!= 0"}
	}
	for i := range v.c {
		v.c[i] /= s
	}
	return nil
}

// Dot returns the sum of the component-wise products.
// A vector dotted with itself yields its squared length.
func (v *Vector) Dot(u *Vector) (float32, error) {
	if len(u.c) != len(v.c) {
		return 0, v.mismatch("Dot", len(u.c))
	}
	var sum float32
	for i := range v.c {
		sum += v.c[i] * u.c[i]
	}
	return sum, nil
}

// Cross stores the cross product a × b in v.
// All three vectors must be three-dimensional; v may alias a or b.
func (v *Vector) Cross(a, b *Vector) error {
	for _, w := range [...]*Vector{v, a, b} {
		if len(w.c) != 3 {
			return &tesser.DimensionError{Op: "vector.Cross", Want: "3", Got: strconv.Itoa(len(w.c))}
		}
	}
	x := a.c[Y]*b.c[Z] - a.c[Z]*b.c[Y]
	y := a.c[Z]*b.c[X] - a.c[X]*b.c[Z]
	z := a.c[X]*b.c[Y] - a.c[Y]*b.c[X]
	v.c[X], v.c[Y], v.c[Z] = x, y, z
	return nil
}

// LengthSq returns the squared length.
func (v *Vector) LengthSq() float32 {
	var sum float32
	for _, c := range v.c {
		sum += c * c
	}
	return sum
}

// Length returns the Euclidean length.
func (v *Vector) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// Normalize scales v to unit length.
// A zero-length vector is left unchanged and reported as degenerate.
func (v *Vector) Normalize() error {
	length := v.Length()
	if length == 0 {
		return &tesser.DegenerateVectorError{Op: "vector.Normalize"}
	}
	for i := range v.c {
		v.c[i] /= length
	}
	return nil
}

// Equal reports whether u has the same dimension and every component lies
// within tolerance of v.
func (v *Vector) Equal(u *Vector, tolerance float32) bool {
	if len(u.c) != len(v.c) {
		return false
	}
	for i := range v.c {
		if math32.Abs(v.c[i]-u.c[i]) > tolerance {
			return false
		}
	}
	return true
}

// String formats the vector as "(x, y, z)".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (v *Vector) mismatch(op string, got int) error {
	return &tesser.DimensionError{Op: "vector." + op, Want: strconv.Itoa(len(v.c)), Got: strconv.Itoa(got)}
}
