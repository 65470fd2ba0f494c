package transform

import (
	"strconv"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/vector"
)

// Apply transforms v by m and stores the result in dst.
//
// v is extended to the homogeneous row (v, 1), multiplied by m, and the
// result is divided by its homogeneous weight. For a vector of dimension d,
// m must be (d+1)×(d+1) and dst must have dimension d. dst may alias v.
func Apply(dst, v *vector.Vector, m *Matrix) error {
	d := v.Dimension()
	if m.rows != d+1 || m.cols != d+1 {
		return &tesser.DimensionError{Op: "transform.Apply", Want: tesser.Shape(d+1, d+1), Got: tesser.Shape(m.rows, m.cols)}
	}
	if dst.Dimension() != d {
		return &tesser.DimensionError{Op: "transform.Apply", Want: "destination " + strconv.Itoa(d), Got: strconv.Itoa(dst.Dimension())}
	}

	var stack [5]float32
	out := stack[:0]
	if d+1 > len(stack) {
		out = make([]float32, 0, d+1)
	}
	n := d + 1
	for c := 0; c < n; c++ {
		sum := m.m[d*n+c] // implicit homogeneous 1
		for k := 0; k < d; k++ {
			sum += v.At(k) * m.m[k*n+c]
		}
		out = append(out, sum)
	}

	w := out[d]
	if w == 0 {
		return &tesser.RangeError{Op: "transform.Apply", Param: "w", Value: 0, Want: "!= 0"}
	}
	for i := 0; i < d; i++ {
		dst.SetAt(i, out[i]/w)
	}
	return nil
}
