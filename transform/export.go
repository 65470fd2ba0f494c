package transform

import (
	"strconv"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/buffer"
)

// Mat4 returns a 4×4 matrix as an f32.Mat4 in the same row-major order.
func (m *Matrix) Mat4() (f32.Mat4, error) {
	var out f32.Mat4
	if m.rows != 4 || m.cols != 4 {
		return out, &tesser.DimensionError{Op: "Matrix.Mat4", Want: "4x4", Got: tesser.Shape(m.rows, m.cols)}
	}
	copy(out[:], m.m)
	return out, nil
}

// WriteInto stores the coefficients row-major into one element of b.
// The element must hold exactly Rows*Cols floats.
func (m *Matrix) WriteInto(b *buffer.Buffer, element int) error {
	if b.ElementSize() != len(m.m) {
		return &tesser.DimensionError{
			Op:   "Matrix.WriteInto",
			Want: strconv.Itoa(len(m.m)) + " floats per element for " + m.String(),
			Got:  strconv.Itoa(b.ElementSize()),
		}
	}
	for v := 0; v < b.VectorsPerElement(); v++ {
		c := m.m[v*buffer.Components : (v+1)*buffer.Components]
		if err := b.SetVector(element, v, c[0], c[1], c[2], c[3]); err != nil {
			return err
		}
	}
	return nil
}
