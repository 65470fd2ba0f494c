package transform

import (
	"strconv"

	"github.com/chewxy/math32"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/vector"
)

// Scale loads per-axis scale factors into the diagonal.
// The matrix must be square and len(factors) must be Cols-1; the last
// diagonal coefficient and everything off the diagonal stay untouched.
func (m *Matrix) Scale(factors ...float32) error {
	if err := m.requireSquare("Scale"); err != nil {
		return err
	}
	if len(factors) != m.cols-1 {
		return m.transformDimension("Scale", len(factors))
	}
	for i, f := range factors {
		m.m[i*m.cols+i] = f
	}
	return nil
}

// ScaleUniform loads the same scale factor for every axis.
func (m *Matrix) ScaleUniform(factor float32) error {
	if err := m.requireSquare("ScaleUniform"); err != nil {
		return err
	}
	for i := 0; i < m.cols-1; i++ {
		m.m[i*m.cols+i] = factor
	}
	return nil
}

// Translation loads offsets into the last row.
// Nothing else is reset. The matrix must be square and len(offsets) must
// be Cols-1.
func (m *Matrix) Translation(offsets ...float32) error {
	if err := m.requireSquare("Translation"); err != nil {
		return err
	}
	if len(offsets) != m.cols-1 {
		return m.transformDimension("Translation", len(offsets))
	}
	copy(m.m[(m.rows-1)*m.cols:], offsets)
	return nil
}

// Rotation loads a rotation by radians in the plane spanned by axes a
// and b:
//
//	[a,a] =  cos   [a,b] = sin
//	[b,a] = -sin   [b,b] = cos
//
// Other coefficients are untouched. Both axes must leave room for the
// homogeneous row and column, i.e. a+1 and b+1 must be below Rows and Cols.
func (m *Matrix) Rotation(a, b int, radians float32) error {
	if a < 0 || a+1 >= m.rows || a+1 >= m.cols {
		return m.transformDimension("Rotation", a+1)
	}
	if b < 0 || b+1 >= m.rows || b+1 >= m.cols {
		return m.transformDimension("Rotation", b+1)
	}
	sin, cos := math32.Sincos(radians)
	m.m[a*m.cols+a] = cos
	m.m[a*m.cols+b] = sin
	m.m[b*m.cols+a] = -sin
	m.m[b*m.cols+b] = cos
	return nil
}

// RotatePlane loads a rotation in a named plane.
func (m *Matrix) RotatePlane(p Plane, radians float32) error {
	if !p.Valid() {
		return &tesser.RangeError{Op: "Matrix.RotatePlane", Param: "plane", Value: float64(p), Want: "PlaneX..PlaneZQ"}
	}
	a, b := p.Axes()
	return m.Rotation(a, b, radians)
}

// Perspective loads a 3D to 2D perspective projection without depth
// remapping: [2,3] = -1 and [3,3] = 0, so the homogeneous weight becomes -z.
func (m *Matrix) Perspective() error {
	if m.rows < 4 || m.cols < 4 {
		return &tesser.DimensionError{Op: "Matrix.Perspective", Want: "at least 4x4", Got: tesser.Shape(m.rows, m.cols)}
	}
	m.m[2*m.cols+3] = -1
	m.m[3*m.cols+3] = 0
	return nil
}

// PerspectiveRange loads a perspective projection that maps depth -near
// to 0 and -far to 1 after the homogeneous divide.
// It requires 0 < near < far. near == far is rejected as well, since the
// depth terms divide by far - near.
func (m *Matrix) PerspectiveRange(near, far float32) error {
	switch {
	case !(near > 0):
		return &tesser.RangeError{Op: "Matrix.PerspectiveRange", Param: "near", Value: float64(near), Want: "> 0"}
	case !(far > near):
		return &tesser.RangeError{Op: "Matrix.PerspectiveRange", Param: "far", Value: float64(far), Want: "> near"}
	}
	if err := m.Perspective(); err != nil {
		return err
	}
	m.m[2*m.cols+2] = -far / (far - near)
	m.m[3*m.cols+2] = -(far * near) / (far - near)
	return nil
}

// Transpose swaps [i,j] and [j,i] in place. The matrix must be square.
func (m *Matrix) Transpose() error {
	if err := m.requireSquare("Transpose"); err != nil {
		return err
	}
	n := m.cols
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.m[i*n+j], m.m[j*n+i] = m.m[j*n+i], m.m[i*n+j]
		}
	}
	return nil
}

// LookAt loads a 4×4 view matrix for a viewer at eye looking at target.
// The whole matrix is overwritten. The upper 3×3 block is orthonormal and
// points in front of the viewer end up at negative z.
//
// eye, target and up must be three-dimensional. A DegenerateVectorError is
// returned when eye equals target or up is parallel to the view direction.
func (m *Matrix) LookAt(eye, target, up *vector.Vector) error {
	if m.rows != 4 || m.cols != 4 {
		return &tesser.DimensionError{Op: "Matrix.LookAt", Want: "4x4", Got: tesser.Shape(m.rows, m.cols)}
	}
	for _, v := range [...]*vector.Vector{eye, target, up} {
		if v.Dimension() != 3 {
			return &tesser.DimensionError{Op: "Matrix.LookAt", Want: "3", Got: strconv.Itoa(v.Dimension())}
		}
	}

	forward := eye.Clone()
	_ = forward.Sub(target)
	if err := forward.Normalize(); err != nil {
		return &tesser.DegenerateVectorError{Op: "Matrix.LookAt"}
	}

	right := vector.Of(0, 0, 0)
	_ = right.Cross(up, forward)
	if err := right.Normalize(); err != nil {
		return &tesser.DegenerateVectorError{Op: "Matrix.LookAt"}
	}

	upward := vector.Of(0, 0, 0)
	_ = upward.Cross(forward, right)

	basis := [3]*vector.Vector{right, upward, forward}
	for i := 0; i < 3; i++ {
		row := m.m[i*4 : i*4+4]
		row[0] = right.At(i)
		row[1] = upward.At(i)
		row[2] = forward.At(i)
		row[3] = 0
	}
	last := m.m[12:16]
	for j, axis := range basis {
		d, _ := eye.Dot(axis)
		last[j] = -d
	}
	last[3] = 1
	return nil
}

// LookAtDistance loads a view matrix for a viewer on the positive z axis
// at the given distance, looking at the origin.
func (m *Matrix) LookAtDistance(distance float32, up *vector.Vector) error {
	return m.LookAt(vector.Of(0, 0, distance), vector.Of(0, 0, 0), up)
}

func (m *Matrix) transformDimension(op string, got int) error {
	return &tesser.DimensionError{
		Op:   "Matrix." + op,
		Want: strconv.Itoa(m.cols-1) + "d transform",
		Got:  strconv.Itoa(got) + "d on " + tesser.Shape(m.rows, m.cols),
	}
}
