// Package transform provides row-major float32 matrices of arbitrary shape
// and the transforms used to place N-dimensional geometry in a scene.
//
// Vectors are rows: a point v is transformed as v' = (v, 1) × M, so the
// translation lives in the last row and composition reads left to right.
// For a square matrix of size n+1 the leading n×n block is the linear part
// and row n holds the translation:
//
//	| a  b  c  0 |
//	| d  e  f  0 |
//	| g  h  i  0 |
//	| tx ty tz 1 |
//
// All operations mutate the receiver in place and never change its shape.
// Transform loaders such as Scale or Rotation only touch the coefficients
// they define; start from Identity to get a clean transform.
package transform

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/vector"
)

// Matrix is a rows × cols float32 matrix stored row-major.
type Matrix struct {
	rows, cols int
	m          []float32
}

// New creates a rows × cols matrix. Square matrices start as identity,
// all others as zero.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &tesser.DimensionError{Op: "transform.New", Want: "positive shape", Got: tesser.Shape(rows, cols)}
	}
	m := &Matrix{rows: rows, cols: cols, m: make([]float32, rows*cols)}
	m.Identity()
	return m, nil
}

// NewSquare creates a size × size identity matrix.
func NewSquare(size int) (*Matrix, error) {
	return New(size, size)
}

// NewVector creates a 1 × n matrix holding the given components.
// It panics when called without components.
func NewVector(components ...float32) *Matrix {
	if len(components) == 0 {
		panic("transform: NewVector called without components")
	}
	m := &Matrix{rows: 1, cols: len(components), m: make([]float32, len(components))}
	copy(m.m, components)
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Identity loads the identity into a square matrix and zeros a
// non-square one.
func (m *Matrix) Identity() {
	clear(m.m)
	if m.rows != m.cols {
		return
	}
	for i := 0; i < m.rows; i++ {
		m.m[i*m.cols+i] = 1
	}
}

// At returns the coefficient at row, col.
func (m *Matrix) At(row, col int) (float32, error) {
	if err := m.check("At", row, col); err != nil {
		return 0, err
	}
	return m.m[row*m.cols+col], nil
}

// Set stores the coefficient at row, col.
func (m *Matrix) Set(row, col int, value float32) error {
	if err := m.check("Set", row, col); err != nil {
		return err
	}
	m.m[row*m.cols+col] = value
	return nil
}

// Load replaces all coefficients, one slice per row.
func (m *Matrix) Load(rows ...[]float32) error {
	if len(rows) != m.rows {
		return &tesser.DimensionError{Op: "Matrix.Load", Want: strconv.Itoa(m.rows) + " rows", Got: strconv.Itoa(len(rows))}
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return &tesser.DimensionError{
				Op:   "Matrix.Load",
				Want: strconv.Itoa(m.cols) + " columns",
				Got:  strconv.Itoa(len(row)) + " in row " + strconv.Itoa(r),
			}
		}
	}
	for r, row := range rows {
		copy(m.m[r*m.cols:], row)
	}
	return nil
}

// Row returns a copy of one row as a vector of dimension Cols.
// It panics if row is out of range.
func (m *Matrix) Row(row int) *vector.Vector {
	return vector.Of(m.m[row*m.cols : (row+1)*m.cols]...)
}

// Floats returns the coefficients row-major. The slice aliases the matrix.
func (m *Matrix) Floats() []float32 { return m.m }

// Clone returns an independent copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, m: make([]float32, len(m.m))}
	copy(c.m, m.m)
	return c
}

// Equal reports whether other has the same shape and every coefficient
// lies within tolerance.
func (m *Matrix) Equal(other *Matrix, tolerance float32) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.m {
		if math32.Abs(v-other.m[i]) > tolerance {
			return false
		}
	}
	return true
}

// Multiply stores lhs × rhs in m.
//
// lhs.Cols must equal rhs.Rows and m must be lhs.Rows × rhs.Cols.
// m must not alias lhs or rhs; this is not checked.
func (m *Matrix) Multiply(lhs, rhs *Matrix) error {
	if lhs.cols != rhs.rows {
		return &tesser.DimensionError{
			Op:   "Matrix.Multiply",
			Want: "lhs cols == rhs rows",
			Got:  tesser.Shape(lhs.rows, lhs.cols) + " * " + tesser.Shape(rhs.rows, rhs.cols),
		}
	}
	if m.rows != lhs.rows || m.cols != rhs.cols {
		return &tesser.DimensionError{
			Op:   "Matrix.Multiply",
			Want: "target " + tesser.Shape(lhs.rows, rhs.cols),
			Got:  tesser.Shape(m.rows, m.cols),
		}
	}
	for r := 0; r < m.rows; r++ {
		lrow := lhs.m[r*lhs.cols : (r+1)*lhs.cols]
		for c := 0; c < m.cols; c++ {
			var sum float32
			for k, l := range lrow {
				sum += l * rhs.m[k*rhs.cols+c]
			}
			m.m[r*m.cols+c] = sum
		}
	}
	return nil
}

// String returns the shape, e.g. "[4x4]".
func (m *Matrix) String() string {
	return "[" + tesser.Shape(m.rows, m.cols) + "]"
}

// Dump returns all coefficients, rows separated by " | ".
func (m *Matrix) Dump() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteString(" | ")
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(" , ")
			}
			sb.WriteString(strconv.FormatFloat(float64(m.m[r*m.cols+c]), 'f', 2, 32))
		}
	}
	sb.WriteString(" ]")
	return sb.String()
}

func (m *Matrix) check(op string, row, col int) error {
	if row < 0 || row >= m.rows {
		return &tesser.IndexError{Op: "Matrix." + op, Axis: "row", Index: row, Limit: m.rows}
	}
	if col < 0 || col >= m.cols {
		return &tesser.IndexError{Op: "Matrix." + op, Axis: "column", Index: col, Limit: m.cols}
	}
	return nil
}

func (m *Matrix) requireSquare(op string) error {
	if m.rows != m.cols {
		return &tesser.DimensionError{Op: "Matrix." + op, Want: "square matrix", Got: tesser.Shape(m.rows, m.cols)}
	}
	return nil
}
