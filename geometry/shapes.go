package geometry

import (
	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/vector"
)

// Quadrilateral returns a closed loop through four 3D corners.
func Quadrilateral(name string, a, b, c, d [3]float32, color Color) *Geometry {
	g := newShape(name, 3, color)
	for _, p := range [...][3]float32{a, b, c, d} {
		g.push(p[:]...)
	}
	for i := 0; i < 4; i++ {
		g.connect(i, (i+1)%4, color)
	}
	return g
}

// Segment is a free line between two 3D points.
type Segment struct {
	From, To [3]float32
}

// Lines returns a geometry made of unconnected segments.
func Lines(name string, color Color, segments ...Segment) *Geometry {
	g := newShape(name, 3, color)
	for _, s := range segments {
		a := g.push(s.From[:]...)
		b := g.push(s.To[:]...)
		g.connect(a, b, color)
	}
	return g
}

// Axis returns the X, Y and Z axes from the origin to length, each line
// colored with its axis tag.
func Axis(length float32) *Geometry {
	g := newShape("axis", 3, ColorPrimary)
	origin := g.push(0, 0, 0)
	for i, c := range [...]Color{ColorX, ColorY, ColorZ} {
		var p [3]float32
		p[i] = length
		g.connect(origin, g.push(p[:]...), c)
	}
	return g
}

// Grid returns a square grid on the X-Z plane spanning [-n, n] with unit
// spacing: 2n+1 lines along each axis.
func Grid(n int) (*Geometry, error) {
	if n < 1 {
		return nil, &tesser.RangeError{Op: "geometry.Grid", Param: "n", Value: float64(n), Want: ">= 1"}
	}
	g := newShape("grid", 3, ColorGrid)
	extent := float32(n)
	for i := -n; i <= n; i++ {
		f := float32(i)
		g.connect(g.push(f, 0, -extent), g.push(f, 0, extent), ColorGrid)
		g.connect(g.push(-extent, 0, f), g.push(extent, 0, f), ColorGrid)
	}
	return g, nil
}

// Cube returns the unit cube [-1, 1]³: a square extruded along Z.
func Cube(color Color) *Geometry {
	g := Quadrilateral("cube",
		[3]float32{-1, -1, -1},
		[3]float32{1, -1, -1},
		[3]float32{1, 1, -1},
		[3]float32{-1, 1, -1},
		color)
	_ = g.Extrude(vector.Of(0, 0, 2))
	return g
}

// Tesseract returns the four-dimensional hypercube [-1, 1]⁴: a cube
// extruded along Q. Edges running along Q are tagged ColorQ.
func Tesseract(color Color) *Geometry {
	g := newShape("tesseract", 4, color)
	square := [...][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, p := range square {
		g.push(p[0], p[1], -1, -1)
	}
	for i := 0; i < 4; i++ {
		g.connect(i, (i+1)%4, color)
	}
	_ = g.Extrude(vector.Of(0, 0, 2, 0))
	_ = g.ExtrudeColored(vector.Of(0, 0, 0, 2), ColorQ)
	return g
}

func newShape(name string, dimension int, color Color) *Geometry {
	return &Geometry{Name: name, Color: color, Transform: NewTransform(), dimension: dimension}
}

func (g *Geometry) push(components ...float32) int {
	g.positions = append(g.positions, vector.Of(components...))
	return len(g.positions) - 1
}

func (g *Geometry) connect(a, b int, color Color) {
	g.lines = append(g.lines, Line{A: a, B: b, Color: color})
}
