// Package geometry holds wireframe shapes in three or four dimensions.
//
// A Geometry is an arena of positions plus lines referring to them by
// index. Every line carries a symbolic Color. The per-frame placement of a
// geometry is described by its Transform and turned into matrices by a
// Composer.
//
// Geometry is not safe for concurrent use. Mutate it from a frame's
// transform hook or while no frame is being recorded.
package geometry

import (
	"strconv"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/vector"
)

// Line connects positions A and B.
type Line struct {
	A, B  int
	Color Color
}

// Geometry is a named wireframe.
type Geometry struct {
	// Name identifies the geometry in logs.
	Name string

	// Color is the base color used for lines added without an explicit
	// color, including the connecting lines created by Extrude.
	Color Color

	// Transform is the placement recomputed into a model matrix every frame.
	Transform Transform

	dimension int
	positions []*vector.Vector
	lines     []Line
}

// New creates an empty geometry of dimension 3 or 4.
func New(name string, dimension int, color Color) (*Geometry, error) {
	if dimension != 3 && dimension != 4 {
		return nil, &tesser.DimensionError{Op: "geometry.New", Want: "3 or 4", Got: strconv.Itoa(dimension)}
	}
	return &Geometry{
		Name:      name,
		Color:     color,
		Transform: NewTransform(),
		dimension: dimension,
	}, nil
}

// Dimension returns 3 or 4.
func (g *Geometry) Dimension() int { return g.dimension }

// FourDimensional reports whether positions carry a q component.
func (g *Geometry) FourDimensional() bool { return g.dimension == 4 }

// AddPosition appends a position and returns its index.
func (g *Geometry) AddPosition(components ...float32) (int, error) {
	if len(components) != g.dimension {
		return 0, &tesser.DimensionError{Op: "Geometry.AddPosition", Want: strconv.Itoa(g.dimension), Got: strconv.Itoa(len(components))}
	}
	g.positions = append(g.positions, vector.Of(components...))
	return len(g.positions) - 1, nil
}

// AddLine connects two existing positions using the base color.
func (g *Geometry) AddLine(a, b int) error {
	return g.AddColoredLine(a, b, g.Color)
}

// AddColoredLine connects two existing positions.
func (g *Geometry) AddColoredLine(a, b int, color Color) error {
	for _, i := range [...]int{a, b} {
		if i < 0 || i >= len(g.positions) {
			return &tesser.IndexError{Op: "Geometry.AddLine", Axis: "position", Index: i, Limit: len(g.positions)}
		}
	}
	g.lines = append(g.lines, Line{A: a, B: b, Color: color})
	return nil
}

// NumPositions returns the number of positions.
func (g *Geometry) NumPositions() int { return len(g.positions) }

// NumLines returns the number of lines.
func (g *Geometry) NumLines() int { return len(g.lines) }

// Position returns position i. The vector is owned by g.
func (g *Geometry) Position(i int) *vector.Vector { return g.positions[i] }

// Lines returns the lines. The slice is owned by g and must not be modified.
func (g *Geometry) Lines() []Line { return g.lines }

// Extrude duplicates every position offset by direction, duplicates every
// line with indices shifted by the original position count, and connects
// each original position to its duplicate with a base-colored line.
//
// A geometry with N positions and L lines ends up with 2N positions and
// 2L+N lines.
func (g *Geometry) Extrude(direction *vector.Vector) error {
	return g.ExtrudeColored(direction, g.Color)
}

// ExtrudeColored is like Extrude but colors the connecting lines.
func (g *Geometry) ExtrudeColored(direction *vector.Vector, color Color) error {
	if direction.Dimension() != g.dimension {
		return &tesser.DimensionError{Op: "Geometry.Extrude", Want: strconv.Itoa(g.dimension), Got: strconv.Itoa(direction.Dimension())}
	}

	n := len(g.positions)
	for i := 0; i < n; i++ {
		p := g.positions[i].Clone()
		_ = p.Add(direction)
		g.positions = append(g.positions, p)
	}

	l := len(g.lines)
	for i := 0; i < l; i++ {
		line := g.lines[i]
		g.lines = append(g.lines, Line{A: line.A + n, B: line.B + n, Color: line.Color})
	}

	for i := 0; i < n; i++ {
		g.lines = append(g.lines, Line{A: i, B: i + n, Color: color})
	}
	return nil
}

// String returns the name and size, e.g. "cube(8 positions, 12 lines)".
func (g *Geometry) String() string {
	return g.Name + "(" + strconv.Itoa(len(g.positions)) + " positions, " + strconv.Itoa(len(g.lines)) + " lines)"
}
