package geometry

import "fmt"

// Color is a symbolic color tag. Geometry stores tags only; a palette owned
// by the rendering side resolves them to RGB when a frame is recorded, so a
// theme change never rebuilds geometry.
type Color int

const (
	// ColorPrimary is the default color of solid shapes.
	ColorPrimary Color = iota
	// ColorAccent highlights a selected or secondary shape.
	ColorAccent
	// ColorGrid is used for the floor grid.
	ColorGrid
	// ColorX marks the X axis.
	ColorX
	// ColorY marks the Y axis.
	ColorY
	// ColorZ marks the Z axis.
	ColorZ
	// ColorQ marks edges running along the fourth axis.
	ColorQ
)

// NumColors is the number of defined color tags.
const NumColors = int(ColorQ) + 1

// String returns the tag name.
func (c Color) String() string {
	switch c {
	case ColorPrimary:
		return "Primary"
	case ColorAccent:
		return "Accent"
	case ColorGrid:
		return "Grid"
	case ColorX:
		return "X"
	case ColorY:
		return "Y"
	case ColorZ:
		return "Z"
	case ColorQ:
		return "Q"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}
