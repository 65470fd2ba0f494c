package transform

import "fmt"

// Plane names a rotation plane by the two axes it spans.
// Axis indices are X=0, Y=1, Z=2, Q=3.
type Plane int

const (
	// PlaneX rotates around the X axis (Y-Z plane).
	PlaneX Plane = iota
	// PlaneY rotates around the Y axis (Z-X plane).
	PlaneY
	// PlaneZ rotates around the Z axis (X-Y plane).
	PlaneZ
	// PlaneXQ rotates in the X-Q plane.
	PlaneXQ
	// PlaneYQ rotates in the Y-Q plane.
	PlaneYQ
	// PlaneZQ rotates in the Z-Q plane.
	PlaneZQ
)

var planeAxes = [...][2]int{
	PlaneX:  {1, 2},
	PlaneY:  {2, 0},
	PlaneZ:  {0, 1},
	PlaneXQ: {0, 3},
	PlaneYQ: {1, 3},
	PlaneZQ: {2, 3},
}

// Axes returns the axis pair (a, b) passed to Rotation.
func (p Plane) Axes() (a, b int) {
	ab := planeAxes[p]
	return ab[0], ab[1]
}

// Valid reports whether p is one of the named planes.
func (p Plane) Valid() bool {
	return p >= PlaneX && p <= PlaneZQ
}

// String returns the plane name.
func (p Plane) String() string {
	switch p {
	case PlaneX:
		return "X"
	case PlaneY:
		return "Y"
	case PlaneZ:
		return "Z"
	case PlaneXQ:
		return "XQ"
	case PlaneYQ:
		return "YQ"
	case PlaneZQ:
		return "ZQ"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}
