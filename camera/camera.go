// Package camera computes view and projection matrices for an orbit
// camera circling the origin.
package camera

import (
	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/transform"
	"github.com/gogpu/tesser/vector"
)

// Clip planes of the projection.
const (
	Near = 0.1
	Far  = 100
)

// Camera looks at the origin from Distance along +Z after rotating the
// world by Horizontal around Y and Vertical around X. Aspect is the
// viewport width divided by its height.
type Camera struct {
	Distance   float32
	Horizontal float32
	Vertical   float32
	Aspect     float32
}

// Default returns a camera 8 units away with a square viewport.
func Default() Camera {
	return Camera{Distance: 8, Aspect: 1}
}

// View stores the 4×4 view matrix in dst:
//
//	RotationY(Horizontal) × RotationX(Vertical) × LookAt(Distance) × Scale(1, Aspect, 1)
func (c Camera) View(dst *transform.Matrix) error {
	if c.Aspect <= 0 {
		return &tesser.RangeError{Op: "Camera.View", Param: "aspect", Value: float64(c.Aspect), Want: "> 0"}
	}

	rotY, _ := transform.NewSquare(4)
	rotX, _ := transform.NewSquare(4)
	look, _ := transform.NewSquare(4)
	scale, _ := transform.NewSquare(4)
	a, _ := transform.NewSquare(4)
	b, _ := transform.NewSquare(4)

	_ = rotY.RotatePlane(transform.PlaneY, c.Horizontal)
	_ = rotX.RotatePlane(transform.PlaneX, c.Vertical)
	if err := look.LookAtDistance(c.Distance, vector.Of(0, 1, 0)); err != nil {
		return err
	}
	_ = scale.Scale(1, c.Aspect, 1)

	if err := a.Multiply(rotY, rotX); err != nil {
		return err
	}
	if err := b.Multiply(a, look); err != nil {
		return err
	}
	return dst.Multiply(b, scale)
}

// Projection stores the perspective projection in dst, mapping depth
// Near to 0 and Far to 1.
func (c Camera) Projection(dst *transform.Matrix) error {
	dst.Identity()
	return dst.PerspectiveRange(Near, Far)
}

// Smoothed eases Current towards Target.
type Smoothed struct {
	Target  float32
	Current float32
}

// Set moves Target and Current to v at once.
func (s *Smoothed) Set(v float32) {
	s.Target, s.Current = v, v
}

// Step moves Current by factor of the remaining distance and returns it.
// factor is clamped to [0, 1]; 1 jumps straight to Target.
func (s *Smoothed) Step(factor float32) float32 {
	factor = min(max(factor, 0), 1)
	s.Current += (s.Target - s.Current) * factor
	return s.Current
}

// Orbit is a camera whose parameters follow their targets smoothly.
type Orbit struct {
	Distance   Smoothed
	Horizontal Smoothed
	Vertical   Smoothed
	Aspect     float32
}

// NewOrbit returns an orbit resting at c.
func NewOrbit(c Camera) *Orbit {
	o := &Orbit{Aspect: c.Aspect}
	o.Distance.Set(c.Distance)
	o.Horizontal.Set(c.Horizontal)
	o.Vertical.Set(c.Vertical)
	return o
}

// Step advances all smoothed values and returns the current camera.
func (o *Orbit) Step(factor float32) Camera {
	return Camera{
		Distance:   o.Distance.Step(factor),
		Horizontal: o.Horizontal.Step(factor),
		Vertical:   o.Vertical.Step(factor),
		Aspect:     o.Aspect,
	}
}
