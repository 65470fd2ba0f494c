package geometry

import (
	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/transform"
	"github.com/gogpu/tesser/vector"
)

// Transform is the decomposed placement of a geometry.
// Rotation and Translation are indexed by vector.X, Y, Z and Q; Scale by
// X, Y and Z. Angles are in radians.
type Transform struct {
	Rotation    [4]float32
	Translation [4]float32
	Scale       [3]float32
}

// NewTransform returns the identity placement.
func NewTransform() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Composer builds model and hyper matrices from a Transform.
// It owns its scratch matrices, so a single Composer recomputes any number
// of geometries without allocating. A Composer is not safe for concurrent
// use.
type Composer struct {
	scale, rotX, rotY, rotZ, translation, a, b *transform.Matrix

	xq, yq, zq, qTranslation, ha, hb *transform.Matrix
}

// NewComposer creates a Composer.
func NewComposer() *Composer {
	sq := func(n int) *transform.Matrix {
		m, _ := transform.NewSquare(n)
		return m
	}
	return &Composer{
		scale:        sq(4),
		rotX:         sq(4),
		rotY:         sq(4),
		rotZ:         sq(4),
		translation:  sq(4),
		a:            sq(4),
		b:            sq(4),
		xq:           sq(5),
		yq:           sq(5),
		zq:           sq(5),
		qTranslation: sq(5),
		ha:           sq(5),
		hb:           sq(5),
	}
}

// Model stores the 4×4 model matrix of t in dst:
//
//	Scale × RotationX × RotationY × RotationZ × Translation
//
// For row vectors this scales first, then rotates, then translates.
// dst must be 4×4.
func (c *Composer) Model(dst *transform.Matrix, t *Transform) error {
	if dst.Rows() != 4 || dst.Cols() != 4 {
		return &tesser.DimensionError{Op: "Composer.Model", Want: "4x4", Got: dst.String()}
	}

	c.scale.Identity()
	if err := c.scale.Scale(t.Scale[:]...); err != nil {
		return err
	}
	for _, r := range [...]struct {
		m     *transform.Matrix
		plane transform.Plane
		angle float32
	}{
		{c.rotX, transform.PlaneX, t.Rotation[vector.X]},
		{c.rotY, transform.PlaneY, t.Rotation[vector.Y]},
		{c.rotZ, transform.PlaneZ, t.Rotation[vector.Z]},
	} {
		r.m.Identity()
		if err := r.m.RotatePlane(r.plane, r.angle); err != nil {
			return err
		}
	}
	c.translation.Identity()
	if err := c.translation.Translation(t.Translation[:3]...); err != nil {
		return err
	}

	return chain(dst, c.a, c.b, c.scale, c.rotX, c.rotY, c.rotZ, c.translation)
}

// Hyper stores the 5×5 transform of four-dimensional positions in dst:
// rotation by Rotation[Q] in the XQ, YQ and ZQ planes, then translation
// along Q. Positions pass through it before the Q perspective divide; the
// remaining placement is done by the 4×4 model matrix afterwards.
func (c *Composer) Hyper(dst *transform.Matrix, t *Transform) error {
	if dst.Rows() != 5 || dst.Cols() != 5 {
		return &tesser.DimensionError{Op: "Composer.Hyper", Want: "5x5", Got: dst.String()}
	}

	q := t.Rotation[vector.Q]
	for _, r := range [...]struct {
		m     *transform.Matrix
		plane transform.Plane
	}{
		{c.xq, transform.PlaneXQ},
		{c.yq, transform.PlaneYQ},
		{c.zq, transform.PlaneZQ},
	} {
		r.m.Identity()
		if err := r.m.RotatePlane(r.plane, q); err != nil {
			return err
		}
	}
	c.qTranslation.Identity()
	if err := c.qTranslation.Translation(0, 0, 0, t.Translation[vector.Q]); err != nil {
		return err
	}

	return chain(dst, c.ha, c.hb, c.xq, c.yq, c.zq, c.qTranslation)
}

// chain multiplies ms left to right into dst, ping-ponging between the
// scratch matrices a and b. len(ms) must be at least 3.
func chain(dst, a, b *transform.Matrix, ms ...*transform.Matrix) error {
	acc, spare := a, b
	if err := acc.Multiply(ms[0], ms[1]); err != nil {
		return err
	}
	for _, m := range ms[2 : len(ms)-1] {
		if err := spare.Multiply(acc, m); err != nil {
			return err
		}
		acc, spare = spare, acc
	}
	return dst.Multiply(acc, ms[len(ms)-1])
}
