package geometry

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/transform"
	"github.com/gogpu/tesser/vector"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func square(t *testing.T, n int) *transform.Matrix {
	t.Helper()
	m, err := transform.NewSquare(n)
	if err != nil {
		t.Fatalf("NewSquare(%d) error = %v", n, err)
	}
	return m
}

func place(t *testing.T, m *transform.Matrix, p ...float32) []float32 {
	t.Helper()
	v := vector.Of(p...)
	if err := transform.Apply(v, v, m); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	return v.Components()
}

func TestModelIdentity(t *testing.T) {
	c := NewComposer()
	dst := square(t, 4)
	_ = dst.Set(0, 1, 42)

	tr := NewTransform()
	if err := c.Model(dst, &tr); err != nil {
		t.Fatalf("Model() error = %v", err)
	}
	if !dst.Equal(square(t, 4), 0) {
		t.Errorf("Model(identity) = %s, want identity", dst.Dump())
	}
}

func TestModelOrder(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tr *Transform)
		in    []float32
		want  []float32
	}{
		{
			name: "scale then rotate then translate",
			setup: func(tr *Transform) {
				tr.Scale = [3]float32{2, 2, 2}
				tr.Rotation[vector.Z] = math32.Pi / 2
				tr.Translation = [4]float32{1, 0, 0, 0}
			},
			in:   []float32{1, 0, 0},
			want: []float32{1, 2, 0},
		},
		{
			name: "rotation x before y",
			setup: func(tr *Transform) {
				tr.Rotation[vector.X] = math32.Pi / 2
				tr.Rotation[vector.Y] = math32.Pi / 2
			},
			in:   []float32{0, 1, 0},
			want: []float32{1, 0, 0},
		},
		{
			name: "q translation ignored",
			setup: func(tr *Transform) {
				tr.Translation = [4]float32{0, 1, 0, 5}
			},
			in:   []float32{0, 0, 0},
			want: []float32{0, 1, 0},
		},
	}

	c := NewComposer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tt.setup(&tr)
			dst := square(t, 4)
			if err := c.Model(dst, &tr); err != nil {
				t.Fatalf("Model() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, place(t, dst, tt.in...), approx); diff != "" {
				t.Errorf("placed point mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHyper(t *testing.T) {
	c := NewComposer()
	dst := square(t, 5)

	tr := NewTransform()
	tr.Translation[vector.Q] = 3
	if err := c.Hyper(dst, &tr); err != nil {
		t.Fatalf("Hyper() error = %v", err)
	}
	if diff := cmp.Diff([]float32{1, 2, 3, 3}, place(t, dst, 1, 2, 3, 0), approx); diff != "" {
		t.Errorf("Q translation mismatch (-want +got):\n%s", diff)
	}

	tr = NewTransform()
	tr.Rotation[vector.Q] = math32.Pi / 2
	if err := c.Hyper(dst, &tr); err != nil {
		t.Fatalf("Hyper() error = %v", err)
	}
	if diff := cmp.Diff([]float32{0, -1, 0, 0}, place(t, dst, 1, 0, 0, 0), approx); diff != "" {
		t.Errorf("Q rotation mismatch (-want +got):\n%s", diff)
	}

	// 3D rotations belong to the model matrix, not the hyper matrix.
	tr = NewTransform()
	tr.Rotation[vector.X] = 1
	_ = c.Hyper(dst, &tr)
	if !dst.Equal(square(t, 5), 1e-6) {
		t.Errorf("Hyper() with X rotation = %s, want identity", dst.Dump())
	}
}

func TestComposerShapes(t *testing.T) {
	c := NewComposer()
	tr := NewTransform()
	if err := c.Model(square(t, 5), &tr); !errors.Is(err, tesser.ErrDimension) {
		t.Errorf("Model(5x5) error = %v, want ErrDimension", err)
	}
	if err := c.Hyper(square(t, 4), &tr); !errors.Is(err, tesser.ErrDimension) {
		t.Errorf("Hyper(4x4) error = %v, want ErrDimension", err)
	}
}
