// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview rasterizes finalized pipeline frames on the CPU.
//
// The renderer reads the vertex and model streams exactly the way a
// vertex shader would: it decodes the model index of every vertex, looks
// up that model matrix, and applies model, view and projection before the
// homogeneous divide. Lines are stroked with gg.
package preview

import (
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/pipeline"
	"github.com/gogpu/tesser/transform"
)

// minW is the smallest clip-space weight still drawn; lines with an end
// behind the viewer are skipped.
const minW = 1e-6

// Renderer draws wireframes into a gg.Context.
type Renderer struct {
	Width, Height int
	LineWidth     float64
	Background    color.Color
}

// Render creates a context of the renderer's size, clears it to the
// background and draws f. The caller owns the returned context.
func (r Renderer) Render(f pipeline.Frame, view, projection *transform.Matrix) (*gg.Context, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, &tesser.RangeError{Op: "Renderer.Render", Param: "size", Value: float64(min(r.Width, r.Height)), Want: "> 0"}
	}
	dc := gg.NewContext(r.Width, r.Height)
	bg := r.Background
	if bg == nil {
		bg = color.White
	}
	dc.ClearWithColor(gg.FromColor(bg))
	if err := r.Draw(dc, f, view, projection); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Draw strokes every line of f into dc. view and projection must be 4×4.
func (r Renderer) Draw(dc *gg.Context, f pipeline.Frame, view, projection *transform.Matrix) error {
	mvps, err := combine(f, view, projection)
	if err != nil {
		return err
	}

	lineWidth := r.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	dc.SetLineWidth(lineWidth)

	width, height := float64(dc.Width()), float64(dc.Height())

	for i := 0; i+1 < f.VertexCount; i += 2 {
		var ends [2][2]float64
		visible := true
		var col [4]float32
		for k := range 2 {
			v, err := f.Vertex(i + k)
			if err != nil {
				return err
			}
			if v.Model < 0 || int(v.Model) >= len(mvps) {
				return &tesser.IndexError{Op: "Renderer.Draw", Axis: "model", Index: int(v.Model), Limit: len(mvps)}
			}
			if k == 0 {
				col = v.Color
			}

			c := clip(v.Position, &mvps[v.Model])
			if c[3] < minW {
				visible = false
				break
			}
			ends[k] = toPixel(c[0]/c[3], c[1]/c[3], width, height)
		}
		if !visible {
			continue
		}

		dc.SetRGBA(float64(col[0]), float64(col[1]), float64(col[2]), 1)
		dc.DrawLine(ends[0][0], ends[0][1], ends[1][0], ends[1][1])
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// combine returns model × view × projection for every model in f.
func combine(f pipeline.Frame, view, projection *transform.Matrix) ([]f32.Mat4, error) {
	for _, m := range [...]*transform.Matrix{view, projection} {
		if m.Rows() != 4 || m.Cols() != 4 {
			return nil, &tesser.DimensionError{Op: "Renderer.Draw", Want: "4x4", Got: tesser.Shape(m.Rows(), m.Cols())}
		}
	}
	vp, _ := transform.NewSquare(4)
	if err := vp.Multiply(view, projection); err != nil {
		return nil, err
	}

	out := make([]f32.Mat4, f.ModelCount)
	model, _ := transform.NewSquare(4)
	mvp, _ := transform.NewSquare(4)
	for i := range out {
		coeffs, err := f.Model(i)
		if err != nil {
			return nil, err
		}
		copy(model.Floats(), coeffs)
		if err := mvp.Multiply(model, vp); err != nil {
			return nil, err
		}
		if out[i], err = mvp.Mat4(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// clip returns the row vector p times the row-major matrix m.
func clip(p [4]float32, m *f32.Mat4) [4]float32 {
	var out [4]float32
	for c := range 4 {
		out[c] = p[0]*m[c] + p[1]*m[4+c] + p[2]*m[8+c] + p[3]*m[12+c]
	}
	return out
}

// toPixel maps normalized device coordinates to pixels, +Y up.
func toPixel(x, y float32, width, height float64) [2]float64 {
	return [2]float64{
		(float64(x) + 1) / 2 * width,
		(1 - float64(y)) / 2 * height,
	}
}
