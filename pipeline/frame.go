// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/buffer"
)

// FrameResult summarizes one recorded frame.
type FrameResult struct {
	Frame          uint64 // sequence number, starting at 1
	Geometries     int
	Vertices       int
	VertexCapacity int
	ModelCapacity  int
	Grew           bool // a stream was reallocated during this frame
}

// Frame is a read-only view of the finalized streams.
// The slices alias pipeline storage and are valid only inside Read.
type Frame struct {
	Vertices    []float32
	VertexCount int
	Models      []float32
	ModelCount  int
}

// Vertex is one decoded vertex.
type Vertex struct {
	Position [4]float32
	Color    [4]float32
	Model    int32
}

// Vertex decodes vertex i.
func (f Frame) Vertex(i int) (Vertex, error) {
	if i < 0 || i >= f.VertexCount {
		return Vertex{}, &tesser.IndexError{Op: "Frame.Vertex", Axis: "vertex", Index: i, Limit: f.VertexCount}
	}
	s := f.Vertices[i*FloatsPerVertex : (i+1)*FloatsPerVertex]
	var v Vertex
	copy(v.Position[:], s[0:4])
	copy(v.Color[:], s[4:8])
	v.Model = buffer.BitsInt(s[11])
	return v, nil
}

// Model returns the coefficients of model matrix i, row-major.
func (f Frame) Model(i int) ([]float32, error) {
	if i < 0 || i >= f.ModelCount {
		return nil, &tesser.IndexError{Op: "Frame.Model", Axis: "model", Index: i, Limit: f.ModelCount}
	}
	return f.Models[i*FloatsPerModel : (i+1)*FloatsPerModel], nil
}

// Target describes where an Uploader should put a stream.
type Target struct {
	Descriptor gputypes.BufferDescriptor
	Stride     uint64
	Count      int
}

// Uploader receives the finalized streams of a frame. data is laid out as
// Count elements of Stride bytes and aliases pipeline storage; it must not
// be retained after Upload returns.
type Uploader interface {
	Upload(t Target, data []byte) error
}

// VertexTarget describes a vertex stream of count vertices.
func VertexTarget(count int) Target {
	return Target{
		Descriptor: gputypes.BufferDescriptor{
			Label: "tesser vertices",
			Size:  uint64(count) * VertexStride,
			Usage: VertexUsage,
		},
		Stride: VertexStride,
		Count:  count,
	}
}

// ModelTarget describes a model stream of count matrices.
func ModelTarget(count int) Target {
	return Target{
		Descriptor: gputypes.BufferDescriptor{
			Label: "tesser models",
			Size:  uint64(count) * ModelStride,
			Usage: ModelUsage,
		},
		Stride: ModelStride,
		Count:  count,
	}
}
