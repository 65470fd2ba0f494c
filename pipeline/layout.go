// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tesser/buffer"
)

// Vertex stream layout. Each vertex is one buffer element of three
// sub-vectors:
//
//	0: x, y, z, 1
//	1: r, g, b, 1
//	2: 0, 0, 0, model index (int32 bits)
const (
	VectorsPerVertex = 3
	FloatsPerVertex  = VectorsPerVertex * buffer.Components
	VertexStride     = FloatsPerVertex * 4

	PositionOffset   = 0
	ColorOffset      = 16
	ModelIndexOffset = 44
)

// Model stream layout: one row-major 4×4 matrix per geometry.
const (
	VectorsPerModel = 4
	FloatsPerModel  = VectorsPerModel * buffer.Components
	ModelStride     = FloatsPerModel * 4
)

// Shader locations of the vertex attributes.
const (
	PositionLocation   = 0
	ColorLocation      = 1
	ModelIndexLocation = 2
)

// VertexLayout describes the vertex stream for render pipeline creation.
// The model index is read as a Uint32 from the last float slot.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x4, Offset: PositionOffset, ShaderLocation: PositionLocation},
			{Format: gputypes.VertexFormatFloat32x4, Offset: ColorOffset, ShaderLocation: ColorLocation},
			{Format: gputypes.VertexFormatUint32, Offset: ModelIndexOffset, ShaderLocation: ModelIndexLocation},
		},
	}
}

// Primitive returns the primitive state: every two vertices form a line.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{Topology: gputypes.PrimitiveTopologyLineList}
}

// ModelBinding describes the model stream as a read-only storage buffer
// indexed by the vertex model index.
func ModelBinding() gputypes.BufferBindingLayout {
	return gputypes.BufferBindingLayout{
		Type:           gputypes.BufferBindingTypeReadOnlyStorage,
		MinBindingSize: ModelStride,
	}
}

// Buffer usages of the two streams.
const (
	VertexUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	ModelUsage  = gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst
)
