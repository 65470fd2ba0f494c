// Package buffer provides growable float32 storage for GPU streaming.
//
// A Buffer is addressed by (element, sub-vector, component). Every
// sub-vector has exactly four float32 components, so an element with
// vectorsPerElement sub-vectors occupies 4*vectorsPerElement floats.
// Storage is contiguous and row-major, which is the layout a vertex or
// uniform upload expects.
//
// A Recorder streams elements into a Buffer front to back, growing it by
// doubling when needed. Buffers are not safe for concurrent use; the caller
// serializes producers and consumers.
package buffer

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/gogpu/tesser"
)

// Components is the number of float32 values in one sub-vector.
const Components = 4

// Buffer is a flat float32 store shaped capacity × vectorsPerElement × 4.
type Buffer struct {
	data              []float32
	capacity          int
	vectorsPerElement int
}

// New creates a buffer with room for granularity elements.
// Both granularity and vectorsPerElement must be positive.
func New(granularity, vectorsPerElement int) (*Buffer, error) {
	if granularity <= 0 {
		return nil, &tesser.DimensionError{Op: "buffer.New", Want: "granularity > 0", Got: strconv.Itoa(granularity)}
	}
	if vectorsPerElement <= 0 {
		return nil, &tesser.DimensionError{Op: "buffer.New", Want: "vectorsPerElement > 0", Got: strconv.Itoa(vectorsPerElement)}
	}
	return &Buffer{
		data:              make([]float32, granularity*vectorsPerElement*Components),
		capacity:          granularity,
		vectorsPerElement: vectorsPerElement,
	}, nil
}

// Capacity returns the number of elements the buffer can hold.
func (b *Buffer) Capacity() int { return b.capacity }

// VectorsPerElement returns the number of sub-vectors in each element.
func (b *Buffer) VectorsPerElement() int { return b.vectorsPerElement }

// ElementSize returns the number of float32 values in each element.
func (b *Buffer) ElementSize() int { return b.vectorsPerElement * Components }

// At returns one component.
func (b *Buffer) At(element, vector, component int) (float32, error) {
	i, err := b.index("At", element, vector, component)
	if err != nil {
		return 0, err
	}
	return b.data[i], nil
}

// Set stores one component.
func (b *Buffer) Set(element, vector, component int, value float32) error {
	i, err := b.index("Set", element, vector, component)
	if err != nil {
		return err
	}
	b.data[i] = value
	return nil
}

// SetVector stores all four components of one sub-vector.
func (b *Buffer) SetVector(element, vector int, v0, v1, v2, v3 float32) error {
	i, err := b.index("SetVector", element, vector, 0)
	if err != nil {
		return err
	}
	d := b.data[i : i+Components : i+Components]
	d[0], d[1], d[2], d[3] = v0, v1, v2, v3
	return nil
}

// Grow increases the capacity to at least minCapacity by doubling.
// Element i keeps its content and stays at element i. Grow never shrinks
// the buffer; a minCapacity at or below the current capacity is a no-op.
// It reports whether the buffer was reallocated.
//
// A minCapacity whose byte size does not fit in an int is a RangeError and
// leaves the buffer unchanged.
func (b *Buffer) Grow(minCapacity int) (bool, error) {
	if minCapacity <= b.capacity {
		return false, nil
	}
	limit := math.MaxInt / (b.ElementSize() * 4)
	if minCapacity > limit {
		return false, &tesser.RangeError{Op: "buffer.Grow", Param: "minCapacity", Value: float64(minCapacity), Want: "<= " + strconv.Itoa(limit)}
	}
	newCapacity := b.capacity
	for newCapacity < minCapacity {
		if newCapacity > limit/2 {
			newCapacity = minCapacity
			break
		}
		newCapacity *= 2
	}
	data := make([]float32, newCapacity*b.ElementSize())
	copy(data, b.data)

	slogger().Debug("buffer: grow",
		"from", b.capacity,
		"to", newCapacity,
		"vectorsPerElement", b.vectorsPerElement)

	b.data = data
	b.capacity = newCapacity
	return true, nil
}

// Floats returns the whole backing store. The slice aliases the buffer and
// is invalidated by the next Grow.
func (b *Buffer) Floats() []float32 { return b.data }

// Bytes returns the backing store viewed as bytes without copying. The
// bytes are in host byte order, which is little-endian on every platform
// with a WebGPU implementation. Like Floats, the view is invalidated by the next Grow.
func (b *Buffer) Bytes() []byte {
	return floatBytes(b.data)
}

func (b *Buffer) index(op string, element, vector, component int) (int, error) {
	if element < 0 || element >= b.capacity {
		return 0, &tesser.IndexError{Op: "buffer." + op, Axis: "element", Index: element, Limit: b.capacity}
	}
	if vector < 0 || vector >= b.vectorsPerElement {
		return 0, &tesser.IndexError{Op: "buffer." + op, Axis: "vector", Index: vector, Limit: b.vectorsPerElement}
	}
	if component < 0 || component >= Components {
		return 0, &tesser.IndexError{Op: "buffer." + op, Axis: "component", Index: component, Limit: Components}
	}
	return (element*b.vectorsPerElement+vector)*Components + component, nil
}

func floatBytes(f []float32) []byte {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*4) //nolint:gosec // float32 slice reinterpretation
}
