package buffer

import (
	"strconv"

	"github.com/gogpu/tesser"
)

// Recorder streams elements into a Buffer front to back.
//
// A session starts with Begin, which rewinds the cursor to element 0.
// Every element receives exactly VectorsPerElement sub-vectors through
// Write and is closed with EndElement (or written in one go with Record).
// End finalizes the session; afterwards elements [0, Len()) are valid and
// anything beyond is stale data from earlier sessions.
//
// Reading while a session is open returns a SequencingError.
type Recorder struct {
	buf       *Buffer
	recording bool
	element   int // element being written
	offset    int // sub-vectors already written into element
	length    int // elements finalized by the last End
	grew      bool
}

// NewRecorder creates a recorder over a fresh Buffer.
func NewRecorder(granularity, vectorsPerElement int) (*Recorder, error) {
	buf, err := New(granularity, vectorsPerElement)
	if err != nil {
		return nil, err
	}
	return &Recorder{buf: buf}, nil
}

// Recording reports whether a session is open.
func (r *Recorder) Recording() bool { return r.recording }

// VectorsPerElement returns the number of sub-vectors each element takes.
func (r *Recorder) VectorsPerElement() int { return r.buf.vectorsPerElement }

// Begin opens a session and rewinds the cursor to element 0.
func (r *Recorder) Begin() error {
	if r.recording {
		return &tesser.SequencingError{Op: "Recorder.Begin", Reason: "session already open"}
	}
	r.recording = true
	r.element = 0
	r.offset = 0
	r.grew = false
	return nil
}

// Write stores one sub-vector into the current element. The buffer grows
// by doubling when the element lies beyond its capacity.
func (r *Recorder) Write(v0, v1, v2, v3 float32) error {
	if !r.recording {
		return &tesser.SequencingError{Op: "Recorder.Write", Reason: "no open session"}
	}
	if r.offset >= r.buf.vectorsPerElement {
		return &tesser.SequencingError{
			Op:     "Recorder.Write",
			Reason: "element " + strconv.Itoa(r.element) + " already holds " + strconv.Itoa(r.offset) + " sub-vectors",
		}
	}
	if r.element >= r.buf.capacity {
		grew, err := r.buf.Grow(r.element + 1)
		if err != nil {
			return err
		}
		r.grew = r.grew || grew
	}
	i := (r.element*r.buf.vectorsPerElement + r.offset) * Components
	d := r.buf.data[i : i+Components : i+Components]
	d[0], d[1], d[2], d[3] = v0, v1, v2, v3
	r.offset++
	return nil
}

// EndElement closes the current element and moves to the next one.
// The element must hold exactly VectorsPerElement sub-vectors.
func (r *Recorder) EndElement() error {
	if !r.recording {
		return &tesser.SequencingError{Op: "Recorder.EndElement", Reason: "no open session"}
	}
	if r.offset != r.buf.vectorsPerElement {
		return r.partial("Recorder.EndElement")
	}
	r.element++
	r.offset = 0
	return nil
}

// Record writes one element through fn and closes it.
func (r *Recorder) Record(fn func(*Recorder) error) error {
	if err := fn(r); err != nil {
		return err
	}
	return r.EndElement()
}

// End closes the session. A partially written element is an error and
// leaves the session open so the caller can Abort it.
func (r *Recorder) End() error {
	if !r.recording {
		return &tesser.SequencingError{Op: "Recorder.End", Reason: "no open session"}
	}
	if r.offset != 0 {
		return r.partial("Recorder.End")
	}
	r.recording = false
	r.length = r.element
	return nil
}

// Abort discards the open session. Len reports 0 until the next session
// ends successfully, since the aborted writes may have overwritten
// earlier elements.
func (r *Recorder) Abort() {
	r.recording = false
	r.element = 0
	r.offset = 0
	r.length = 0
}

// Grew reports whether the last session reallocated the buffer.
func (r *Recorder) Grew() bool { return r.grew }

// Len returns the number of elements finalized by the last End.
func (r *Recorder) Len() (int, error) {
	if err := r.readable("Len"); err != nil {
		return 0, err
	}
	return r.length, nil
}

// Capacity returns the current element capacity.
func (r *Recorder) Capacity() (int, error) {
	if err := r.readable("Capacity"); err != nil {
		return 0, err
	}
	return r.buf.capacity, nil
}

// At returns one component of a finalized element.
func (r *Recorder) At(element, vector, component int) (float32, error) {
	if err := r.readable("At"); err != nil {
		return 0, err
	}
	return r.buf.At(element, vector, component)
}

// Floats returns the finalized elements as one flat slice aliasing the
// buffer storage.
func (r *Recorder) Floats() ([]float32, error) {
	if err := r.readable("Floats"); err != nil {
		return nil, err
	}
	return r.buf.data[:r.length*r.buf.ElementSize()], nil
}

// Bytes returns the finalized elements viewed as bytes without copying.
func (r *Recorder) Bytes() ([]byte, error) {
	f, err := r.Floats()
	if err != nil {
		return nil, err
	}
	return floatBytes(f), nil
}

func (r *Recorder) readable(op string) error {
	if r.recording {
		return &tesser.SequencingError{Op: "Recorder." + op, Reason: "read during an open session"}
	}
	return nil
}

func (r *Recorder) partial(op string) error {
	return &tesser.SequencingError{
		Op: op,
		Reason: "element " + strconv.Itoa(r.element) + " incomplete: " +
			strconv.Itoa(r.offset) + " of " + strconv.Itoa(r.buf.vectorsPerElement) + " sub-vectors",
	}
}
