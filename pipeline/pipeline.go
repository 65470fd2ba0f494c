// Package pipeline turns geometries into GPU-ready vertex and model
// streams, once per frame.
//
// A frame recomputes every geometry's model matrix, writes it into the
// model stream, and records two vertices per line into the vertex stream.
// Four-dimensional geometries are first moved by their hyper matrix and
// projected along Q. Recording runs under one lock; consumers access the
// result through Read or Publish, which take the same lock, so a partially
// recorded frame is never visible.
//
// Basic usage:
//
//	p, _ := pipeline.New(pipeline.WithPalette(theme.Dark()))
//	p.Add(geometry.Tesseract(geometry.ColorPrimary))
//	if _, err := p.Frame(); err != nil {
//	    return err
//	}
//	err := p.Publish(uploader)
package pipeline

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/buffer"
	"github.com/gogpu/tesser/geometry"
	"github.com/gogpu/tesser/theme"
	"github.com/gogpu/tesser/transform"
	"github.com/gogpu/tesser/vector"
)

// Pipeline owns the vertex and model streams of a set of geometries.
// All methods are safe for concurrent use.
type Pipeline struct {
	// frameMu serializes Frame calls; mu guards everything below.
	frameMu sync.Mutex
	mu      sync.Mutex

	opts       options
	geometries []*geometry.Geometry

	vertices *buffer.Recorder
	models   *buffer.Buffer

	composer  *geometry.Composer
	model     *transform.Matrix
	hyper     *transform.Matrix
	scratch   *vector.Vector
	projected [][3]float32

	frame      uint64
	modelCount int
	valid      bool
}

// New creates an empty pipeline.
func New(opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.qDistance > 0) {
		return nil, &tesser.RangeError{Op: "pipeline.New", Param: "qDistance", Value: float64(o.qDistance), Want: "> 0"}
	}
	if o.palette == nil {
		o.palette = theme.Light()
	}

	vertices, err := buffer.NewRecorder(o.vertexGranularity, VectorsPerVertex)
	if err != nil {
		return nil, fmt.Errorf("pipeline: vertex stream: %w", err)
	}
	models, err := buffer.New(o.modelGranularity, VectorsPerModel)
	if err != nil {
		return nil, fmt.Errorf("pipeline: model stream: %w", err)
	}
	model, _ := transform.NewSquare(4)
	hyper, _ := transform.NewSquare(5)
	scratch, _ := vector.New(4)

	return &Pipeline{
		opts:     o,
		vertices: vertices,
		models:   models,
		composer: geometry.NewComposer(),
		model:    model,
		hyper:    hyper,
		scratch:  scratch,
	}, nil
}

// Add registers g. Adding a geometry twice has no effect.
// The index of a geometry, streamed as its model index, is its position
// in registration order.
func (p *Pipeline) Add(g *geometry.Geometry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if slices.Contains(p.geometries, g) {
		return
	}
	p.geometries = append(p.geometries, g)
}

// Remove unregisters g. Removing an unknown geometry has no effect.
// Geometries after g move down by one index.
func (p *Pipeline) Remove(g *geometry.Geometry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := slices.Index(p.geometries, g); i >= 0 {
		p.geometries = slices.Delete(p.geometries, i, i+1)
	}
}

// Geometries returns the registered geometries in index order.
func (p *Pipeline) Geometries() []*geometry.Geometry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.geometries)
}

// Frame records one frame. On error the streams are left invalid and Read
// fails until the next successful frame.
//
// Frame first runs the transform hook for every registered geometry without
// holding the stream lock, then recomputes and records under it. Geometries
// added or removed by a hook take part from the next frame on.
func (p *Pipeline) Frame() (FrameResult, error) {
	p.frameMu.Lock()
	geometries := p.Geometries()
	hookErr := p.runHook(geometries)

	p.mu.Lock()
	result, err := p.record(geometries, hookErr)
	p.mu.Unlock()
	p.frameMu.Unlock()

	if err != nil {
		slogger().Warn("pipeline: frame failed", "frame", result.Frame, "error", err)
		return result, err
	}
	slogger().Debug("pipeline: frame",
		"frame", result.Frame,
		"geometries", result.Geometries,
		"vertices", result.Vertices,
		"grew", result.Grew)

	for _, observe := range p.opts.observers {
		observe(result)
	}
	return result, nil
}

func (p *Pipeline) runHook(geometries []*geometry.Geometry) error {
	if p.opts.hook == nil {
		return nil
	}
	for i, g := range geometries {
		if err := p.opts.hook(i, g); err != nil {
			return fmt.Errorf("pipeline: geometry %d (%s): %w", i, g.Name, err)
		}
	}
	return nil
}

func (p *Pipeline) record(geometries []*geometry.Geometry, hookErr error) (FrameResult, error) {
	p.frame++
	p.valid = false
	result := FrameResult{Frame: p.frame, Geometries: len(geometries)}
	if hookErr != nil {
		return result, hookErr
	}

	modelsGrew, err := p.models.Grow(len(geometries))
	if err != nil {
		return result, fmt.Errorf("pipeline: model stream: %w", err)
	}

	if err := p.vertices.Begin(); err != nil {
		return result, err
	}
	for i, g := range geometries {
		if err := p.recordGeometry(i, g); err != nil {
			p.vertices.Abort()
			return result, fmt.Errorf("pipeline: geometry %d (%s): %w", i, g.Name, err)
		}
	}
	if err := p.vertices.End(); err != nil {
		p.vertices.Abort()
		return result, err
	}

	p.modelCount = len(geometries)
	p.valid = true

	result.Vertices, _ = p.vertices.Len()
	result.VertexCapacity, _ = p.vertices.Capacity()
	result.ModelCapacity = p.models.Capacity()
	result.Grew = modelsGrew || p.vertices.Grew()
	return result, nil
}

func (p *Pipeline) recordGeometry(index int, g *geometry.Geometry) error {
	if err := p.composer.Model(p.model, &g.Transform); err != nil {
		return err
	}
	if err := p.model.WriteInto(p.models, index); err != nil {
		return err
	}

	if err := p.project(g); err != nil {
		return err
	}

	tag := buffer.IntBits(int32(index))
	for _, line := range g.Lines() {
		r, gr, b := p.opts.palette.Resolve(line.Color)
		for _, end := range [2]int{line.A, line.B} {
			pos := p.projected[end]
			if err := p.writeVertex(pos, r, gr, b, tag); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Pipeline) writeVertex(pos [3]float32, r, g, b, tag float32) error {
	rec := p.vertices
	if err := rec.Write(pos[0], pos[1], pos[2], 1); err != nil {
		return err
	}
	if err := rec.Write(r, g, b, 1); err != nil {
		return err
	}
	if err := rec.Write(0, 0, 0, tag); err != nil {
		return err
	}
	return rec.EndElement()
}

// project fills p.projected with the three-dimensional position of every
// point of g.
func (p *Pipeline) project(g *geometry.Geometry) error {
	n := g.NumPositions()
	p.projected = slices.Grow(p.projected[:0], n)[:n]

	if !g.FourDimensional() {
		for i := range n {
			v := g.Position(i)
			p.projected[i] = [3]float32{v.X(), v.Y(), v.Z()}
		}
		return nil
	}

	if err := p.composer.Hyper(p.hyper, &g.Transform); err != nil {
		return err
	}
	for i := range n {
		if err := transform.Apply(p.scratch, g.Position(i), p.hyper); err != nil {
			return err
		}
		xyz, err := ProjectQ(p.scratch, p.opts.qDistance)
		if err != nil {
			return err
		}
		p.projected[i] = xyz
	}
	return nil
}

// ProjectQ projects a four-dimensional point to three dimensions as seen
// by a viewer at distance along Q: xyz · d/(d − q). The point must lie in
// front of the viewer, q < d.
func ProjectQ(v *vector.Vector, distance float32) ([3]float32, error) {
	depth := distance - v.Q()
	if !(depth > 0) {
		return [3]float32{}, &tesser.RangeError{Op: "pipeline.ProjectQ", Param: "q", Value: float64(v.Q()), Want: fmt.Sprintf("< %g", distance)}
	}
	s := distance / depth
	return [3]float32{v.X() * s, v.Y() * s, v.Z() * s}, nil
}

// Read calls fn with the finalized streams of the last successful frame.
func (p *Pipeline) Read(fn func(Frame) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := p.view()
	if err != nil {
		return err
	}
	return fn(f)
}

// Publish uploads the vertex stream and then the model stream.
func (p *Pipeline) Publish(u Uploader) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := p.view()
	if err != nil {
		return err
	}
	vertexBytes, err := p.vertices.Bytes()
	if err != nil {
		return err
	}
	if err := u.Upload(VertexTarget(f.VertexCount), vertexBytes); err != nil {
		return fmt.Errorf("pipeline: upload vertices: %w", err)
	}
	modelBytes := p.models.Bytes()[:f.ModelCount*ModelStride]
	if err := u.Upload(ModelTarget(f.ModelCount), modelBytes); err != nil {
		return fmt.Errorf("pipeline: upload models: %w", err)
	}
	return nil
}

func (p *Pipeline) view() (Frame, error) {
	if !p.valid {
		return Frame{}, &tesser.SequencingError{Op: "Pipeline.Read", Reason: "no finalized frame"}
	}
	vertices, err := p.vertices.Floats()
	if err != nil {
		return Frame{}, err
	}
	n, _ := p.vertices.Len()
	return Frame{
		Vertices:    vertices,
		VertexCount: n,
		Models:      p.models.Floats()[:p.modelCount*FloatsPerModel],
		ModelCount:  p.modelCount,
	}, nil
}

func slogger() *slog.Logger { return tesser.Logger() }
