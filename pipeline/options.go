package pipeline

import "github.com/gogpu/tesser/geometry"

// Palette resolves symbolic colors when a frame is recorded.
// *theme.Palette implements it.
type Palette interface {
	Resolve(tag geometry.Color) (r, g, b float32)
}

// TransformHook is called once per frame for every geometry, in index
// order, before any model matrix is recomputed. It may update g.Transform
// and may call Add, Remove, Geometries, Read or Publish on the pipeline;
// calling Frame from a hook deadlocks. Returning an error aborts the frame.
type TransformHook func(index int, g *geometry.Geometry) error

// Observer is notified after every successful frame. It runs outside of
// the frame lock and may call Read or Publish.
type Observer func(FrameResult)

// Option configures a Pipeline during creation.
//
// Example:
//
//	p, err := pipeline.New(
//	    pipeline.WithPalette(theme.Dark()),
//	    pipeline.WithTransformHook(spin),
//	)
type Option func(*options)

type options struct {
	vertexGranularity int
	modelGranularity  int
	palette           Palette
	hook              TransformHook
	observers         []Observer
	qDistance         float32
}

// Default allocation granularities, in elements.
const (
	DefaultVertexGranularity = 100
	DefaultModelGranularity  = 10
)

// DefaultQDistance is the default distance of the viewer along Q.
const DefaultQDistance = 3

func defaultOptions() options {
	return options{
		vertexGranularity: DefaultVertexGranularity,
		modelGranularity:  DefaultModelGranularity,
		qDistance:         DefaultQDistance,
	}
}

// WithVertexGranularity sets the initial vertex capacity.
func WithVertexGranularity(n int) Option {
	return func(o *options) {
		o.vertexGranularity = n
	}
}

// WithModelGranularity sets the initial model matrix capacity.
func WithModelGranularity(n int) Option {
	return func(o *options) {
		o.modelGranularity = n
	}
}

// WithPalette sets the palette used to resolve line colors.
// The default is theme.Light().
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithTransformHook sets the per-geometry transform hook.
func WithTransformHook(h TransformHook) Option {
	return func(o *options) {
		o.hook = h
	}
}

// WithObserver adds a frame observer. Observers run in the order added.
func WithObserver(f Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, f)
	}
}

// WithQDistance sets the distance of the viewer along the Q axis used to
// project four-dimensional geometry. Positions must stay below it.
func WithQDistance(d float32) Option {
	return func(o *options) {
		o.qDistance = d
	}
}
