// Command tesserdemo records a spinning wireframe scene through the
// geometry pipeline and writes every frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"

	"github.com/gogpu/tesser"
	"github.com/gogpu/tesser/camera"
	"github.com/gogpu/tesser/geometry"
	"github.com/gogpu/tesser/pipeline"
	"github.com/gogpu/tesser/preview"
	"github.com/gogpu/tesser/theme"
	"github.com/gogpu/tesser/transform"
	"github.com/gogpu/tesser/vector"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		frames  = flag.Int("frames", 12, "number of frames to render")
		output  = flag.String("output", "frames", "output directory")
		palette = flag.String("theme", "dark", "color theme (light or dark)")
		shape   = flag.String("shape", "tesseract", "shape to spin (cube or tesseract)")
		spin    = flag.Float64("spin", 0.15, "rotation per frame in radians")
		verbose = flag.Bool("v", false, "log pipeline activity")
	)
	flag.Parse()

	if *verbose {
		tesser.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pal, ok := theme.ByName(*palette)
	if !ok {
		log.Fatalf("Unknown theme %q", *palette)
	}

	subject, err := newSubject(*shape)
	if err != nil {
		log.Fatal(err)
	}
	grid, err := geometry.Grid(4)
	if err != nil {
		log.Fatal(err)
	}
	grid.Transform.Translation[vector.Y] = -1.5

	p, err := pipeline.New(
		pipeline.WithPalette(pal),
		pipeline.WithTransformHook(spinner(subject, float32(*spin))),
		pipeline.WithObserver(func(r pipeline.FrameResult) {
			if r.Grew {
				log.Printf("Frame %d: streams grew to %d vertices, %d models", r.Frame, r.VertexCapacity, r.ModelCapacity)
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	p.Add(grid)
	p.Add(geometry.Axis(1.5))
	p.Add(subject)

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	cam := camera.Default()
	cam.Aspect = float32(*width) / float32(*height)
	cam.Vertical = 0.4
	orbit := camera.NewOrbit(cam)

	r := preview.Renderer{Width: *width, Height: *height, LineWidth: 1.5, Background: pal.Background}
	view, _ := transform.NewSquare(4)
	proj, _ := transform.NewSquare(4)

	for i := range *frames {
		orbit.Horizontal.Target += 2 * math32.Pi / float32(max(*frames, 1))
		c := orbit.Step(0.5)
		if err := c.View(view); err != nil {
			log.Fatal(err)
		}
		if err := c.Projection(proj); err != nil {
			log.Fatal(err)
		}

		if _, err := p.Frame(); err != nil {
			log.Fatalf("Frame %d: %v", i, err)
		}

		path := filepath.Join(*output, fmt.Sprintf("frame%03d.png", i))
		err := p.Read(func(f pipeline.Frame) error {
			dc, err := r.Render(f, view, proj)
			if err != nil {
				return err
			}
			defer dc.Close()
			return dc.SavePNG(path)
		})
		if err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
	}

	log.Printf("Rendered %d frames to %s (%dx%d)\n", *frames, *output, *width, *height)
}

func newSubject(name string) (*geometry.Geometry, error) {
	switch name {
	case "cube":
		return geometry.Cube(geometry.ColorPrimary), nil
	case "tesseract":
		return geometry.Tesseract(geometry.ColorAccent), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// spinner rotates subject by step around Y every frame. Four-dimensional
// subjects also turn through Q.
func spinner(subject *geometry.Geometry, step float32) pipeline.TransformHook {
	return func(_ int, g *geometry.Geometry) error {
		if g != subject {
			return nil
		}
		g.Transform.Rotation[vector.Y] += step
		if g.FourDimensional() {
			g.Transform.Rotation[vector.Q] += step / 2
		}
		return nil
	}
}
