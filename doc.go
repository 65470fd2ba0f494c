// Package tesser provides the numeric core for viewing geometry of up to four
// spatial dimensions on a 2D viewport.
//
// # Overview
//
// tesser turns lines between 3D and 4D positions into two flat float32
// streams that a GPU host can upload without further processing:
//
//   - a vertex stream, one record per line end point
//   - a model matrix stream, one 4x4 matrix per geometry
//
// The work is split into small packages:
//   - vector: N-dimensional vectors (in-place arithmetic, dot, cross)
//   - transform: row-major N×M matrices and transform constructors
//   - buffer: growable element/sub-vector/component storage and its Recorder
//   - geometry: position arenas, index-pair lines, extrusion, stock shapes
//   - camera: orbit view and projection matrices
//   - theme: palettes resolving symbolic line colors to RGB
//   - pipeline: per-frame model matrix recompute and stream recording
//   - preview: a CPU consumer of finished frames, rasterized with gg
//
// # Quick Start
//
//	cube := geometry.Cube(geometry.ColorAccent)
//
//	p, _ := pipeline.New(pipeline.WithPalette(theme.Dark()))
//	p.Add(cube)
//
//	if _, err := p.Frame(); err != nil {
//	    log.Fatal(err)
//	}
//	_ = p.Read(func(f pipeline.Frame) error {
//	    upload(f.Vertices, f.Models)
//	    return nil
//	})
//
// # Conventions
//
// Vectors are rows. A transform m applies as v' = v * m, so a chain
// v * S * R * T scales first, then rotates, then translates. Transform
// matrices acting on dimension d are (d+1)×(d+1); the last row carries the
// translation and the last column the homogeneous weight.
//
// # Errors
//
// Every contract violation is reported synchronously as one of the errors in
// this package ([ErrDimension], [ErrIndex], [ErrSequencing], [ErrRange],
// [ErrDegenerateVector]). They signal caller bugs and are never retried.
package tesser

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
