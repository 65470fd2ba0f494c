// Package theme maps symbolic geometry colors to concrete RGB values.
package theme

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/gogpu/tesser/geometry"
)

// Palette resolves geometry color tags. Unknown tags resolve to the
// fallback color. The zero Palette resolves everything to black.
type Palette struct {
	Name       string
	Background color.RGBA

	colors   [geometry.NumColors]color.RGBA
	defined  [geometry.NumColors]bool
	fallback color.RGBA
}

// New creates a palette with the given background and fallback colors.
func New(name string, background, fallback color.Color) *Palette {
	return &Palette{
		Name:       name,
		Background: toRGBA(background),
		fallback:   toRGBA(fallback),
	}
}

// Set assigns a color to a tag. Tags outside the defined range are ignored.
func (p *Palette) Set(tag geometry.Color, c color.Color) *Palette {
	if tag < 0 || int(tag) >= geometry.NumColors {
		return p
	}
	p.colors[tag] = toRGBA(c)
	p.defined[tag] = true
	return p
}

// Color returns the color assigned to tag, or the fallback.
func (p *Palette) Color(tag geometry.Color) color.RGBA {
	if tag < 0 || int(tag) >= geometry.NumColors || !p.defined[tag] {
		return p.fallback
	}
	return p.colors[tag]
}

// Resolve returns the color of tag as normalized float components in
// [0, 1], ready for a vertex stream.
func (p *Palette) Resolve(tag geometry.Color) (r, g, b float32) {
	c := p.Color(tag)
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Light returns the default palette for a light background.
func Light() *Palette {
	return New("light", colornames.White, colornames.Black).
		Set(geometry.ColorPrimary, colornames.Steelblue).
		Set(geometry.ColorAccent, colornames.Orangered).
		Set(geometry.ColorGrid, colornames.Gainsboro).
		Set(geometry.ColorX, colornames.Crimson).
		Set(geometry.ColorY, colornames.Seagreen).
		Set(geometry.ColorZ, colornames.Royalblue).
		Set(geometry.ColorQ, colornames.Darkorange)
}

// Dark returns the default palette for a dark background.
func Dark() *Palette {
	return New("dark", colornames.Darkslategray, colornames.Whitesmoke).
		Set(geometry.ColorPrimary, colornames.Lightskyblue).
		Set(geometry.ColorAccent, colornames.Gold).
		Set(geometry.ColorGrid, colornames.Dimgray).
		Set(geometry.ColorX, colornames.Salmon).
		Set(geometry.ColorY, colornames.Palegreen).
		Set(geometry.ColorZ, colornames.Cornflowerblue).
		Set(geometry.ColorQ, colornames.Mediumpurple)
}

// ByName returns the palette called name ("light" or "dark").
func ByName(name string) (*Palette, bool) {
	switch name {
	case "light":
		return Light(), true
	case "dark":
		return Dark(), true
	default:
		return nil, false
	}
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
