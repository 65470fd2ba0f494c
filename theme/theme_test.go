package theme

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/gogpu/tesser/geometry"
)

func TestPalettesDefineEveryTag(t *testing.T) {
	for _, p := range []*Palette{Light(), Dark()} {
		t.Run(p.Name, func(t *testing.T) {
			seen := map[color.RGBA]geometry.Color{}
			for tag := geometry.ColorPrimary; int(tag) < geometry.NumColors; tag++ {
				if !p.defined[tag] {
					t.Errorf("%v not defined", tag)
				}
				c := p.Color(tag)
				if other, dup := seen[c]; dup {
					t.Errorf("%v and %v share color %v", tag, other, c)
				}
				seen[c] = tag
				if c == p.Background {
					t.Errorf("%v is invisible on the background", tag)
				}
			}
		})
	}
}

func TestResolve(t *testing.T) {
	p := Light()
	r, g, b := p.Resolve(geometry.ColorPrimary)
	want := colornames.Steelblue
	if r != float32(want.R)/255 || g != float32(want.G)/255 || b != float32(want.B)/255 {
		t.Errorf("Resolve(Primary) = (%v, %v, %v), want %v", r, g, b, want)
	}

	r, g, b = New("mono", colornames.Black, colornames.White).Resolve(geometry.ColorX)
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("Resolve(undefined) = (%v, %v, %v), want fallback white", r, g, b)
	}
}

func TestUnknownTagUsesFallback(t *testing.T) {
	p := Dark()
	for _, tag := range []geometry.Color{-1, geometry.Color(geometry.NumColors), 1000} {
		if got := p.Color(tag); got != colornames.Whitesmoke {
			t.Errorf("Color(%v) = %v, want fallback %v", tag, got, colornames.Whitesmoke)
		}
	}
	// Out of range Set is ignored.
	p.Set(geometry.Color(1000), colornames.Red)
	if got := p.Color(1000); got != colornames.Whitesmoke {
		t.Errorf("Color(1000) after Set = %v, want fallback", got)
	}
}

func TestSetConvertsColorModels(t *testing.T) {
	p := New("gray", color.Gray{Y: 0}, color.Gray{Y: 0})
	p.Set(geometry.ColorAccent, color.Gray{Y: 128})
	if got := p.Color(geometry.ColorAccent); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("Color(Accent) = %v, want gray 128", got)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"light", "dark"} {
		p, ok := ByName(name)
		if !ok || p.Name != name {
			t.Errorf("ByName(%q) = %v, %v", name, p, ok)
		}
	}
	if _, ok := ByName("sepia"); ok {
		t.Error("ByName(\"sepia\") ok = true, want false")
	}
}
