package paint

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"boxlens/pkg/css"
)

// Palette holds the colors the overlay pass draws with. The defaults
// follow the scheme browser element inspectors use, so the shading reads
// the same way developers already know it.
type Palette struct {
	Content css.Color
	Padding css.Color
	Border  css.Color
	Margin  css.Color
	Repaint css.Color
	Layout  css.Color

	OutlineWidth float64
}

func DefaultPalette() Palette {
	return Palette{
		Content:      css.Color{R: 111, G: 168, B: 220, A: 0.66},
		Padding:      css.Color{R: 147, G: 196, B: 125, A: 0.55},
		Border:       css.Color{R: 255, G: 229, B: 153, A: 0.60},
		Margin:       css.Color{R: 246, G: 178, B: 107, A: 0.60},
		Repaint:      css.Color{R: 64, G: 255, B: 64, A: 0.45},
		Layout:       css.Color{R: 178, G: 102, B: 255, A: 0.45},
		OutlineWidth: 1,
	}
}

// Outline derives a stroke shade from a fill: same hue, darkened, fully
// opaque, so the box edge stays readable as the fill alpha decays.
func Outline(fill css.Color) css.Color {
	c := colorful.Color{
		R: float64(fill.R) / 255.0,
		G: float64(fill.G) / 255.0,
		B: float64(fill.B) / 255.0,
	}
	h, s, l := c.Hsl()
	r, g, b := colorful.Hsl(h, s, l*0.45).Clamped().RGB255()
	return css.Color{R: r, G: g, B: b, A: 1}
}
