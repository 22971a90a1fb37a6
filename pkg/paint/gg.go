package paint

import (
	"image"

	"github.com/fogleman/gg"

	"boxlens/pkg/css"
	"boxlens/pkg/geom"
)

// GG is a Painter that rasterizes into an in-memory image through a
// fogleman/gg context.
type GG struct {
	ctx *gg.Context
}

func NewGG(width, height int) *GG {
	return &GG{ctx: gg.NewContext(width, height)}
}

// NewGGForImage wraps an existing image so overlay drawing composites
// over whatever the base pass already painted.
func NewGGForImage(img image.Image) *GG {
	return &GG{ctx: gg.NewContextForImage(img)}
}

// Image returns the backing image. The overlay pass draws directly into
// it, so the result is valid after every Painter call.
func (g *GG) Image() image.Image {
	return g.ctx.Image()
}

// Clear fills the whole surface with c, discarding previous drawing.
func (g *GG) Clear(c css.Color) {
	g.setColor(c)
	g.ctx.Clear()
}

func (g *GG) FillRect(r geom.Rect, c css.Color) {
	if r.IsEmpty() || c.A <= 0 {
		return
	}
	g.setColor(c)
	g.ctx.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	g.ctx.Fill()
}

func (g *GG) StrokeRect(r geom.Rect, c css.Color, width float64) {
	if r.IsEmpty() || c.A <= 0 || width <= 0 {
		return
	}
	g.setColor(c)
	g.ctx.SetLineWidth(width)
	g.ctx.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	g.ctx.Stroke()
}

func (g *GG) FillQuad(x1, y1, x2, y2, x3, y3, x4, y4 float64, c css.Color) {
	if c.A <= 0 {
		return
	}
	g.setColor(c)
	g.ctx.MoveTo(x1, y1)
	g.ctx.LineTo(x2, y2)
	g.ctx.LineTo(x3, y3)
	g.ctx.LineTo(x4, y4)
	g.ctx.ClosePath()
	g.ctx.Fill()
}

func (g *GG) Line(x1, y1, x2, y2 float64, c css.Color, width float64) {
	if c.A <= 0 || width <= 0 {
		return
	}
	g.setColor(c)
	g.ctx.SetLineWidth(width)
	g.ctx.DrawLine(x1, y1, x2, y2)
	g.ctx.Stroke()
}

func (g *GG) Clip(r geom.Rect) {
	g.ctx.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	g.ctx.Clip()
}

func (g *GG) ResetClip() {
	g.ctx.ResetClip()
}

func (g *GG) setColor(c css.Color) {
	g.ctx.SetRGBA(
		float64(c.R)/255.0,
		float64(c.G)/255.0,
		float64(c.B)/255.0,
		c.A,
	)
}
