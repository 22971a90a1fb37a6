package overlay

import (
	"boxlens/pkg/css"
	"boxlens/pkg/geom"
	"boxlens/pkg/paint"
)

// flash is a fading region highlight with no element attached. cross
// marks layout flashes, which draw diagonal crosshairs so they stay
// distinguishable from repaint flashes even with matching colors.
type flash struct {
	rect  geom.Rect
	color css.Color
	alpha float64
	cross bool
}

// FlashRepaint highlights a region that was just repainted. The flash
// fades out at the store's flash fade rate.
func (s *Store) FlashRepaint(r geom.Rect) {
	s.addFlash(r, s.palette.Repaint, false)
}

// FlashLayout highlights a region whose layout was just recomputed.
func (s *Store) FlashLayout(r geom.Rect) {
	s.addFlash(r, s.palette.Layout, true)
}

func (s *Store) addFlash(r geom.Rect, c css.Color, cross bool) {
	if r.IsEmpty() {
		return
	}
	s.flashes = append(s.flashes, &flash{rect: r, color: c, alpha: 1, cross: cross})
}

func (s *Store) paintFlash(p paint.Painter, clip *geom.Rect, f *flash) {
	if clip != nil && !f.rect.Intersects(*clip) {
		return
	}
	p.FillRect(f.rect, f.color.WithAlpha(f.alpha))
	if s.palette.OutlineWidth > 0 {
		outline := paint.Outline(f.color).WithAlpha(f.alpha)
		p.StrokeRect(f.rect, outline, s.palette.OutlineWidth)
		if f.cross {
			p.Line(f.rect.X, f.rect.Y, f.rect.Right(), f.rect.Bottom(), outline, s.palette.OutlineWidth)
			p.Line(f.rect.X, f.rect.Bottom(), f.rect.Right(), f.rect.Y, outline, s.palette.OutlineWidth)
		}
	}
}
