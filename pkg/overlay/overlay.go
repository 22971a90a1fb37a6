// Package overlay draws debug shading over a retained element tree:
// devtools-style box-model highlights per element, plus repaint and
// layout region flashes that fade out over successive frames.
package overlay

import (
	"boxlens/pkg/css"
	"boxlens/pkg/element"
	"boxlens/pkg/geom"
	"boxlens/pkg/paint"
)

// Part selects which box-model layers of an element an overlay shades.
type Part uint8

const (
	PartContent Part = 1 << iota
	PartPadding
	PartBorder
	PartMargin

	PartAll = PartContent | PartPadding | PartBorder | PartMargin
)

// entry is the fade state of one element overlay. fade is the alpha
// lost per paint; zero means the overlay persists until removed.
type entry struct {
	parts Part
	alpha float64
	fade  float64
}

// Store owns the active debug overlays for one element tree. It is
// driven synchronously from the host's redraw callback and must not be
// shared across goroutines.
type Store struct {
	palette   paint.Palette
	flashFade float64
	elements  map[*element.Element]*entry
	flashes   []*flash

	// order fixes the draw sequence. Translucent fills composite
	// noncommutatively, so overlapping overlays must paint in a stable
	// order or the image changes from frame to frame. Insertion order
	// puts parents before children when a tree is added in tree order.
	order []*element.Element
}

func NewStore(cfg Config) *Store {
	return &Store{
		palette:   cfg.palette,
		flashFade: cfg.FlashFade,
		elements:  make(map[*element.Element]*entry),
	}
}

// Add attaches a persistent box-model overlay to el. A zero parts mask
// selects all four layers. Re-adding an element refreshes its entry, so
// a fading overlay becomes fully visible again.
func (s *Store) Add(el *element.Element, parts Part) {
	s.AddFading(el, parts, 0)
}

// AddFading attaches an overlay that loses fade alpha on every paint
// and is dropped once it reaches zero. fade 0 persists. Re-adding an
// element keeps its position in the draw order.
func (s *Store) AddFading(el *element.Element, parts Part, fade float64) {
	if parts == 0 {
		parts = PartAll
	}
	if fade < 0 {
		fade = 0
	}
	if _, ok := s.elements[el]; !ok {
		s.order = append(s.order, el)
	}
	s.elements[el] = &entry{parts: parts, alpha: 1, fade: fade}
}

// Remove drops the overlay for el, if any.
func (s *Store) Remove(el *element.Element) {
	if _, ok := s.elements[el]; !ok {
		return
	}
	delete(s.elements, el)
	for i, o := range s.order {
		if o == el {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether el currently has an overlay.
func (s *Store) Contains(el *element.Element) bool {
	_, ok := s.elements[el]
	return ok
}

// Clear drops every overlay and flash.
func (s *Store) Clear() {
	s.elements = make(map[*element.Element]*entry)
	s.order = nil
	s.flashes = nil
}

// Count returns the number of live overlays, element entries and region
// flashes together.
func (s *Store) Count() int {
	return len(s.elements) + len(s.flashes)
}

// Paint draws one frame of overlays through p, restricted to clip when
// one is given, then advances fade state and drops entries that reached
// zero. A freshly added overlay is always painted at least once, even
// with fade >= 1.
func (s *Store) Paint(p paint.Painter, clip *geom.Rect) {
	if clip != nil {
		p.Clip(*clip)
		defer p.ResetClip()
	}

	for _, el := range s.order {
		s.paintElement(p, clip, el, s.elements[el])
	}
	for _, f := range s.flashes {
		s.paintFlash(p, clip, f)
	}

	s.advance()
}

func (s *Store) paintElement(p paint.Painter, clip *geom.Rect, el *element.Element, en *entry) {
	boxes := el.BoxRects()

	// Overlays scrolled out of the clip still fade, they just draw
	// nothing this frame.
	if clip != nil && !boxes.Margin.Intersects(*clip) {
		return
	}

	a := en.alpha
	if en.parts&PartMargin != 0 {
		fillRing(p, boxes.Border, boxes.Margin, s.palette.Margin.WithAlpha(a))
	}
	if en.parts&PartBorder != 0 {
		fillBorderRing(p, boxes.Padding, boxes.Border, s.palette.Border.WithAlpha(a))
	}
	if en.parts&PartPadding != 0 {
		fillRing(p, boxes.Content, boxes.Padding, s.palette.Padding.WithAlpha(a))
	}
	if en.parts&PartContent != 0 && !boxes.Content.IsEmpty() {
		p.FillRect(boxes.Content, s.palette.Content.WithAlpha(a))
	}

	if s.palette.OutlineWidth > 0 && !boxes.Border.IsEmpty() {
		outline := paint.Outline(s.palette.Border).WithAlpha(a)
		p.StrokeRect(boxes.Border, outline, s.palette.OutlineWidth)
	}
}

// advance runs the draw-then-decay step of the overlay lifecycle:
// alpha drops by the entry's fade rate and spent entries are culled.
func (s *Store) advance() {
	kept := s.order[:0]
	for _, el := range s.order {
		en := s.elements[el]
		if en.fade > 0 {
			en.alpha -= en.fade
			if en.alpha <= 0 {
				delete(s.elements, el)
				continue
			}
		}
		kept = append(kept, el)
	}
	if len(kept) == 0 {
		kept = nil
	}
	s.order = kept

	live := s.flashes[:0]
	for _, f := range s.flashes {
		f.alpha -= s.flashFade
		if f.alpha > 0 {
			live = append(live, f)
		}
	}
	if len(live) == 0 {
		live = nil
	}
	s.flashes = live
}

// fillRing fills the area between two nested rects as four side strips.
// The strips tile the ring, so translucent fills never double-paint.
func fillRing(p paint.Painter, inner, outer geom.Rect, c css.Color) {
	for _, strip := range geom.SideStrips(inner, outer) {
		if !strip.IsEmpty() {
			p.FillRect(strip, c)
		}
	}
}

// fillBorderRing fills the border ring as four mitered trapezoids, the
// way CSS renders border sides, so the highlight matches what a real
// border occupies at the corners.
func fillBorderRing(p paint.Painter, inner, outer geom.Rect, c css.Color) {
	if inner.Y > outer.Y { // top
		p.FillQuad(
			outer.X, outer.Y,
			outer.Right(), outer.Y,
			inner.Right(), inner.Y,
			inner.X, inner.Y,
			c,
		)
	}
	if outer.Right() > inner.Right() { // right
		p.FillQuad(
			outer.Right(), outer.Y,
			outer.Right(), outer.Bottom(),
			inner.Right(), inner.Bottom(),
			inner.Right(), inner.Y,
			c,
		)
	}
	if outer.Bottom() > inner.Bottom() { // bottom
		p.FillQuad(
			outer.X, outer.Bottom(),
			outer.Right(), outer.Bottom(),
			inner.Right(), inner.Bottom(),
			inner.X, inner.Bottom(),
			c,
		)
	}
	if inner.X > outer.X { // left
		p.FillQuad(
			outer.X, outer.Y,
			outer.X, outer.Bottom(),
			inner.X, inner.Bottom(),
			inner.X, inner.Y,
			c,
		)
	}
}
