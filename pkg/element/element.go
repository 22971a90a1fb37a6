// Package element models the retained UI element tree the debug
// overlays are attached to. The host toolkit owns layout; by the time
// boxlens sees an element its Content rect holds final world-space
// coordinates and its Style holds resolved longhand values.
package element

import (
	"boxlens/pkg/css"
	"boxlens/pkg/geom"
)

type Element struct {
	Tag      string
	ID       string
	Style    *css.Style
	Content  geom.Rect // world-space content box, post-layout
	Children []*Element
	Parent   *Element
}

func New(tag string) *Element {
	return &Element{Tag: tag, Style: css.NewStyle()}
}

func (e *Element) AppendChild(c *Element) {
	c.Parent = e
	e.Children = append(e.Children, c)
}

// Walk visits e and its descendants in tree order. Returning false from
// visit prunes that element's subtree.
func (e *Element) Walk(visit func(*Element) bool) {
	if !visit(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(visit)
	}
}

// FindByID returns the first element in tree order whose ID matches, or
// nil if none does.
func (e *Element) FindByID(id string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if el.ID == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// Count returns the number of elements in the subtree rooted at e,
// including e itself.
func (e *Element) Count() int {
	n := 0
	e.Walk(func(*Element) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of ancestors above e. A root element has
// depth 0.
func (e *Element) Depth() int {
	d := 0
	for p := e.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// BoxRects resolves the element's box-model rectangles from its content
// bounds and the inset widths in its style.
func (e *Element) BoxRects() geom.BoxRects {
	return geom.Decompose(
		e.Content,
		e.Style.GetPadding(),
		e.Style.GetBorderWidth(),
		e.Style.GetMargin(),
	)
}

// PaintRect returns the margin box: the full area an overlay for e
// covers on screen.
func (e *Element) PaintRect() geom.Rect {
	return e.BoxRects().Margin
}
