package geom

// BoxRects holds the four nested rectangles of the CSS box model for one
// element, innermost first. Each rect fully encloses the previous one.
type BoxRects struct {
	Content Rect
	Padding Rect // content grown by the padding widths
	Border  Rect // padding box grown by the border widths
	Margin  Rect // border box grown by the margin widths
}

// Decompose computes the box-model rectangles outward from the content
// rect: each box is its inner neighbor grown by that layer's edge widths.
func Decompose(content Rect, padding, border, margin Insets) BoxRects {
	p := content.Outset(padding)
	b := p.Outset(border)
	m := b.Outset(margin)
	return BoxRects{Content: content, Padding: p, Border: b, Margin: m}
}

// Side indexes the strips returned by SideStrips, clockwise from the top.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// SideStrips splits the ring between two nested rects into four
// non-overlapping strips: top and bottom span outer's full width, left
// and right fill the gap between them at inner's height. The strips tile
// the ring exactly, so filling all four paints every ring pixel once.
// Sides with zero width come back as empty rects.
func SideStrips(inner, outer Rect) [4]Rect {
	var s [4]Rect
	s[SideTop] = Rect{
		X:      outer.X,
		Y:      outer.Y,
		Width:  outer.Width,
		Height: inner.Y - outer.Y,
	}
	s[SideBottom] = Rect{
		X:      outer.X,
		Y:      inner.Bottom(),
		Width:  outer.Width,
		Height: outer.Bottom() - inner.Bottom(),
	}
	s[SideLeft] = Rect{
		X:      outer.X,
		Y:      inner.Y,
		Width:  inner.X - outer.X,
		Height: inner.Height,
	}
	s[SideRight] = Rect{
		X:      inner.Right(),
		Y:      inner.Y,
		Width:  outer.Right() - inner.Right(),
		Height: inner.Height,
	}
	return s
}
