package overlay

import (
	"testing"

	"boxlens/pkg/css"
	"boxlens/pkg/element"
	"boxlens/pkg/geom"
	"boxlens/pkg/paint"
	"boxlens/pkg/visualtest"
)

// renderOnce paints the store over a white 240x200 surface.
func renderOnce(s *Store) *paint.GG {
	g := paint.NewGG(240, 200)
	g.Clear(css.Color{R: 255, G: 255, B: 255, A: 1})
	s.Paint(g, nil)
	return g
}

// nestedElements returns a parent with a child laid out inside it, so
// their overlays overlap the way AddMatching over a subtree produces.
func nestedElements() (*element.Element, *element.Element) {
	parent := boxedElement()
	child := element.New("p")
	child.Content = geom.Rect{X: 110, Y: 108, Width: 50, Height: 24}
	child.Style.Set("padding-top", "4px")
	child.Style.Set("padding-left", "4px")
	child.Style.Set("margin-bottom", "6px")
	parent.AppendChild(child)
	return parent, child
}

func TestRender_Deterministic(t *testing.T) {
	a := NewStore(DefaultConfig())
	b := NewStore(DefaultConfig())
	for _, s := range []*Store{a, b} {
		parent, child := nestedElements()
		s.Add(parent, PartAll)
		s.Add(child, PartAll)
		s.FlashLayout(geom.Rect{X: 5, Y: 5, Width: 40, Height: 30})
	}

	// The parent and child overlays overlap, and translucent "over"
	// compositing is order-sensitive, so any draw-order instability
	// shows up as differing pixels here.
	first := renderOnce(a).Image()
	for i := 0; i < 5; i++ {
		b2 := NewStore(DefaultConfig())
		parent, child := nestedElements()
		b2.Add(parent, PartAll)
		b2.Add(child, PartAll)
		b2.FlashLayout(geom.Rect{X: 5, Y: 5, Width: 40, Height: 30})

		result, err := visualtest.CompareImages(first, renderOnce(b2).Image(), visualtest.DefaultOptions())
		if err != nil {
			t.Fatalf("compare error: %v", err)
		}
		if !result.Match {
			t.Fatalf("render %d differs from first render: %d pixels differ (max channel diff %d)",
				i, result.DifferentPixels, result.MaxDifference)
		}
	}

	result, err := visualtest.CompareImages(first, renderOnce(b).Image(), visualtest.DefaultOptions())
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !result.Match {
		t.Errorf("identical stores should render identically: %d pixels differ (max channel diff %d)",
			result.DifferentPixels, result.MaxDifference)
	}
}

func TestRender_OverlayChangesPixels(t *testing.T) {
	withOverlay := NewStore(DefaultConfig())
	withOverlay.Add(boxedElement(), PartAll)
	empty := NewStore(DefaultConfig())

	result, err := visualtest.CompareImages(renderOnce(withOverlay).Image(), renderOnce(empty).Image(), visualtest.DefaultOptions())
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if result.Match {
		t.Error("an active overlay should change the rendered image")
	}
	if result.DifferentPixels == 0 {
		t.Error("expected differing pixels where the overlay painted")
	}
}

func TestRender_FadedOverlayLeavesNoTrace(t *testing.T) {
	faded := NewStore(DefaultConfig())
	faded.AddFading(boxedElement(), PartAll, 1)
	renderOnce(faded) // draws once, then the entry is culled

	result, err := visualtest.CompareImages(renderOnce(faded).Image(), renderOnce(NewStore(DefaultConfig())).Image(), visualtest.DefaultOptions())
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !result.Match {
		t.Error("a fully faded overlay should paint nothing")
	}
}
