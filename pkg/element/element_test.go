package element

import (
	"testing"

	"boxlens/pkg/geom"
)

func buildTree() *Element {
	root := New("body")
	root.ID = "root"

	header := New("div")
	header.ID = "header"
	root.AppendChild(header)

	main := New("div")
	main.ID = "main"
	root.AppendChild(main)

	p := New("p")
	p.ID = "para"
	main.AppendChild(p)

	return root
}

func TestElement_WalkOrder(t *testing.T) {
	root := buildTree()

	var ids []string
	root.Walk(func(el *Element) bool {
		ids = append(ids, el.ID)
		return true
	})

	want := []string{"root", "header", "main", "para"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], ids[i])
		}
	}
}

func TestElement_WalkPrunes(t *testing.T) {
	root := buildTree()

	var ids []string
	root.Walk(func(el *Element) bool {
		ids = append(ids, el.ID)
		return el.ID != "main"
	})

	for _, id := range ids {
		if id == "para" {
			t.Error("pruned subtree should not be visited")
		}
	}
}

func TestElement_FindByID(t *testing.T) {
	root := buildTree()

	if el := root.FindByID("para"); el == nil || el.Tag != "p" {
		t.Errorf("expected to find p#para, got %v", el)
	}
	if el := root.FindByID("missing"); el != nil {
		t.Errorf("expected nil for unknown id, got %v", el)
	}
}

func TestElement_CountAndDepth(t *testing.T) {
	root := buildTree()

	if got := root.Count(); got != 4 {
		t.Errorf("expected 4 elements, got %d", got)
	}
	if got := root.Depth(); got != 0 {
		t.Errorf("root depth should be 0, got %d", got)
	}
	if got := root.FindByID("para").Depth(); got != 2 {
		t.Errorf("p#para depth should be 2, got %d", got)
	}
}

func TestElement_BoxRects(t *testing.T) {
	el := New("div")
	el.Content = geom.Rect{X: 100, Y: 100, Width: 80, Height: 40}
	el.Style.Set("padding-top", "10px")
	el.Style.Set("padding-right", "10px")
	el.Style.Set("padding-bottom", "10px")
	el.Style.Set("padding-left", "10px")
	el.Style.Set("border-top-width", "5px")
	el.Style.Set("border-right-width", "5px")
	el.Style.Set("border-bottom-width", "5px")
	el.Style.Set("border-left-width", "5px")
	el.Style.Set("margin-top", "20px")
	el.Style.Set("margin-right", "20px")
	el.Style.Set("margin-bottom", "20px")
	el.Style.Set("margin-left", "20px")

	boxes := el.BoxRects()
	if want := (geom.Rect{X: 90, Y: 90, Width: 100, Height: 60}); boxes.Padding != want {
		t.Errorf("expected padding box %v, got %v", want, boxes.Padding)
	}
	if want := (geom.Rect{X: 65, Y: 65, Width: 150, Height: 110}); boxes.Margin != want {
		t.Errorf("expected margin box %v, got %v", want, boxes.Margin)
	}
	if el.PaintRect() != boxes.Margin {
		t.Error("PaintRect should be the margin box")
	}
}

func TestElement_UnstyledBoxesCollapse(t *testing.T) {
	el := New("span")
	el.Content = geom.Rect{X: 5, Y: 5, Width: 10, Height: 10}

	boxes := el.BoxRects()
	if boxes.Margin != el.Content {
		t.Errorf("without insets all boxes should equal content, got %v", boxes.Margin)
	}
}
