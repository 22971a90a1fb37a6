package paint

import (
	"boxlens/pkg/css"
	"boxlens/pkg/geom"
)

type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillQuad
	OpLine
	OpClip
	OpResetClip
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Rect  geom.Rect  // FillRect, StrokeRect, Clip
	Pts   [8]float64 // FillQuad (x1..y4), Line (x1,y1,x2,y2)
	Color css.Color
	Width float64
}

// Recorder is a Painter that captures draw calls instead of rasterizing
// them. Tests assert against the recorded ops.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(rect geom.Rect, c css.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect geom.Rect, c css.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rect, Color: c, Width: width})
}

func (r *Recorder) FillQuad(x1, y1, x2, y2, x3, y3, x4, y4 float64, c css.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpFillQuad,
		Pts:   [8]float64{x1, y1, x2, y2, x3, y3, x4, y4},
		Color: c,
	})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c css.Color, width float64) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpLine,
		Pts:   [8]float64{x1, y1, x2, y2},
		Color: c,
		Width: width,
	})
}

func (r *Recorder) Clip(rect geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpClip, Rect: rect})
}

func (r *Recorder) ResetClip() {
	r.Ops = append(r.Ops, Op{Kind: OpResetClip})
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Fills returns the recorded FillRect ops.
func (r *Recorder) Fills() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpFillRect {
			out = append(out, op)
		}
	}
	return out
}

// FillsAt returns the FillRect ops whose rect equals rect.
func (r *Recorder) FillsAt(rect geom.Rect) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpFillRect && op.Rect == rect {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
