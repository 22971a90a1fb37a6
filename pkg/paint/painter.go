// Package paint is the drawing seam between the overlay pass and the
// host's graphics backend. The overlay code issues immediate-mode fill
// and stroke calls against the Painter interface; the GG implementation
// rasterizes them, and the Recorder captures them for tests.
package paint

import (
	"boxlens/pkg/css"
	"boxlens/pkg/geom"
)

// Painter is an immediate-mode drawing surface in world coordinates.
// Calls take effect immediately; there is no retained display list.
type Painter interface {
	FillRect(r geom.Rect, c css.Color)
	StrokeRect(r geom.Rect, c css.Color, width float64)

	// FillQuad fills an arbitrary four-sided polygon. Vertices are given
	// in order around the perimeter.
	FillQuad(x1, y1, x2, y2, x3, y3, x4, y4 float64, c css.Color)

	Line(x1, y1, x2, y2 float64, c css.Color, width float64)

	// Clip restricts subsequent drawing to r until ResetClip.
	Clip(r geom.Rect)
	ResetClip()
}
