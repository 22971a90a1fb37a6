package css

import (
	"strconv"
	"strings"

	"boxlens/pkg/geom"
)

// Style is the resolved style view of one element: a bag of longhand
// properties whose values have already been through cascade and unit
// resolution by the host toolkit. boxlens only reads it.
type Style struct {
	Properties map[string]string
}

func NewStyle() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a pixel length value (e.g. "12px" or "12").
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// GetMargin returns the margin widths for all four sides.
func (s *Style) GetMargin() geom.Insets {
	return s.edges("margin-top", "margin-right", "margin-bottom", "margin-left")
}

// GetPadding returns the padding widths for all four sides.
func (s *Style) GetPadding() geom.Insets {
	return s.edges("padding-top", "padding-right", "padding-bottom", "padding-left")
}

// GetBorderWidth returns the border widths for all four sides.
func (s *Style) GetBorderWidth() geom.Insets {
	return s.edges("border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
}

func (s *Style) edges(top, right, bottom, left string) geom.Insets {
	return geom.Insets{
		Top:    s.getLengthOrZero(top),
		Right:  s.getLengthOrZero(right),
		Bottom: s.getLengthOrZero(bottom),
		Left:   s.getLengthOrZero(left),
	}
}

// getLengthOrZero returns the length value or 0 if not set. Unset and
// unparsable longhands both resolve to zero width.
func (s *Style) getLengthOrZero(property string) float64 {
	if val, ok := s.GetLength(property); ok {
		return val
	}
	return 0
}

// GetBackgroundColor returns the background color, if one is set with a
// parsable value.
func (s *Style) GetBackgroundColor() (Color, bool) {
	val, ok := s.Get("background-color")
	if !ok {
		return Color{}, false
	}
	return ParseColor(val)
}

// GetBorderColor returns the border color, defaulting to black the way
// CSS defaults border-color to the element's color.
func (s *Style) GetBorderColor() Color {
	if val, ok := s.Get("border-color"); ok {
		if c, ok := ParseColor(val); ok {
			return c
		}
	}
	return Color{R: 0, G: 0, B: 0, A: 1}
}
