package css

import (
	"strconv"
	"strings"
)

// Color is an RGBA color with 8-bit channels and a 0..1 alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns the color with its alpha multiplied by a. Alpha is
// clamped to 0..1.
func (c Color) WithAlpha(a float64) Color {
	v := c.A * a
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	c.A = v
	return c
}

var namedColors = map[string]Color{
	"red":         {255, 0, 0, 1},
	"green":       {0, 128, 0, 1},
	"blue":        {0, 0, 255, 1},
	"yellow":      {255, 255, 0, 1},
	"cyan":        {0, 255, 255, 1},
	"magenta":     {255, 0, 255, 1},
	"white":       {255, 255, 255, 1},
	"black":       {0, 0, 0, 1},
	"gray":        {128, 128, 128, 1},
	"orange":      {255, 165, 0, 1},
	"purple":      {128, 0, 128, 1},
	"pink":        {255, 192, 203, 1},
	"brown":       {165, 42, 42, 1},
	"lime":        {0, 255, 0, 1},
	"navy":        {0, 0, 128, 1},
	"teal":        {0, 128, 128, 1},
	"silver":      {192, 192, 192, 1},
	"transparent": {0, 0, 0, 0},
}

// ParseColor parses a CSS color value: named colors, #rgb and #rrggbb
// hex, and the rgb()/rgba() functional forms.
func ParseColor(colorStr string) (Color, bool) {
	colorStr = strings.ToLower(strings.TrimSpace(colorStr))

	if color, ok := namedColors[colorStr]; ok {
		return color, true
	}

	if strings.HasPrefix(colorStr, "#") {
		return parseHexColor(colorStr[1:])
	}

	if strings.HasPrefix(colorStr, "rgb(") && strings.HasSuffix(colorStr, ")") {
		return parseRGBFunc(colorStr[4:len(colorStr)-1], false)
	}
	if strings.HasPrefix(colorStr, "rgba(") && strings.HasSuffix(colorStr, ")") {
		return parseRGBFunc(colorStr[5:len(colorStr)-1], true)
	}

	return Color{}, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		// #rgb expands each digit, so "f" becomes 0xff
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Color{}, false
			}
			c[i] = uint8(v*16 + v)
		}
		return Color{R: c[0], G: c[1], B: c[2], A: 1}, true
	case 6:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, false
			}
			c[i] = uint8(v)
		}
		return Color{R: c[0], G: c[1], B: c[2], A: 1}, true
	}
	return Color{}, false
}

func parseRGBFunc(args string, withAlpha bool) (Color, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return Color{}, false
		}
		ch[i] = uint8(v)
	}

	a := 1.0
	if withAlpha {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return Color{}, false
		}
		a = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}
