// Package visualtest compares rendered overlay images pixel by pixel,
// with tolerances for anti-aliasing along box edges.
package visualtest

import (
	"fmt"
	"image"
)

// CompareResult contains the results of an image comparison.
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // max per-channel difference found
}

// CompareOptions configures the comparison.
type CompareOptions struct {
	// Tolerance is the maximum allowed difference per color channel
	// (0-255). A small tolerance absorbs rasterizer rounding.
	Tolerance int

	// MaxDifferentPercent, when > 0, passes the comparison if at most
	// that percentage of pixels differ. Absorbs anti-aliased edges.
	MaxDifferentPercent float64
}

// DefaultOptions returns tolerances suited to gg-rendered overlays.
func DefaultOptions() CompareOptions {
	return CompareOptions{Tolerance: 2}
}

// CompareImages compares two images pixel by pixel. Differing bounds
// are an error, not a mismatch.
func CompareImages(actual, expected image.Image, opts CompareOptions) (*CompareResult, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return nil, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}

	result := &CompareResult{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			diff := pixelDiff(actual, expected, x, y)
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}
			if diff > opts.Tolerance {
				result.Match = false
				result.DifferentPixels++
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	return result, nil
}

// pixelDiff returns the maximum per-channel difference between the two
// images at (x, y), in 8-bit channel units.
func pixelDiff(a, b image.Image, x, y int) int {
	ar, ag, ab2, aa := a.At(x, y).RGBA()
	br, bg, bb, ba := b.At(x, y).RGBA()
	return maxInt(
		absInt(int(ar>>8)-int(br>>8)),
		absInt(int(ag>>8)-int(bg>>8)),
		absInt(int(ab2>>8)-int(bb>>8)),
		absInt(int(aa>>8)-int(ba>>8)),
	)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
