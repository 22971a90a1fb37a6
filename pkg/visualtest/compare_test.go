package visualtest

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCompareImages_Identical(t *testing.T) {
	a := solidImage(10, 10, color.RGBA{100, 150, 200, 255})
	b := solidImage(10, 10, color.RGBA{100, 150, 200, 255})

	result, err := CompareImages(a, b, CompareOptions{})
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !result.Match || result.DifferentPixels != 0 {
		t.Errorf("identical images should match: %+v", result)
	}
	if result.TotalPixels != 100 {
		t.Errorf("expected 100 total pixels, got %d", result.TotalPixels)
	}
}

func TestCompareImages_SinglePixelDifference(t *testing.T) {
	a := solidImage(10, 10, color.RGBA{100, 150, 200, 255})
	b := solidImage(10, 10, color.RGBA{100, 150, 200, 255})
	b.Set(3, 7, color.RGBA{0, 0, 0, 255})

	result, err := CompareImages(a, b, CompareOptions{})
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if result.Match {
		t.Error("a differing pixel should fail the comparison")
	}
	if result.DifferentPixels != 1 {
		t.Errorf("expected 1 differing pixel, got %d", result.DifferentPixels)
	}
	if result.MaxDifference != 200 {
		t.Errorf("expected max channel difference 200, got %d", result.MaxDifference)
	}
}

func TestCompareImages_ToleranceAbsorbsSmallDifferences(t *testing.T) {
	a := solidImage(10, 10, color.RGBA{100, 150, 200, 255})
	b := solidImage(10, 10, color.RGBA{102, 149, 200, 255})

	result, err := CompareImages(a, b, DefaultOptions())
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !result.Match {
		t.Errorf("within-tolerance differences should match: %+v", result)
	}
}

func TestCompareImages_MaxDifferentPercent(t *testing.T) {
	a := solidImage(10, 10, color.RGBA{255, 255, 255, 255})
	b := solidImage(10, 10, color.RGBA{255, 255, 255, 255})
	b.Set(0, 0, color.RGBA{0, 0, 0, 255}) // 1% of pixels

	result, err := CompareImages(a, b, CompareOptions{MaxDifferentPercent: 1})
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !result.Match {
		t.Error("1% difference should pass with MaxDifferentPercent 1")
	}

	result, err = CompareImages(a, b, CompareOptions{MaxDifferentPercent: 0.5})
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if result.Match {
		t.Error("1% difference should fail with MaxDifferentPercent 0.5")
	}
}

func TestCompareImages_DimensionMismatch(t *testing.T) {
	a := solidImage(10, 10, color.RGBA{255, 255, 255, 255})
	b := solidImage(10, 12, color.RGBA{255, 255, 255, 255})

	if _, err := CompareImages(a, b, CompareOptions{}); err == nil {
		t.Error("differing bounds should be an error")
	}
}
