package geometry_test

import (
	"errors"
	"math"
	"testing"

	"github.com/brianbland/statcharts/pkg/geometry"
)

func TestComputeLayout(t *testing.T) {
	g, err := geometry.Compute(
		geometry.Rect{X: 10, Y: 20, Width: 420, Height: 320},
		10, 0.75,
		geometry.Numeric(0, 100), geometry.Numeric(-50, 50))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if g.Effective.X != 20 || g.Effective.Y != 30 {
		t.Errorf("Unexpected effective origin: %+v", g.Effective)
	}
	if g.Effective.Width != 400 || g.Effective.Height != 300 {
		t.Errorf("Unexpected effective size: %+v", g.Effective)
	}
	if g.Plot.Width != 300 || g.Plot.Height != 225 {
		t.Errorf("Unexpected plot size: %+v", g.Plot)
	}

	// The plot is centered within the effective area.
	if g.Plot.X != g.Effective.X+50 || g.Plot.Y != g.Effective.Y+37.5 {
		t.Errorf("Plot not centered: %+v", g.Plot)
	}
}

func TestPixelMappingRoundTrip(t *testing.T) {
	g, err := geometry.Compute(
		geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300},
		0, 0.8,
		geometry.Numeric(-10, 30), geometry.Numeric(5, 25))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	for _, v := range []float64{-10, -3.25, 0, 7.5, 30} {
		back := g.XFromPixel(g.XToPixel(v))
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("X round trip of %v: got %v", v, back)
		}
	}
	for _, v := range []float64{5, 9.9, 17, 25} {
		back := g.YFromPixel(g.YToPixel(v))
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("Y round trip of %v: got %v", v, back)
		}
	}
}

func TestAxisEndpointsMapToPlotEdges(t *testing.T) {
	g, err := geometry.Compute(
		geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300},
		0, 0.5,
		geometry.Numeric(2, 12), geometry.Numeric(-4, 4))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if got := g.XToPixel(2); math.Abs(got-g.Plot.X) > 1e-9 {
		t.Errorf("X min should map to left edge %v, got %v", g.Plot.X, got)
	}
	if got := g.XToPixel(12); math.Abs(got-(g.Plot.X+g.Plot.Width)) > 1e-9 {
		t.Errorf("X max should map to right edge, got %v", got)
	}
	if got := g.YToPixel(-4); math.Abs(got-(g.Plot.Y+g.Plot.Height)) > 1e-9 {
		t.Errorf("Y min should map to bottom edge, got %v", got)
	}
	if got := g.YToPixel(4); math.Abs(got-g.Plot.Y) > 1e-9 {
		t.Errorf("Y max should map to top edge, got %v", got)
	}
}

func TestComputeRejectsEmptyPixelRect(t *testing.T) {
	_, err := geometry.Compute(
		geometry.Rect{Width: 0, Height: 300},
		0, 0.75,
		geometry.Numeric(0, 1), geometry.Numeric(0, 1))
	if !errors.Is(err, geometry.ErrDegenerateRange) {
		t.Errorf("Expected ErrDegenerateRange, got %v", err)
	}
}

func TestComputeRejectsZeroSpanAxis(t *testing.T) {
	_, err := geometry.Compute(
		geometry.Rect{Width: 400, Height: 300},
		0, 0.75,
		geometry.Numeric(5, 5), geometry.Numeric(0, 1))
	if !errors.Is(err, geometry.ErrDegenerateRange) {
		t.Errorf("Expected ErrDegenerateRange for zero-span x, got %v", err)
	}

	_, err = geometry.Compute(
		geometry.Rect{Width: 400, Height: 300},
		0, 0.75,
		geometry.Numeric(0, 1), geometry.Numeric(7, 7))
	if !errors.Is(err, geometry.ErrDegenerateRange) {
		t.Errorf("Expected ErrDegenerateRange for zero-span y, got %v", err)
	}
}

func TestComputeRejectsOversizedBorder(t *testing.T) {
	_, err := geometry.Compute(
		geometry.Rect{Width: 100, Height: 100},
		60, 0.75,
		geometry.Numeric(0, 1), geometry.Numeric(0, 1))
	if !errors.Is(err, geometry.ErrDegenerateRange) {
		t.Errorf("Expected ErrDegenerateRange, got %v", err)
	}
}

func TestCategoryCenters(t *testing.T) {
	g, err := geometry.Compute(
		geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300},
		0, 0.75,
		geometry.Categorical("a", "b", "c", "d"), geometry.Numeric(0, 1))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	slot := g.SlotWidth()
	if math.Abs(slot-g.Plot.Width/4) > 1e-9 {
		t.Errorf("Expected slot width %v, got %v", g.Plot.Width/4, slot)
	}
	for i := 0; i < 4; i++ {
		expected := g.Plot.X + (float64(i)+0.5)*slot
		if got := g.CategoryCenter(i); math.Abs(got-expected) > 1e-9 {
			t.Errorf("Category %d center: expected %v, got %v", i, expected, got)
		}
	}
}

func TestNegativeYValuesMapBelowOrigin(t *testing.T) {
	g, err := geometry.Compute(
		geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300},
		0, 1,
		geometry.Numeric(0, 10), geometry.Numeric(-5, 5))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	zero := g.YToPixel(0)
	if g.YToPixel(-1) <= zero {
		t.Errorf("Negative values must land below zero: y(-1)=%v, y(0)=%v", g.YToPixel(-1), zero)
	}
	if g.YToPixel(1) >= zero {
		t.Errorf("Positive values must land above zero: y(1)=%v, y(0)=%v", g.YToPixel(1), zero)
	}
}
