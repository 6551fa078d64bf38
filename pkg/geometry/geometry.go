// Package geometry converts data-space ranges and a target pixel rectangle
// into an affine mapping between data values and pixel coordinates. The
// mapping is a pure function of its inputs; charts cache the result and
// recompute it only on resize or first draw.
package geometry

import (
	"errors"
	"fmt"
)

// ErrDegenerateRange indicates a numeric axis with max == min or a pixel
// rectangle with no area, neither of which admits a finite scale.
var ErrDegenerateRange = errors.New("degenerate range")

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// AxisRange describes one axis in data space: either a numeric [Min, Max]
// interval or an ordered list of categories. Exactly one mode is active.
type AxisRange struct {
	Min, Max   float64
	Categories []string
}

// Numeric returns a numeric axis range.
func Numeric(min, max float64) AxisRange {
	return AxisRange{Min: min, Max: max}
}

// Categorical returns a categorical axis range with the given ordered labels.
func Categorical(labels ...string) AxisRange {
	return AxisRange{Categories: labels}
}

// IsCategorical reports whether the axis is categorical.
func (a AxisRange) IsCategorical() bool { return len(a.Categories) > 0 }

// Span returns max - min for a numeric axis.
func (a AxisRange) Span() float64 { return a.Max - a.Min }

// Geometry is the derived pixel-space layout of one chart: the effective area
// inside the border, the plot rectangle, and the scales and origins mapping
// data values to pixels. It is owned by a single chart instance.
type Geometry struct {
	Frame     Rect // outer rectangle including the border
	Effective Rect // inside the border
	Plot      Rect // the plotting area, centered within Effective

	X AxisRange
	Y AxisRange

	XScale  float64 // pixels per x data unit; zero when X is categorical
	YScale  float64 // pixels per y data unit
	OriginX float64 // pixel x where data value 0 lands (numeric X only)
	OriginY float64 // pixel y where data value 0 lands
}

// Compute derives the geometry for a chart frame. graphSize is the fraction
// of the effective area used for plotting; the rest holds titles and labels.
// Y must be numeric. Fails with ErrDegenerateRange for empty pixel
// rectangles and zero-span numeric axes.
func Compute(frame Rect, borderWidth, graphSize float64, x, y AxisRange) (Geometry, error) {
	if frame.Width <= 0 || frame.Height <= 0 {
		return Geometry{}, fmt.Errorf("pixel rectangle %gx%g: %w", frame.Width, frame.Height, ErrDegenerateRange)
	}
	if graphSize <= 0 || graphSize > 1 {
		return Geometry{}, fmt.Errorf("graph size fraction %g outside (0, 1]", graphSize)
	}

	effective := Rect{
		X:      frame.X + borderWidth,
		Y:      frame.Y + borderWidth,
		Width:  frame.Width - 2*borderWidth,
		Height: frame.Height - 2*borderWidth,
	}
	if effective.Width <= 0 || effective.Height <= 0 {
		return Geometry{}, fmt.Errorf("border %g leaves no drawable area: %w", borderWidth, ErrDegenerateRange)
	}

	plot := Rect{
		Width:  graphSize * effective.Width,
		Height: graphSize * effective.Height,
	}
	plot.X = effective.X + (effective.Width-plot.Width)/2
	plot.Y = effective.Y + (effective.Height-plot.Height)/2

	g := Geometry{
		Frame:     frame,
		Effective: effective,
		Plot:      plot,
		X:         x,
		Y:         y,
	}

	if x.IsCategorical() {
		if len(x.Categories) == 0 {
			return Geometry{}, fmt.Errorf("categorical x axis with no categories: %w", ErrDegenerateRange)
		}
	} else {
		if x.Span() == 0 {
			return Geometry{}, fmt.Errorf("x axis [%g, %g]: %w", x.Min, x.Max, ErrDegenerateRange)
		}
		g.XScale = plot.Width / x.Span()
		g.OriginX = plot.X - g.XScale*x.Min
	}

	if y.IsCategorical() {
		return Geometry{}, fmt.Errorf("y axis must be numeric")
	}
	if y.Span() == 0 {
		return Geometry{}, fmt.Errorf("y axis [%g, %g]: %w", y.Min, y.Max, ErrDegenerateRange)
	}
	g.YScale = plot.Height / y.Span()
	g.OriginY = plot.Y + plot.Height + g.YScale*y.Min

	return g, nil
}

// XToPixel maps an x data value to its pixel column.
func (g Geometry) XToPixel(v float64) float64 { return g.OriginX + g.XScale*v }

// XFromPixel inverts XToPixel.
func (g Geometry) XFromPixel(px float64) float64 { return (px - g.OriginX) / g.XScale }

// YToPixel maps a y data value to its pixel row. Pixels grow downward while
// data grows upward, hence the subtraction.
func (g Geometry) YToPixel(v float64) float64 { return g.OriginY - g.YScale*v }

// YFromPixel inverts YToPixel.
func (g Geometry) YFromPixel(py float64) float64 { return (g.OriginY - py) / g.YScale }

// SlotWidth returns the pixel width of one categorical slot.
func (g Geometry) SlotWidth() float64 {
	return g.Plot.Width / float64(len(g.X.Categories))
}

// CategoryCenter returns the pixel x at the center of category slot i.
func (g Geometry) CategoryCenter(i int) float64 {
	return g.Plot.X + (float64(i)+0.5)*g.SlotWidth()
}
