// Package render draws boxplots and scatterplots onto a drawing surface.
// Every chart follows the same discipline: all statistics, geometry and tick
// plans are computed before the first draw call, so a chart that fails to
// render leaves the surface untouched.
package render

import (
	"errors"
	"fmt"

	"github.com/brianbland/statcharts/pkg/axis"
	"github.com/brianbland/statcharts/pkg/config"
	"github.com/brianbland/statcharts/pkg/geometry"
	"github.com/brianbland/statcharts/pkg/surface"
)

var (
	// ErrNoSeries indicates a chart constructed without any data series.
	ErrNoSeries = errors.New("chart has no series")

	// ErrInvalidDimension indicates a scatterplot constructed from a point
	// series that is not exactly two-dimensional.
	ErrInvalidDimension = errors.New("scatterplots take 2-dimensional data")
)

// content is what a concrete chart kind contributes to the shared render
// pass: its data-space axis ranges and a fully planned set of draw commands.
type content interface {
	ranges() (x, y geometry.AxisRange, err error)
	plan(g geometry.Geometry) (func(surface.Surface), error)
}

// chartBase carries the state shared by all chart kinds: the styling options
// and the lazily computed geometry. The geometry is derived on first render
// and reused until the chart is moved or resized.
type chartBase struct {
	cfg config.Chart
	geo *geometry.Geometry
}

// Config returns the chart's styling options.
func (b *chartBase) Config() config.Chart { return b.cfg }

// SetTitle replaces the chart title.
func (b *chartBase) SetTitle(title string) { b.cfg.Title = title }

// Resize moves the chart frame and discards the cached geometry.
func (b *chartBase) Resize(x, y, width, height float64) {
	b.cfg.X, b.cfg.Y = x, y
	b.cfg.Width, b.cfg.Height = width, height
	b.geo = nil
}

// Geometry returns the chart's pixel-space layout, computing it on first use.
func (b *chartBase) geometryFor(c content) (geometry.Geometry, error) {
	if b.geo != nil {
		return *b.geo, nil
	}

	xr, yr, err := c.ranges()
	if err != nil {
		return geometry.Geometry{}, err
	}

	frame := geometry.Rect{X: b.cfg.X, Y: b.cfg.Y, Width: b.cfg.Width, Height: b.cfg.Height}
	g, err := geometry.Compute(frame, b.cfg.BorderWidth, b.cfg.GraphSize, xr, yr)
	if err != nil {
		return geometry.Geometry{}, err
	}

	b.geo = &g
	return g, nil
}

// render runs the shared pipeline: validate, lay out, plan, then draw.
func (b *chartBase) render(s surface.Surface, c content) error {
	if err := b.cfg.Validate(); err != nil {
		return fmt.Errorf("chart options: %w", err)
	}

	g, err := b.geometryFor(c)
	if err != nil {
		return err
	}

	xTicks, yTicks, err := planTicks(g, b.cfg.MarkerDensity)
	if err != nil {
		return err
	}

	draw, err := c.plan(g)
	if err != nil {
		return err
	}

	drawFrame(s, b.cfg, g, xTicks, yTicks)
	draw(s)
	return nil
}

// planTicks plans both axes: categorical x axes get one tick per category,
// numeric axes get nice-number major and minor ticks.
func planTicks(g geometry.Geometry, density float64) (xTicks, yTicks []axis.Tick, err error) {
	if g.X.IsCategorical() {
		xTicks = axis.PlanCategories(g)
	} else {
		xTicks, err = axis.PlanX(g, density)
		if err != nil {
			return nil, nil, fmt.Errorf("x axis: %w", err)
		}
	}

	yTicks, err = axis.PlanY(g, density)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}
	return xTicks, yTicks, nil
}

// seriesColor resolves the color for series i: an explicit palette entry if
// one was set, otherwise the complement of the background. A pure black
// fallback is replaced with a mid gray so marks stay distinct from axes.
func seriesColor(colors []surface.Color, i int, background surface.Color) surface.Color {
	if i < len(colors) {
		return colors[i]
	}
	c := surface.Complement(background)
	if c == (surface.Color{}) {
		return surface.Color{R: 100, G: 100, B: 100}
	}
	return c
}

// axisLabel combines a series label and its units into an axis caption.
func axisLabel(label, units string) string {
	if units == "" {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, units)
}
