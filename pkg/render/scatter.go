package render

import (
	"fmt"
	"math"

	"github.com/brianbland/statcharts/pkg/config"
	"github.com/brianbland/statcharts/pkg/dataset"
	"github.com/brianbland/statcharts/pkg/geometry"
	"github.com/brianbland/statcharts/pkg/stats"
	"github.com/brianbland/statcharts/pkg/surface"
)

// Default point radius as a fraction of the plot's combined dimensions.
const pointRadiusFraction = 0.007

// Scatter renders one or more point series on a numeric x/y plane, with
// optional per-series least-squares fit lines and an optional combined fit
// over all series.
type Scatter struct {
	chartBase
	series      []*dataset.PointSeries
	colors      []surface.Color
	pointSizes  []float64
	fitLines    bool
	combinedFit bool
	xOverride   *geometry.AxisRange
	yOverride   *geometry.AxisRange
}

// fitLine is a planned regression line in data space, clipped to the x
// domain it was fitted over.
type fitLine struct {
	slope, intercept float64
	xMin, xMax       float64
	color            surface.Color
	width            float64
}

// NewScatter creates a scatterplot of the given point series. Every series
// must be exactly two-dimensional: dimension 0 supplies x and dimension 1
// supplies y. Axis captions default to the first series' dimension labels
// when the options leave them empty.
func NewScatter(cfg config.Chart, series ...*dataset.PointSeries) (*Scatter, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("scatterplot: %w", ErrNoSeries)
	}
	for _, p := range series {
		if p.NumDimensions() != 2 {
			return nil, fmt.Errorf("scatterplot %q has %d dimensions: %w",
				p.Title(), p.NumDimensions(), ErrInvalidDimension)
		}
	}
	if cfg.XAxisLabel == "" {
		cfg.XAxisLabel = axisLabel(series[0].Dim(0).Label(), series[0].Dim(0).Units())
	}
	if cfg.YAxisLabel == "" {
		cfg.YAxisLabel = axisLabel(series[0].Dim(1).Label(), series[0].Dim(1).Units())
	}
	return &Scatter{chartBase: chartBase{cfg: cfg}, series: series}, nil
}

// SetColors assigns per-series point colors.
func (sc *Scatter) SetColors(colors ...surface.Color) { sc.colors = colors }

// SetPointSizes assigns per-series point radii in pixels. Series beyond the
// list keep the default radius derived from the plot size.
func (sc *Scatter) SetPointSizes(sizes ...float64) { sc.pointSizes = sizes }

// SetFitLines toggles a least-squares fit line per series.
func (sc *Scatter) SetFitLines(enabled bool) { sc.fitLines = enabled }

// SetCombinedFitLine toggles a single fit over the union of all series,
// drawn in the chart's primary color.
func (sc *Scatter) SetCombinedFitLine(enabled bool) { sc.combinedFit = enabled }

// SetXRange overrides the automatic x axis range and discards the cached
// geometry.
func (sc *Scatter) SetXRange(min, max float64) {
	r := geometry.Numeric(min, max)
	sc.xOverride = &r
	sc.geo = nil
}

// SetYRange overrides the automatic y axis range and discards the cached
// geometry.
func (sc *Scatter) SetYRange(min, max float64) {
	r := geometry.Numeric(min, max)
	sc.yOverride = &r
	sc.geo = nil
}

// Render draws the scatterplot onto the surface. Regressions are fitted
// before any drawing starts; an error means nothing was drawn.
func (sc *Scatter) Render(s surface.Surface) error {
	return sc.chartBase.render(s, sc)
}

func (sc *Scatter) ranges() (x, y geometry.AxisRange, err error) {
	x = sc.dimensionRange(0)
	y = sc.dimensionRange(1)
	if sc.xOverride != nil {
		x = *sc.xOverride
	}
	if sc.yOverride != nil {
		y = *sc.yOverride
	}
	return x, y, nil
}

// dimensionRange spans dimension d across every series.
func (sc *Scatter) dimensionRange(d int) geometry.AxisRange {
	min, max := sc.series[0].Dim(d).Min(), sc.series[0].Dim(d).Max()
	for _, series := range sc.series[1:] {
		if v := series.Dim(d).Min(); v < min {
			min = v
		}
		if v := series.Dim(d).Max(); v > max {
			max = v
		}
	}
	return geometry.Numeric(min, max)
}

func (sc *Scatter) plan(g geometry.Geometry) (func(surface.Surface), error) {
	fits, err := sc.planFits(g)
	if err != nil {
		return nil, err
	}

	defaultRadius := pointRadiusFraction * (g.Plot.Width + g.Plot.Height)

	return func(s surface.Surface) {
		for i, series := range sc.series {
			color := seriesColor(sc.colors, i, sc.cfg.Background)
			radius := defaultRadius
			if i < len(sc.pointSizes) && sc.pointSizes[i] > 0 {
				radius = sc.pointSizes[i]
			}
			for p := 0; p < series.Len(); p++ {
				x := series.Dim(0).Value(p)
				y := series.Dim(1).Value(p)
				s.DrawCircle(g.XToPixel(x), g.YToPixel(y), radius, color, 0)
			}
		}
		for _, fit := range fits {
			s.DrawLine(
				g.XToPixel(fit.xMin), g.YToPixel(fit.slope*fit.xMin+fit.intercept),
				g.XToPixel(fit.xMax), g.YToPixel(fit.slope*fit.xMax+fit.intercept),
				fit.width, fit.color)
		}
	}, nil
}

// planFits computes every requested regression. Per-series lines span their
// own series' x domain; the combined line spans the union. Both are clipped
// to the visible axis range.
func (sc *Scatter) planFits(g geometry.Geometry) ([]fitLine, error) {
	var fits []fitLine

	if sc.fitLines {
		for i, series := range sc.series {
			slope, intercept, err := stats.LinearRegression(series.Dim(0).Values(), series.Dim(1).Values())
			if err != nil {
				return nil, fmt.Errorf("scatterplot %q: %w", series.Title(), err)
			}
			fits = append(fits, fitLine{
				slope:     slope,
				intercept: intercept,
				xMin:      math.Max(series.Dim(0).Min(), g.X.Min),
				xMax:      math.Min(series.Dim(0).Max(), g.X.Max),
				color:     surface.Darken(seriesColor(sc.colors, i, sc.cfg.Background)),
				width:     2,
			})
		}
	}

	if sc.combinedFit {
		var xs, ys []float64
		for _, series := range sc.series {
			xs = append(xs, series.Dim(0).Values()...)
			ys = append(ys, series.Dim(1).Values()...)
		}
		slope, intercept, err := stats.LinearRegression(xs, ys)
		if err != nil {
			return nil, fmt.Errorf("scatterplot combined fit: %w", err)
		}
		domain := sc.dimensionRange(0)
		fits = append(fits, fitLine{
			slope:     slope,
			intercept: intercept,
			xMin:      math.Max(domain.Min, g.X.Min),
			xMax:      math.Min(domain.Max, g.X.Max),
			color:     sc.cfg.PrimaryColor(),
			width:     2,
		})
	}

	return fits, nil
}
