package render

import (
	"fmt"

	"github.com/brianbland/statcharts/pkg/config"
	"github.com/brianbland/statcharts/pkg/dataset"
	"github.com/brianbland/statcharts/pkg/geometry"
	"github.com/brianbland/statcharts/pkg/stats"
	"github.com/brianbland/statcharts/pkg/surface"
)

// Each series gets an equal slot along the x axis; the box fills this
// fraction of its slot, leaving the rest as padding.
const boxSlotFraction = 0.9

// Boxplot renders one five-number-summary box per series side by side on a
// categorical x axis. Whiskers extend to the Tukey fences and values beyond
// them are drawn as individual outlier circles.
type Boxplot struct {
	chartBase
	series    []*dataset.Series
	colors    []surface.Color
	yOverride *geometry.AxisRange
}

// boxStats is the fully computed summary for one box, derived before any
// drawing starts.
type boxStats struct {
	q1, q3, median float64
	lowerFence     float64
	upperFence     float64
	outliers       []float64
}

// NewBoxplot creates a boxplot of the given series. The y axis caption
// defaults to the first series' label and units when the options leave it
// empty.
func NewBoxplot(cfg config.Chart, series ...*dataset.Series) (*Boxplot, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("boxplot: %w", ErrNoSeries)
	}
	if cfg.YAxisLabel == "" {
		cfg.YAxisLabel = axisLabel(series[0].Label(), series[0].Units())
	}
	return &Boxplot{chartBase: chartBase{cfg: cfg}, series: series}, nil
}

// SetColors assigns per-series box colors. Series beyond the palette fall
// back to the complement of the background.
func (b *Boxplot) SetColors(colors ...surface.Color) { b.colors = colors }

// SetYRange overrides the automatic y axis range and discards the cached
// geometry.
func (b *Boxplot) SetYRange(min, max float64) {
	r := geometry.Numeric(min, max)
	b.yOverride = &r
	b.geo = nil
}

// Render draws the boxplot onto the surface. All summaries are computed up
// front; an error means nothing was drawn.
func (b *Boxplot) Render(s surface.Surface) error {
	return b.chartBase.render(s, b)
}

func (b *Boxplot) ranges() (x, y geometry.AxisRange, err error) {
	labels := make([]string, len(b.series))
	for i, series := range b.series {
		labels[i] = series.Label()
	}
	x = geometry.Categorical(labels...)

	if b.yOverride != nil {
		return x, *b.yOverride, nil
	}
	min, max := b.series[0].Min(), b.series[0].Max()
	for _, series := range b.series[1:] {
		if v := series.Min(); v < min {
			min = v
		}
		if v := series.Max(); v > max {
			max = v
		}
	}
	return x, geometry.Numeric(min, max), nil
}

func (b *Boxplot) plan(g geometry.Geometry) (func(surface.Surface), error) {
	summaries := make([]boxStats, len(b.series))
	for i, series := range b.series {
		summary, err := summarize(series)
		if err != nil {
			return nil, fmt.Errorf("boxplot %q: %w", series.Label(), err)
		}
		summaries[i] = summary
	}

	return func(s surface.Surface) {
		slot := g.SlotWidth()
		for i, st := range summaries {
			fill := seriesColor(b.colors, i, b.cfg.Background)
			line := surface.Darken(fill)

			boxX := g.Plot.X + (float64(i)+(1-boxSlotFraction)/2)*slot
			width := boxSlotFraction * slot
			centerX := boxX + width/2

			topY := g.YToPixel(st.q3)
			height := (st.q3 - st.q1) * g.YScale

			// Interquartile box: darker border with a 2px inset fill.
			s.DrawRect(boxX, topY, width, height, line)
			s.DrawRect(boxX+2, topY+2, width-4, height-4, fill)
			s.DrawLine(boxX, g.YToPixel(st.median), boxX+width-2, g.YToPixel(st.median), 3, line)

			// Whiskers and caps.
			lowerY := g.YToPixel(st.lowerFence)
			upperY := g.YToPixel(st.upperFence)
			s.DrawLine(centerX, g.YToPixel(st.q1), centerX, lowerY, 1, line)
			s.DrawLine(boxX+width/3, lowerY, boxX+2*width/3, lowerY, 1, line)
			s.DrawLine(centerX, topY, centerX, upperY, 1, line)
			s.DrawLine(boxX+width/3, upperY, boxX+2*width/3, upperY, 1, line)

			radius := 0.05 * width
			for _, outlier := range st.outliers {
				s.DrawCircle(centerX, g.YToPixel(outlier), radius, fill, 0)
				s.DrawCircle(centerX, g.YToPixel(outlier), radius, line, 1)
			}
		}
	}, nil
}

// summarize computes the five-number summary and outliers for one series.
func summarize(series *dataset.Series) (boxStats, error) {
	values := series.Values()

	q1, err := stats.Quartile(values, stats.FirstQuartile)
	if err != nil {
		return boxStats{}, err
	}
	q3, err := stats.Quartile(values, stats.ThirdQuartile)
	if err != nil {
		return boxStats{}, err
	}

	lower, upper, err := stats.TukeyFences(values, q1, q3, q3-q1)
	if err != nil {
		return boxStats{}, err
	}

	return boxStats{
		q1:         q1,
		q3:         q3,
		median:     series.Median(),
		lowerFence: lower,
		upperFence: upper,
		outliers:   stats.Outliers(values, lower, upper),
	}, nil
}
