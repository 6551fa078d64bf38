// Package axis plans tick marks and labels for chart axes. Numeric axes use
// a "nice number" rule so intervals are always 1, 2 or 5 times a power of
// ten; categorical axes get one labeled tick per category center.
package axis

import (
	"fmt"
	"math"
	"strconv"

	"github.com/brianbland/statcharts/pkg/geometry"
)

// labelSigFigs is the number of significant digits in tick labels.
const labelSigFigs = 2

// tickEpsilon absorbs floating-point drift when deciding whether a tick
// position still fits on the plot edge.
const tickEpsilon = 1e-6

// Tick is one planned axis mark. Pos is the absolute pixel coordinate along
// the axis: x for horizontal ticks, y for vertical ones. Minor ticks carry no
// label and are drawn at half length.
type Tick struct {
	Pos   float64
	Label string
	Minor bool
}

// NiceInterval rounds the raw interval down to the largest value of the form
// {1, 2, 5} x 10^k that does not exceed it.
func NiceInterval(raw float64) (float64, error) {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 0, fmt.Errorf("nice interval: raw interval %g must be positive and finite", raw)
	}

	power := math.Floor(math.Log10(raw))
	mantissa := raw / math.Pow(10, power)

	multiple := 1.0
	for _, candidate := range []float64{5, 2, 1} {
		if mantissa >= candidate {
			multiple = candidate
			break
		}
	}
	return multiple * math.Pow(10, power), nil
}

// SigFigs rounds x to the given number of significant digits. Zero stays
// zero.
func SigFigs(x float64, digits int) float64 {
	if x == 0 {
		return 0
	}
	shift := float64(digits-1) - math.Floor(math.Log10(math.Abs(x)))
	scale := math.Pow(10, shift)
	return math.Round(x*scale) / scale
}

// PlanX plans ticks for a numeric x axis: major ticks every nice interval
// starting at the axis minimum, with a half-interval minor tick between each
// pair, up to and including the plot's right edge.
func PlanX(g geometry.Geometry, density float64) ([]Tick, error) {
	return planNumeric(g.X, g.XScale, g.Plot.X, g.Plot.Width, +1, density)
}

// PlanY plans ticks for the numeric y axis, walking upward from the plot's
// bottom edge.
func PlanY(g geometry.Geometry, density float64) ([]Tick, error) {
	return planNumeric(g.Y, g.YScale, g.Plot.Y+g.Plot.Height, g.Plot.Height, -1, density)
}

// PlanCategories places one labeled tick at each category center. No minor
// ticks and no nice-number computation apply.
func PlanCategories(g geometry.Geometry) []Tick {
	ticks := make([]Tick, len(g.X.Categories))
	for i, label := range g.X.Categories {
		ticks[i] = Tick{Pos: g.CategoryCenter(i), Label: label}
	}
	return ticks
}

// planNumeric walks from the plot edge at the axis minimum toward the far
// edge. direction is +1 when pixel coordinates grow with data values (x) and
// -1 when they shrink (y).
func planNumeric(r geometry.AxisRange, scale, edge, plotDim, direction, density float64) ([]Tick, error) {
	approxMarks := int(math.Floor(density * plotDim))
	if approxMarks < 1 {
		approxMarks = 1
	}

	interval, err := NiceInterval(r.Span() / float64(approxMarks))
	if err != nil {
		return nil, err
	}
	spacing := scale * interval // pixels per major tick

	var ticks []Tick
	for n := 0; float64(n)*spacing <= plotDim+tickEpsilon; n++ {
		offset := float64(n) * spacing
		ticks = append(ticks, Tick{
			Pos:   edge + direction*offset,
			Label: formatValue(SigFigs(float64(n)*interval+r.Min, labelSigFigs)),
		})
		if half := offset + 0.5*spacing; half <= plotDim+tickEpsilon {
			ticks = append(ticks, Tick{Pos: edge + direction*half, Minor: true})
		}
	}
	return ticks, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
