// Package samples generates the built-in demonstration datasets the
// statcharts binary renders: grouped measurement series for boxplots and
// correlated point clouds for scatterplots.
package samples

import (
	"fmt"
	"math/rand"

	"github.com/brianbland/statcharts/pkg/dataset"
)

// Generator handles sample dataset generation. All randomness flows from a
// single seeded source so the same seed reproduces the same charts.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a new sample generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// groupSpec describes one gaussian measurement group.
type groupSpec struct {
	label  string
	mean   float64
	stdDev float64
	size   int
	// outlierEvery injects one far value per this many samples; zero
	// disables injection.
	outlierEvery int
}

// MeasurementGroups generates labeled series of simulated reaction-time
// measurements, one per test group, suitable for a side-by-side boxplot.
func (g *Generator) MeasurementGroups() ([]*dataset.Series, error) {
	specs := []groupSpec{
		{label: "Control", mean: 310, stdDev: 28, size: 60, outlierEvery: 20},
		{label: "Caffeine", mean: 265, stdDev: 22, size: 60, outlierEvery: 25},
		{label: "Sleep Deprived", mean: 395, stdDev: 45, size: 60, outlierEvery: 15},
		{label: "Exercise", mean: 290, stdDev: 25, size: 60},
	}

	series := make([]*dataset.Series, len(specs))
	for i, spec := range specs {
		values := g.gaussianValues(spec)
		s, err := dataset.NewSeries(spec.label, "ms", values)
		if err != nil {
			return nil, fmt.Errorf("failed to build group %q: %w", spec.label, err)
		}
		series[i] = s
	}
	return series, nil
}

// CorrelatedPoints generates point series with a known linear relationship
// plus gaussian noise, suitable for a scatterplot with best-fit lines.
func (g *Generator) CorrelatedPoints() ([]*dataset.PointSeries, error) {
	type cloudSpec struct {
		title            string
		slope, intercept float64
		xMin, xMax       float64
		noise            float64
		size             int
	}

	specs := []cloudSpec{
		{title: "Morning Sessions", slope: 2.1, intercept: 40, xMin: 0, xMax: 60, noise: 18, size: 80},
		{title: "Evening Sessions", slope: 1.4, intercept: 75, xMin: 0, xMax: 60, noise: 24, size: 80},
	}

	series := make([]*dataset.PointSeries, len(specs))
	for i, spec := range specs {
		xs := make([]float64, spec.size)
		ys := make([]float64, spec.size)
		for j := range xs {
			x := spec.xMin + g.rng.Float64()*(spec.xMax-spec.xMin)
			xs[j] = x
			ys[j] = spec.slope*x + spec.intercept + g.rng.NormFloat64()*spec.noise
		}

		xDim, err := dataset.NewSeries("Study Time", "min", xs)
		if err != nil {
			return nil, fmt.Errorf("failed to build %q x dimension: %w", spec.title, err)
		}
		yDim, err := dataset.NewSeries("Score", "points", ys)
		if err != nil {
			return nil, fmt.Errorf("failed to build %q y dimension: %w", spec.title, err)
		}

		points, err := dataset.NewPointSeries(spec.title, xDim, yDim)
		if err != nil {
			return nil, fmt.Errorf("failed to build %q: %w", spec.title, err)
		}
		series[i] = points
	}
	return series, nil
}

// gaussianValues draws size values from the group's distribution, injecting
// the occasional outlier at several standard deviations out.
func (g *Generator) gaussianValues(spec groupSpec) []float64 {
	values := make([]float64, spec.size)
	for i := range values {
		values[i] = spec.mean + g.rng.NormFloat64()*spec.stdDev

		if spec.outlierEvery > 0 && (i+1)%spec.outlierEvery == 0 {
			direction := 1.0
			if g.rng.Float64() < 0.5 {
				direction = -1.0
			}
			values[i] = spec.mean + direction*(4+2*g.rng.Float64())*spec.stdDev
		}
	}
	return values
}
