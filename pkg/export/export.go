// Package export writes interactive HTML versions of charts using the
// go-echarts library. It mirrors the PNG renderer's statistics so the two
// outputs always agree on summaries and fits.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/brianbland/statcharts/pkg/analysis"
	"github.com/brianbland/statcharts/pkg/dataset"
)

// Generator handles HTML chart generation.
type Generator struct{}

// NewGenerator creates a new chart generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateBoxplot writes an HTML boxplot of the given series. Box values are
// the same five-number summaries the raster renderer draws.
func (g *Generator) GenerateBoxplot(filename, title string, series ...*dataset.Series) error {
	labels := make([]string, len(series))
	boxes := make([]opts.BoxPlotData, len(series))
	outliers := make([]opts.ScatterData, 0)

	for i, s := range series {
		summary, err := analysis.Summarize(s)
		if err != nil {
			return fmt.Errorf("failed to summarize %q: %w", s.Label(), err)
		}
		labels[i] = summary.Label
		boxes[i] = opts.BoxPlotData{
			Value: []float64{summary.LowerFence, summary.Q1, summary.Median, summary.Q3, summary.UpperFence},
		}
		for _, outlier := range summary.Outliers {
			outliers = append(outliers, opts.ScatterData{Value: []interface{}{summary.Label, outlier}})
		}
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1200px",
			Height: "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Five-number summaries with Tukey whiskers",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: axisName(series[0]),
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	box.SetXAxis(labels).AddSeries("Distribution", boxes)
	if len(outliers) > 0 {
		scatter := charts.NewScatter()
		scatter.AddSeries("Outliers", outliers)
		box.Overlap(scatter)
	}

	return renderToFile(box, filename)
}

// GenerateScatter writes an HTML scatterplot of the given point series, one
// echarts series per input.
func (g *Generator) GenerateScatter(filename, title string, series ...*dataset.PointSeries) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1200px",
			Height: "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: axisName(series[0].Dim(0)),
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: axisName(series[0].Dim(1)),
			Type: "value",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "10%",
		}),
	)

	for _, p := range series {
		points := make([]opts.ScatterData, p.Len())
		for i := 0; i < p.Len(); i++ {
			points[i] = opts.ScatterData{
				Value:      []interface{}{p.Dim(0).Value(i), p.Dim(1).Value(i)},
				SymbolSize: 8,
			}
		}
		scatter.AddSeries(p.Title(), points)
	}

	return renderToFile(scatter, filename)
}

type renderable interface {
	Render(w io.Writer) error
}

// renderToFile creates the output file and renders the chart into it.
func renderToFile(chart renderable, filename string) error {
	if !strings.HasSuffix(filename, ".html") {
		filename += ".html"
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", filename, err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func axisName(s *dataset.Series) string {
	if s.Units() == "" {
		return s.Label()
	}
	return fmt.Sprintf("%s (%s)", s.Label(), s.Units())
}
