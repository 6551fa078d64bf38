package main

import (
	"fmt"
	"os"

	"github.com/brianbland/statcharts/pkg/analysis"
	"github.com/brianbland/statcharts/pkg/config"
	"github.com/brianbland/statcharts/pkg/dataset"
	"github.com/brianbland/statcharts/pkg/export"
	"github.com/brianbland/statcharts/pkg/render"
	"github.com/brianbland/statcharts/pkg/samples"
	"github.com/brianbland/statcharts/pkg/surface"
)

func main() {
	// Parse configuration
	parser := config.NewParser()
	cfg, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.ShowHelp {
		return
	}

	printConfigSummary(*cfg)

	// Generate sample datasets
	generator := samples.NewGenerator(cfg.Seed)
	groups, err := generator.MeasurementGroups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate measurement groups: %v\n", err)
		os.Exit(1)
	}
	points, err := generator.CorrelatedPoints()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate point series: %v\n", err)
		os.Exit(1)
	}

	var generated []string

	// Render PNG charts
	if cfg.Format == "png" || cfg.Format == "both" {
		files, err := renderPNGCharts(*cfg, groups, points)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		generated = append(generated, files...)
	}

	// Render interactive HTML charts
	if cfg.Format == "html" || cfg.Format == "both" {
		files, err := renderHTMLCharts(*cfg, groups, points)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		generated = append(generated, files...)
	}

	// Print descriptive statistics
	if err := printAnalysis(os.Stdout, cfg.BestFitLines, groups, points); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nChart files generated:\n")
	for _, filename := range generated {
		fmt.Printf("  - %s\n", filename)
	}
}

// printConfigSummary prints the configuration being used
func printConfigSummary(cfg config.App) {
	fmt.Printf("Rendering statistical charts with configuration:\n")
	fmt.Printf("  Canvas: %dx%d\n", cfg.Width, cfg.Height)
	fmt.Printf("  Output Prefix: %s\n", cfg.OutputPrefix)
	fmt.Printf("  Format: %s\n", cfg.Format)
	fmt.Printf("  Best-Fit Lines: %t\n", cfg.BestFitLines)
	fmt.Printf("  Seed: %d\n", cfg.Seed)
	fmt.Printf("  Marker Density: %.4f\n", cfg.MarkerDensity)
	fmt.Println()
}

// renderPNGCharts draws the boxplot and scatterplot to PNG files.
func renderPNGCharts(cfg config.App, groups []*dataset.Series, points []*dataset.PointSeries) ([]string, error) {
	chartCfg := config.DefaultChart()
	chartCfg.Width = float64(cfg.Width)
	chartCfg.Height = float64(cfg.Height)
	chartCfg.MarkerDensity = cfg.MarkerDensity

	boxCfg := chartCfg
	boxCfg.Title = "Reaction Time by Test Group"
	boxplot, err := render.NewBoxplot(boxCfg, groups...)
	if err != nil {
		return nil, err
	}

	scatterCfg := chartCfg
	scatterCfg.Title = "Test Score vs Study Time"
	scatter, err := render.NewScatter(scatterCfg, points...)
	if err != nil {
		return nil, err
	}
	scatter.SetColors(
		surface.Color{R: 204, G: 85, B: 0},
		surface.Color{R: 0, G: 95, B: 190},
	)
	scatter.SetFitLines(cfg.BestFitLines)
	scatter.SetCombinedFitLine(cfg.BestFitLines)

	var files []string
	for _, chart := range []struct {
		name string
		draw func(surface.Surface) error
	}{
		{cfg.OutputPrefix + "_boxplot.png", boxplot.Render},
		{cfg.OutputPrefix + "_scatter.png", scatter.Render},
	} {
		raster, err := surface.NewRaster(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		if err := chart.draw(raster); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", chart.name, err)
		}
		f, err := os.Create(chart.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", chart.name, err)
		}
		if err := raster.SavePNG(f); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to close %s: %w", chart.name, err)
		}
		files = append(files, chart.name)
	}
	return files, nil
}

// renderHTMLCharts writes the interactive versions of both charts.
func renderHTMLCharts(cfg config.App, groups []*dataset.Series, points []*dataset.PointSeries) ([]string, error) {
	generator := export.NewGenerator()

	boxFile := cfg.OutputPrefix + "_boxplot.html"
	if err := generator.GenerateBoxplot(boxFile, "Reaction Time by Test Group", groups...); err != nil {
		return nil, err
	}

	scatterFile := cfg.OutputPrefix + "_scatter.html"
	if err := generator.GenerateScatter(scatterFile, "Test Score vs Study Time", points...); err != nil {
		return nil, err
	}

	return []string{boxFile, scatterFile}, nil
}

// printAnalysis prints summaries for every series and, when fit lines are
// enabled, the regression coefficients.
func printAnalysis(w *os.File, withFits bool, groups []*dataset.Series, points []*dataset.PointSeries) error {
	summaries := make([]analysis.Summary, len(groups))
	for i, series := range groups {
		summary, err := analysis.Summarize(series)
		if err != nil {
			return err
		}
		summaries[i] = summary
	}
	analysis.WriteSummaries(w, summaries)

	if !withFits {
		return nil
	}

	fits := make([]analysis.Fit, len(points))
	for i, series := range points {
		fit, err := analysis.FitPoints(series)
		if err != nil {
			return err
		}
		fits[i] = fit
	}
	analysis.WriteFits(w, fits)
	return nil
}
