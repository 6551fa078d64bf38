// Package config holds per-chart styling options and the command-line
// configuration of the statcharts binary.
package config

import (
	"flag"
	"fmt"

	"github.com/brianbland/statcharts/pkg/surface"
)

// Chart holds the layout and styling options for one chart. The zero value
// is not usable; start from DefaultChart.
type Chart struct {
	X, Y          float64 // top-left corner of the chart on the canvas
	Width, Height float64

	// GraphSize is the fraction of the effective area used for the plot
	// itself; the rest holds the title, labels and tick text.
	GraphSize   float64
	BorderWidth float64

	Background surface.Color
	// Primary is used for axes, ticks, title and labels. Nil defaults to
	// the complement of the background.
	Primary *surface.Color
	// Border defaults to the primary color when nil.
	Border *surface.Color

	Title          string
	ShowXAxisLabel bool
	ShowYAxisLabel bool
	XAxisLabel     string
	YAxisLabel     string

	// MarkerDensity is the approximate number of axis marks per pixel.
	MarkerDensity float64
}

// DefaultChart returns a chart configuration with a white background, a 75%
// plot area and roughly one axis mark per 125 pixels.
func DefaultChart() Chart {
	return Chart{
		GraphSize:      0.75,
		Background:     surface.White,
		ShowXAxisLabel: true,
		ShowYAxisLabel: true,
		MarkerDensity:  0.008,
	}
}

// PrimaryColor resolves the primary color, defaulting to the background's
// complement.
func (c Chart) PrimaryColor() surface.Color {
	if c.Primary != nil {
		return *c.Primary
	}
	return surface.Complement(c.Background)
}

// BorderColor resolves the border color, defaulting to the primary color.
func (c Chart) BorderColor() surface.Color {
	if c.Border != nil {
		return *c.Border
	}
	return c.PrimaryColor()
}

// Validate checks the option ranges that do not depend on data.
func (c Chart) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("chart size %gx%g must not be negative", c.Width, c.Height)
	}
	if c.GraphSize <= 0 || c.GraphSize > 1 {
		return fmt.Errorf("graph size fraction (%g) must be in (0, 1]", c.GraphSize)
	}
	if c.BorderWidth < 0 {
		return fmt.Errorf("border width (%g) must not be negative", c.BorderWidth)
	}
	if c.MarkerDensity <= 0 {
		return fmt.Errorf("axis marker density (%g) must be positive", c.MarkerDensity)
	}
	return nil
}

// App holds runtime configuration for the statcharts binary.
type App struct {
	Width         int
	Height        int
	OutputPrefix  string
	Format        string // png, html or both
	BestFitLines  bool
	Seed          int64
	MarkerDensity float64
	ShowHelp      bool
}

// DefaultApp returns the binary's default configuration.
func DefaultApp() App {
	return App{
		Width:         1200,
		Height:        800,
		OutputPrefix:  "statcharts",
		Format:        "png",
		BestFitLines:  false,
		Seed:          42,
		MarkerDensity: 0.008,
	}
}

// Parser handles command-line flag parsing for the binary.
type Parser struct {
	app     *App
	flagSet *flag.FlagSet
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	app := DefaultApp()
	return &Parser{
		app:     &app,
		flagSet: flag.NewFlagSet("statcharts", flag.ExitOnError),
	}
}

// RegisterFlags registers all command-line flags.
func (p *Parser) RegisterFlags() {
	p.flagSet.IntVar(&p.app.Width, "width", p.app.Width, "Canvas width in pixels")
	p.flagSet.IntVar(&p.app.Height, "height", p.app.Height, "Canvas height in pixels")
	p.flagSet.StringVar(&p.app.OutputPrefix, "out", p.app.OutputPrefix, "Prefix for generated chart files")
	p.flagSet.StringVar(&p.app.Format, "format", p.app.Format, "Output format: png, html or both")
	p.flagSet.BoolVar(&p.app.BestFitLines, "best-fit", p.app.BestFitLines, "Draw least-squares best-fit lines on scatterplots")
	p.flagSet.Int64Var(&p.app.Seed, "seed", p.app.Seed, "Seed for the sample data generator")
	p.flagSet.Float64Var(&p.app.MarkerDensity, "density", p.app.MarkerDensity, "Approximate axis marks per pixel")
	p.flagSet.BoolVar(&p.app.ShowHelp, "help", p.app.ShowHelp, "Show detailed help")
}

// Parse parses command-line arguments and returns the configuration.
func (p *Parser) Parse(args []string) (*App, error) {
	p.RegisterFlags()

	if err := p.flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if p.app.ShowHelp {
		p.ShowDetailedHelp()
		return p.app, nil
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return p.app, nil
}

// Validate validates the parsed configuration.
func (p *Parser) Validate() error {
	a := p.app

	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("canvas size (%dx%d) must be positive", a.Width, a.Height)
	}

	switch a.Format {
	case "png", "html", "both":
	default:
		return fmt.Errorf("invalid format %q, must be one of: png, html, both", a.Format)
	}

	if a.MarkerDensity <= 0 {
		return fmt.Errorf("marker density (%g) must be positive", a.MarkerDensity)
	}

	return nil
}

// ShowDetailedHelp displays usage information and examples.
func (p *Parser) ShowDetailedHelp() {
	fmt.Println("statcharts - statistical chart rendering demo")
	fmt.Println()
	fmt.Println("Renders boxplots and scatterplots of built-in sample datasets to PNG")
	fmt.Println("and/or interactive HTML files.")
	fmt.Println()
	fmt.Println("FLAGS:")
	p.flagSet.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  statcharts                          # PNG charts with defaults")
	fmt.Println("  statcharts -format=both -best-fit   # PNG + HTML with fit lines")
	fmt.Println("  statcharts -width=1600 -height=1000 -out=report")
}
