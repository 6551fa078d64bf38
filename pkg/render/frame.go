package render

import (
	"github.com/brianbland/statcharts/pkg/axis"
	"github.com/brianbland/statcharts/pkg/config"
	"github.com/brianbland/statcharts/pkg/geometry"
	"github.com/brianbland/statcharts/pkg/surface"
)

// Font sizes are fractions of the vertical margin between the effective area
// and the plot, so text scales with the chart instead of the canvas.
const (
	titleFontFraction = 0.8
	labelFontFraction = 0.5
	tickFontFraction  = 0.35
)

// drawFrame draws the chrome shared by every chart kind: border, background,
// title, axis baselines, tick marks and labels, and the axis captions.
func drawFrame(s surface.Surface, cfg config.Chart, g geometry.Geometry, xTicks, yTicks []axis.Tick) {
	primary := cfg.PrimaryColor()

	if cfg.BorderWidth > 0 {
		s.DrawRect(g.Frame.X, g.Frame.Y, g.Frame.Width, g.Frame.Height, cfg.BorderColor())
	}
	s.DrawRect(g.Effective.X, g.Effective.Y, g.Effective.Width, g.Effective.Height, cfg.Background)

	vMargin := (g.Effective.Height - g.Plot.Height) / 2
	hMargin := (g.Effective.Width - g.Plot.Width) / 2

	if cfg.Title != "" {
		s.DrawText(cfg.Title,
			g.Effective.X+g.Effective.Width/2, g.Effective.Y+vMargin/2,
			primary, titleFontFraction*vMargin, 0)
	}

	bottom := g.Plot.Y + g.Plot.Height
	s.DrawLine(g.Plot.X, bottom, g.Plot.X+g.Plot.Width, bottom, 1, primary)
	s.DrawLine(g.Plot.X, g.Plot.Y, g.Plot.X, bottom, 1, primary)

	markLength := 0.005 * (g.Plot.Width + g.Plot.Height)
	tickFont := tickFontFraction * vMargin

	// Tick labels sit a third of the margin outside the plot edge; mark
	// lines are centered on the axis.
	xLabelRow := bottom + vMargin/3
	for _, t := range xTicks {
		if t.Minor {
			s.DrawLine(t.Pos, bottom-markLength/2, t.Pos, bottom+markLength/2, 1, primary)
			continue
		}
		// Categorical axes have no mark lines, only the category names.
		if !g.X.IsCategorical() {
			s.DrawLine(t.Pos, bottom-markLength, t.Pos, bottom+markLength, 1, primary)
		}
		s.DrawText(t.Label, t.Pos, xLabelRow, primary, tickFont, 0)
	}

	yLabelColumn := g.Plot.X - hMargin/3
	for _, t := range yTicks {
		if t.Minor {
			s.DrawLine(g.Plot.X-markLength/2, t.Pos, g.Plot.X+markLength/2, t.Pos, 1, primary)
			continue
		}
		s.DrawLine(g.Plot.X-markLength, t.Pos, g.Plot.X+markLength, t.Pos, 1, primary)
		s.DrawText(t.Label, yLabelColumn, t.Pos, primary, tickFont, 0)
	}

	if cfg.ShowXAxisLabel && cfg.XAxisLabel != "" {
		s.DrawText(cfg.XAxisLabel,
			g.Plot.X+g.Plot.Width/2, bottom+0.7*vMargin,
			primary, labelFontFraction*vMargin, 0)
	}
	if cfg.ShowYAxisLabel && cfg.YAxisLabel != "" {
		s.DrawText(cfg.YAxisLabel,
			g.Plot.X-0.7*hMargin, g.Plot.Y+g.Plot.Height/2,
			primary, labelFontFraction*vMargin, 90)
	}
}
