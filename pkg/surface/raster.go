package surface

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Raster is a Surface backed by go-chart's PNG renderer. It owns the pixel
// buffer and the default font; charts drawn onto it are encoded with SavePNG.
type Raster struct {
	renderer chart.Renderer
	width    int
	height   int
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a width x height pixel canvas.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster surface: invalid canvas size %dx%d", width, height)
	}

	renderer, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create PNG renderer: %w", err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load default font: %w", err)
	}
	renderer.SetFont(font)
	renderer.SetDPI(chart.DefaultDPI)

	return &Raster{renderer: renderer, width: width, height: height}, nil
}

// Width returns the canvas width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the canvas height in pixels.
func (r *Raster) Height() int { return r.height }

func (r *Raster) DrawRect(x, y, width, height float64, c Color) {
	r.renderer.SetFillColor(toDrawingColor(c))
	r.renderer.MoveTo(int(math.Round(x)), int(math.Round(y)))
	r.renderer.LineTo(int(math.Round(x+width)), int(math.Round(y)))
	r.renderer.LineTo(int(math.Round(x+width)), int(math.Round(y+height)))
	r.renderer.LineTo(int(math.Round(x)), int(math.Round(y+height)))
	r.renderer.Close()
	r.renderer.Fill()
}

func (r *Raster) DrawLine(x1, y1, x2, y2, strokeWidth float64, c Color) {
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	r.renderer.SetStrokeColor(toDrawingColor(c))
	r.renderer.SetStrokeWidth(strokeWidth)
	r.renderer.MoveTo(int(math.Round(x1)), int(math.Round(y1)))
	r.renderer.LineTo(int(math.Round(x2)), int(math.Round(y2)))
	r.renderer.Stroke()
}

func (r *Raster) DrawCircle(x, y, radius float64, c Color, strokeWidth float64) {
	if strokeWidth > 0 {
		r.renderer.SetStrokeColor(toDrawingColor(c))
		r.renderer.SetStrokeWidth(strokeWidth)
		r.renderer.Circle(radius, int(math.Round(x)), int(math.Round(y)))
		r.renderer.Stroke()
		return
	}
	r.renderer.SetFillColor(toDrawingColor(c))
	r.renderer.Circle(radius, int(math.Round(x)), int(math.Round(y)))
	r.renderer.Fill()
}

func (r *Raster) DrawText(text string, x, y float64, c Color, sizeHint, rotationDegrees float64) {
	if text == "" {
		return
	}
	r.renderer.SetFontColor(toDrawingColor(c))
	r.renderer.SetFontSize(pixelsToPoints(sizeHint))

	box := r.renderer.MeasureText(text)
	if rotationDegrees != 0 {
		r.renderer.SetTextRotation(-rotationDegrees * math.Pi / 180)
		defer r.renderer.ClearTextRotation()
	}

	// go-chart anchors text at the baseline-left corner; shift to center.
	r.renderer.Text(text,
		int(math.Round(x-float64(box.Width())/2)),
		int(math.Round(y+float64(box.Height())/2)))
}

func (r *Raster) MeasureText(text string, sizeHint float64) (width, height float64) {
	r.renderer.SetFontSize(pixelsToPoints(sizeHint))
	box := r.renderer.MeasureText(text)
	return float64(box.Width()), float64(box.Height())
}

// SavePNG encodes the canvas as PNG.
func (r *Raster) SavePNG(w io.Writer) error {
	if err := r.renderer.Save(w); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

func pixelsToPoints(pixels float64) float64 {
	return pixels * 72.0 / chart.DefaultDPI
}

func toDrawingColor(c Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
