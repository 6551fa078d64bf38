// Package surface defines the drawing-surface boundary of the chart core.
// Renderers emit draw calls in pixel coordinates they have already computed;
// implementations own fonts, pixel buffers and output encoding.
package surface

// Surface is the capability charts draw against. Coordinates are pixels with
// the origin at the top-left corner and y increasing downward.
type Surface interface {
	// DrawRect fills the axis-aligned rectangle with the given color.
	DrawRect(x, y, width, height float64, c Color)

	// DrawLine strokes a segment with the given stroke width.
	DrawLine(x1, y1, x2, y2, strokeWidth float64, c Color)

	// DrawCircle draws a circle centered at (x, y). A strokeWidth of zero
	// fills the circle; a positive strokeWidth draws only the outline.
	DrawCircle(x, y, radius float64, c Color, strokeWidth float64)

	// DrawText draws text centered on (x, y) at the given size hint in
	// pixels, rotated counterclockwise by rotationDegrees.
	DrawText(text string, x, y float64, c Color, sizeHint float64, rotationDegrees float64)

	// MeasureText reports the rendered extent of text at the given size
	// hint, before any rotation.
	MeasureText(text string, sizeHint float64) (width, height float64)
}
