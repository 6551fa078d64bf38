package surface

import (
	"errors"
	"fmt"
)

// ErrInvalidColor indicates a color with components outside [0, 255].
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// White is the default chart background.
var White = Color{255, 255, 255}

// RGB validates the components and returns the corresponding color.
func RGB(r, g, b int) (Color, error) {
	for _, component := range []int{r, g, b} {
		if component < 0 || component > 255 {
			return Color{}, fmt.Errorf("component %d outside [0, 255]: %w", component, ErrInvalidColor)
		}
	}
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// Complement returns the channel-wise complement of c.
func Complement(c Color) Color {
	return Color{255 - c.R, 255 - c.G, 255 - c.B}
}

// Darken halves every channel, yielding the companion color boxplots use for
// borders, medians and whiskers.
func Darken(c Color) Color {
	return Color{c.R / 2, c.G / 2, c.B / 2}
}
