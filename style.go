package lcdsvg

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jschwab/lcdsvg/internal/geometry"
	"github.com/jschwab/lcdsvg/internal/svg"
)

// Style is the immutable configuration of colors and geometry for one
// render. Colors are CSS color strings; geometry values are non-negative
// pixel units. The zero value is not useful; start from DefaultStyle or
// GreenStyle.
type Style struct {
	// Background is the display background color
	Background string
	// Frame is the outer frame color
	Frame string
	// PixelOn is the color of lit pixels
	PixelOn string
	// PixelOff is the color of unlit pixels
	PixelOff string

	// BorderRadius is the outer corner radius
	BorderRadius int
	// Padding is the space between frame and character grid
	Padding int
	// PixelSize is the side length of one glyph pixel
	PixelSize int
	// PixelGap is the spacing between pixels within a cell
	PixelGap int
	// CharGap is the spacing between character cells
	CharGap int
	// RowGap is the spacing between display rows
	RowGap int
	// FrameWidth is the thickness of the outer frame
	FrameWidth int
}

// DefaultStyle returns the standard display style, a lime backlight.
func DefaultStyle() Style {
	s := baseGeometry()
	s.Background = "#d8f245"
	s.Frame = "#000000"
	s.PixelOn = "#141f14"
	s.PixelOff = "#cde543"
	return s
}

// GreenStyle returns a classic green-backlight display style.
func GreenStyle() Style {
	s := baseGeometry()
	s.Background = "#ccffcc"
	s.Frame = "#000000"
	s.PixelOn = "#446644"
	s.PixelOff = "#bbeebb"
	return s
}

func baseGeometry() Style {
	return Style{
		BorderRadius: 12,
		Padding:      16,
		PixelSize:    3,
		PixelGap:     1,
		CharGap:      4,
		RowGap:       10,
		FrameWidth:   8,
	}
}

// Validate checks the style for negative geometry and malformed hex
// colors. Non-hex color strings (e.g. CSS color names) pass through
// unvalidated since the SVG consumer interprets them.
func (s Style) Validate() error {
	ints := []struct {
		name  string
		value int
	}{
		{"border radius", s.BorderRadius},
		{"padding", s.Padding},
		{"pixel size", s.PixelSize},
		{"pixel gap", s.PixelGap},
		{"char gap", s.CharGap},
		{"row gap", s.RowGap},
		{"frame width", s.FrameWidth},
	}
	for _, f := range ints {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is negative (%d)", ErrInvalidStyle, f.name, f.value)
		}
	}

	colors := []struct {
		name  string
		value string
	}{
		{"background", s.Background},
		{"frame", s.Frame},
		{"pixel on", s.PixelOn},
		{"pixel off", s.PixelOff},
	}
	for _, c := range colors {
		if c.value == "" {
			return fmt.Errorf("%w: %s color is empty", ErrInvalidStyle, c.name)
		}
		if strings.HasPrefix(c.value, "#") {
			if _, err := colorful.Hex(c.value); err != nil {
				return fmt.Errorf("%w: %s color %q: %v", ErrInvalidStyle, c.name, c.value, err)
			}
		}
	}
	return nil
}

func (s Style) geometry() geometry.Spec {
	return geometry.Spec{
		BorderRadius: s.BorderRadius,
		Padding:      s.Padding,
		PixelSize:    s.PixelSize,
		PixelGap:     s.PixelGap,
		CharGap:      s.CharGap,
		RowGap:       s.RowGap,
		FrameWidth:   s.FrameWidth,
	}
}

func (s Style) colors() svg.Colors {
	return svg.Colors{
		Background: s.Background,
		Frame:      s.Frame,
		PixelOn:    s.PixelOn,
		PixelOff:   s.PixelOff,
	}
}
