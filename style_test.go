package lcdsvg

import (
	"errors"
	"testing"
)

func TestStylePresets(t *testing.T) {
	for _, tt := range []struct {
		name  string
		style Style
	}{
		{"default", DefaultStyle()},
		{"green", GreenStyle()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.style.Validate(); err != nil {
				t.Errorf("preset %s fails validation: %v", tt.name, err)
			}
		})
	}

	// Presets share geometry and differ only in colors
	d, g := DefaultStyle(), GreenStyle()
	d.Background, d.Frame, d.PixelOn, d.PixelOff = "", "", "", ""
	g.Background, g.Frame, g.PixelOn, g.PixelOff = "", "", "", ""
	if d != g {
		t.Errorf("preset geometry differs: %+v vs %+v", d, g)
	}
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Style)
		wantErr bool
	}{
		{"valid_default", func(s *Style) {}, false},
		{"zero_geometry", func(s *Style) {
			s.BorderRadius, s.Padding, s.PixelSize = 0, 0, 0
			s.PixelGap, s.CharGap, s.RowGap, s.FrameWidth = 0, 0, 0, 0
		}, false},
		{"negative_padding", func(s *Style) { s.Padding = -1 }, true},
		{"negative_pixel_size", func(s *Style) { s.PixelSize = -3 }, true},
		{"negative_frame_width", func(s *Style) { s.FrameWidth = -8 }, true},
		{"empty_color", func(s *Style) { s.Background = "" }, true},
		{"bad_hex_color", func(s *Style) { s.PixelOn = "#zzzzzz" }, true},
		{"truncated_hex_color", func(s *Style) { s.Frame = "#12345" }, true},
		{"short_hex_color", func(s *Style) { s.Frame = "#abc" }, false},
		{"css_color_name", func(s *Style) { s.Background = "rebeccapurple" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStyle) {
					t.Errorf("Validate() = %v, want ErrInvalidStyle", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
