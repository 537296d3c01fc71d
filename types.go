package lcdsvg

import (
	"errors"

	"github.com/jschwab/lcdsvg/internal/debug"
	"github.com/jschwab/lcdsvg/internal/parser"
)

// Glyph cell dimensions in pixels.
const (
	// GlyphRows is the fixed glyph height
	GlyphRows = parser.GlyphRows
	// GlyphCols is the fixed glyph width
	GlyphCols = parser.GlyphCols
)

// Glyph is one character cell bitmap: 8 rows of 5 cells, each '0' or '1'.
type Glyph []string

// Font represents an immutable glyph table that can be safely shared
// across goroutines.
//
// Font data is loaded once and never modified, making it safe for
// concurrent use without locking.
type Font struct {
	// font is the internal parsed table (unexported for immutability)
	font *parser.Font

	// Name is the font name (e.g., "font5x8")
	Name string
}

// Glyph returns the bitmap for a rune, or false if not found.
// The returned slice must not be modified by the caller.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if f == nil {
		return nil, false
	}
	g, ok := f.font.Glyph(r)
	return Glyph(g), ok
}

// Lookup returns the bitmap for a rune, falling back to the space glyph
// when the rune is not in the table. It never fails for a loaded font.
func (f *Font) Lookup(r rune) Glyph {
	if f == nil {
		return nil
	}
	return Glyph(f.font.Lookup(r))
}

// Len returns the number of glyphs in the font.
func (f *Font) Len() int {
	if f == nil || f.font == nil {
		return 0
	}
	return len(f.font.Glyphs)
}

// Runes returns the font's character set in unspecified order.
func (f *Font) Runes() []rune {
	if f == nil || f.font == nil {
		return nil
	}
	runes := make([]rune, 0, len(f.font.Glyphs))
	for r := range f.font.Glyphs {
		runes = append(runes, r)
	}
	return runes
}

// Common errors returned by the lcdsvg package
var (
	// ErrUnknownFont is returned when a nil font is passed to Generate
	ErrUnknownFont = errors.New("unknown font")

	// ErrBadFontFormat is returned when a font resource has an invalid format
	ErrBadFontFormat = errors.New("bad font format")

	// ErrInvalidStyle is returned when a style fails validation
	ErrInvalidStyle = errors.New("invalid style")

	// ErrInvalidGrid is returned for non-positive display dimensions
	ErrInvalidGrid = errors.New("invalid grid dimensions")
)

// Option configures rendering behavior.
type Option func(*options)

type options struct {
	style  *Style
	custom map[int][]string
	debug  *debug.Session
}

func defaultOptions() *options {
	return &options{}
}

// WithStyle sets the display style for a render, overriding the default.
// The style is validated when rendering begins.
func WithStyle(s Style) Option {
	return func(opts *options) {
		opts.style = &s
	}
}

// WithCustomGlyphs supplies the custom glyph table for a render. Escape
// sequences like `\7` resolve against it by numeric code; codes absent
// from the table render as the space glyph. The table is read during the
// render call only and never retained.
func WithCustomGlyphs(glyphs map[int]Glyph) Option {
	return func(opts *options) {
		if len(glyphs) == 0 {
			return
		}
		custom := make(map[int][]string, len(glyphs))
		for code, g := range glyphs {
			custom[code] = g
		}
		opts.custom = custom
	}
}

// WithDebug attaches a debug session to a render. Events covering row
// scanning, escape resolution, geometry, and emission are sent to the
// session's sink. A nil session disables tracing.
func WithDebug(session *debug.Session) Option {
	return func(opts *options) {
		opts.debug = session
	}
}
