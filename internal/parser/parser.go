// Package parser implements LCD font resource parsing.
//
// A font resource is a JSON document mapping single characters to 8x5
// glyph bitmaps. Two layouts are accepted: a named-font document with a
// "font_5x8" (or "font") object, and a flat character-to-glyph map. The
// named layout is preferred when present so that multi-font resource
// files keep working alongside single-font ones.
package parser

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

const (
	// GlyphRows is the fixed glyph height in pixels
	GlyphRows = 8
	// GlyphCols is the fixed glyph width in pixels
	GlyphCols = 5

	// maxResourceSize bounds font resource reads; a full 8-bit charset
	// is well under 64KiB
	maxResourceSize = 4 * 1024 * 1024
)

// Font is a parsed, immutable glyph table. The glyph map must not be
// mutated after parsing; it is shared by reference across renders.
type Font struct {
	// Name is the font name, set by loaders from the resource filename
	Name string
	// Glyphs maps characters to their 8x5 bitmaps
	Glyphs map[rune][]string
}

// Common errors returned while parsing a font resource.
var (
	// ErrEmptyResource is returned for an empty resource document
	ErrEmptyResource = errors.New("empty font resource")

	// ErrInvalidResource is returned when the resource is not a JSON object
	ErrInvalidResource = errors.New("font resource is not a JSON object")

	// ErrMissingSpace is returned when the resource has no space glyph,
	// which every font needs as the universal fallback
	ErrMissingSpace = errors.New("font resource missing space glyph")
)

// Glyph returns the bitmap for a rune, or false if not found.
// The returned slice must not be modified by the caller.
func (f *Font) Glyph(r rune) ([]string, bool) {
	if f == nil || f.Glyphs == nil {
		return nil, false
	}
	g, ok := f.Glyphs[r]
	return g, ok
}

// Lookup returns the bitmap for a rune, falling back to the space glyph
// when the rune is not in the table. It is total over any parsed font
// because parsing requires a space entry.
func (f *Font) Lookup(r rune) []string {
	if g, ok := f.Glyph(r); ok {
		return g
	}
	g, _ := f.Glyph(' ')
	return g
}

// Parse reads a font resource from r and returns the parsed table.
func Parse(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxResourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read font resource: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyResource
	}
	if len(data) > maxResourceSize {
		return nil, fmt.Errorf("font resource exceeds %d bytes", maxResourceSize)
	}
	return ParseBytes(data)
}

// ParseBytes parses a font resource held in memory.
func ParseBytes(data []byte) (*Font, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("font resource is not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, ErrInvalidResource
	}

	// Prefer the conventional named sub-key; fall back to a flat map
	table := doc.Get("font_5x8")
	if !table.Exists() {
		table = doc.Get("font")
	}
	if !table.Exists() {
		table = doc
	}
	if !table.IsObject() {
		return nil, ErrInvalidResource
	}

	glyphs := make(map[rune][]string)
	var parseErr error
	table.ForEach(func(key, value gjson.Result) bool {
		ch, err := singleRune(key.String())
		if err != nil {
			parseErr = err
			return false
		}
		glyph, err := parseGlyph(ch, value)
		if err != nil {
			parseErr = err
			return false
		}
		glyphs[ch] = glyph
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if _, ok := glyphs[' ']; !ok {
		return nil, ErrMissingSpace
	}

	return &Font{Glyphs: glyphs}, nil
}

// singleRune decodes a glyph key, which must be exactly one character.
func singleRune(key string) (rune, error) {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("invalid glyph key %q", key)
	}
	if size != len(key) {
		return 0, fmt.Errorf("glyph key %q is not a single character", key)
	}
	return r, nil
}

// parseGlyph validates one glyph entry: 8 rows of 5 '0'/'1' cells.
func parseGlyph(ch rune, value gjson.Result) ([]string, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("glyph %q is not an array", ch)
	}
	rows := value.Array()
	if len(rows) != GlyphRows {
		return nil, fmt.Errorf("glyph %q has %d rows, want %d", ch, len(rows), GlyphRows)
	}
	glyph := make([]string, GlyphRows)
	for i, row := range rows {
		if row.Type != gjson.String {
			return nil, fmt.Errorf("glyph %q row %d is not a string", ch, i)
		}
		s := row.String()
		if len(s) != GlyphCols {
			return nil, fmt.Errorf("glyph %q row %d has %d cells, want %d", ch, i, len(s), GlyphCols)
		}
		for j := 0; j < len(s); j++ {
			if s[j] != '0' && s[j] != '1' {
				return nil, fmt.Errorf("glyph %q row %d has invalid cell %q", ch, i, s[j])
			}
		}
		glyph[i] = s
	}
	return glyph, nil
}
