// Package scanner resolves normalized text rows into glyph sequences.
//
// A backslash in a row introduces an escape referencing a caller-supplied
// custom glyph by numeric code, e.g. `\7`. Resolving an escape consumes
// the backslash and its digit run from the row, shifts the remainder left
// and pads the tail with spaces, so the row length and therefore the
// rendered column count never change.
package scanner

import (
	"math"

	"github.com/jschwab/lcdsvg/internal/debug"
	"github.com/jschwab/lcdsvg/internal/parser"
)

// Options configures one row resolution.
type Options struct {
	// Custom maps integer escape codes to 8x5 glyph bitmaps. Codes absent
	// from the map resolve to the space glyph.
	Custom map[int][]string

	// Row is the display row index, used only for debug events.
	Row int

	// Debug receives scan events when non-nil.
	Debug *debug.Session
}

// ResolveRow resolves a row of exactly cols characters into one glyph per
// column. The row buffer is mutated in place while scanning: each resolved
// escape shifts the remaining content left and pads the tail with spaces.
// The caller must not reuse the buffer's prior content afterwards.
func ResolveRow(row []rune, font *parser.Font, opts *Options) [][]string {
	if opts == nil {
		opts = &Options{}
	}
	glyphs := make([][]string, len(row))
	for c := range row {
		glyphs[c] = resolveColumn(row, c, font, opts)
	}
	return glyphs
}

// resolveColumn resolves the glyph at column c of the current row state,
// mutating row when c starts an escape.
func resolveColumn(row []rune, c int, font *parser.Font, opts *Options) []string {
	ch := row[c]
	if ch != '\\' {
		return font.Lookup(ch)
	}

	// Collect the longest run of ASCII digits after the backslash. The run
	// is clipped at the row boundary; digit classification is ASCII-only so
	// non-ASCII numerals render as ordinary characters.
	e := c + 1
	for e < len(row) && isASCIIDigit(row[e]) {
		e++
	}

	if e == c+1 {
		// No digits follow: the backslash itself is the glyph. Only the
		// backslash is removed from the row, padding one space at the tail.
		consume(row, c, c+1)
		opts.Debug.Emit("scan", "Escape", debug.EscapeData{
			Row:     opts.Row,
			Col:     c,
			SpanLen: 1,
			Literal: true,
		})
		return font.Lookup('\\')
	}

	// The digit run aliases row, which consume is about to shift; stringify
	// it first so the debug event reports what was actually scanned.
	digits := string(row[c+1 : e])
	code, ok := parseCode(digits)

	// The consumed span is the backslash plus every digit, ending at the
	// end of the digit run. Consuming before lookup keeps the row state
	// identical for present and absent codes.
	consume(row, c, e)

	var glyph []string
	custom := false
	if ok {
		glyph, custom = opts.Custom[code]
	}
	if !custom {
		glyph = font.Lookup(' ')
	}
	opts.Debug.Emit("scan", "Escape", debug.EscapeData{
		Row:      opts.Row,
		Col:      c,
		Digits:   digits,
		Code:     code,
		SpanLen:  e - c,
		Custom:   custom,
		Fallback: !custom,
	})
	return glyph
}

// consume removes row[c:e], shifting the remainder left and padding the
// vacated tail with spaces. Row length is preserved.
func consume(row []rune, c, e int) {
	n := copy(row[c:], row[e:])
	for i := c + n; i < len(row); i++ {
		row[i] = ' '
	}
}

// parseCode parses an ASCII digit run as an unsigned integer. Runs whose
// value does not fit an int report !ok; such codes can never be present
// in a custom glyph table and resolve to the space fallback.
func parseCode(digits string) (int, bool) {
	code := 0
	for _, d := range digits {
		if code > (math.MaxInt-int(d-'0'))/10 {
			return 0, false
		}
		code = code*10 + int(d-'0')
	}
	return code, true
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
