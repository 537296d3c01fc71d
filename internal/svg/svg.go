// Package svg serializes a resolved glyph grid into an SVG document.
//
// The element order is part of the output contract: the frame rectangle,
// the inner background rectangle, then one rectangle per glyph pixel in
// row-major, column-major, glyph-row-major, glyph-column-major order.
// Identical inputs always produce byte-identical documents.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jschwab/lcdsvg/internal/debug"
	"github.com/jschwab/lcdsvg/internal/geometry"
)

// Colors holds the fill colors for one render. Values are emitted
// verbatim as SVG fill attributes.
type Colors struct {
	Background string
	Frame      string
	PixelOn    string
	PixelOff   string
}

// Options configures emission.
type Options struct {
	// Debug receives emission events when non-nil.
	Debug *debug.Session
}

// Emit serializes the glyph grid and returns the document as a string.
func Emit(glyphs [][][]string, grid geometry.Grid, colors Colors, opts *Options) string {
	var sb strings.Builder
	// strings.Builder never returns a write error
	//nolint:errcheck
	EmitTo(&sb, glyphs, grid, colors, opts)
	return sb.String()
}

// EmitTo serializes the glyph grid to w. glyphs must hold grid.Rows rows
// of grid.Cols glyphs each; pixel cells missing from a malformed glyph
// are emitted as unlit.
func EmitTo(w io.Writer, glyphs [][][]string, grid geometry.Grid, colors Colors, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"100%%\" height=\"100%%\" viewBox=\"0 0 %d %d\">\n",
		grid.Width, grid.Height)
	fmt.Fprintf(bw, "<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" rx=\"0\" fill=\"%s\"/>\n",
		grid.Width, grid.Height, colors.Frame)

	ix, iy, iw, ih := grid.InnerRect()
	fmt.Fprintf(bw, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" rx=\"%d\" fill=\"%s\"/>\n",
		ix, iy, iw, ih, grid.InnerRadius, colors.Background)

	px := grid.Spec.PixelSize
	rects := 0
	lit := 0
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			glyph := glyphAt(glyphs, r, c)
			for gy := 0; gy < geometry.GlyphRows; gy++ {
				for gx := 0; gx < geometry.GlyphCols; gx++ {
					fill := colors.PixelOff
					if bitAt(glyph, gy, gx) {
						fill = colors.PixelOn
						lit++
					}
					x, y := grid.PixelOrigin(r, c, gx, gy)
					fmt.Fprintf(bw, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n",
						x, y, px, px, fill)
					rects++
				}
			}
		}
	}

	fmt.Fprint(bw, "</svg>")

	opts.Debug.Emit("emit", "End", debug.EmitEndData{
		PixelRects: rects,
		LitPixels:  lit,
	})

	return bw.Flush()
}

func glyphAt(glyphs [][][]string, r, c int) []string {
	if r >= len(glyphs) || c >= len(glyphs[r]) {
		return nil
	}
	return glyphs[r][c]
}

// bitAt reports whether the pixel at glyph row gy, column gx is lit.
// Cells outside the glyph's actual data are unlit.
func bitAt(glyph []string, gy, gx int) bool {
	if gy >= len(glyph) {
		return false
	}
	row := glyph[gy]
	return gx < len(row) && row[gx] == '1'
}
