// Package lcdsvg renders multi-line text as an SVG image of a dot-matrix
// character LCD (HD44780-style, 5x8 pixel glyph cells in a fixed
// rows x cols grid).
//
// Text may reference caller-supplied custom glyphs by numeric escape
// codes: a backslash followed by digits, e.g. `\7`. Rendering is a pure
// function of its inputs; identical input always produces a byte-identical
// document, which makes the output suitable for golden-file testing and
// reproducible CI screenshots.
//
// Example:
//
//	font, err := lcdsvg.DefaultFont()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := lcdsvg.Generate(2, 16, []string{"Hello", "World"}, font)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := lcdsvg.Save("lcd.svg", doc); err != nil {
//	    log.Fatal(err)
//	}
package lcdsvg

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/jschwab/lcdsvg/internal/debug"
	"github.com/jschwab/lcdsvg/internal/geometry"
	"github.com/jschwab/lcdsvg/internal/parser"
	"github.com/jschwab/lcdsvg/internal/scanner"
	"github.com/jschwab/lcdsvg/internal/svg"
)

// ParseFont reads a font resource from the provided reader and returns a
// Font instance. The returned Font is immutable and safe for concurrent
// use across goroutines.
//
// The resource must be a JSON document mapping single characters to 8x5
// glyph bitmaps, either nested under a "font_5x8" (or "font") key or as a
// flat map, and must contain a space entry; the space glyph is the
// universal fallback for unknown characters.
func ParseFont(r io.Reader) (*Font, error) {
	pf, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFontFormat, err)
	}
	return &Font{font: pf}, nil
}

// ParseFontBytes parses a font resource held in memory.
func ParseFontBytes(data []byte) (*Font, error) {
	pf, err := parser.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFontFormat, err)
	}
	return &Font{font: pf}, nil
}

// LoadFont loads a font resource from a file path. The font name is set
// from the filename without extension.
func LoadFont(fontPath string) (*Font, error) {
	file, err := os.Open(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open font resource: %w", err)
	}
	defer file.Close()

	font, err := ParseFont(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", fontPath, err)
	}
	font.Name = trimFontExt(fontPath)
	return font, nil
}

// cleanFSPath validates and cleans a path for use with fs.FS.
// It ensures the path is valid according to fs.ValidPath rules and
// prevents directory traversal.
func cleanFSPath(p string) (string, error) {
	if p == "" {
		return "", errors.New("path cannot be empty")
	}
	// fs.FS disallows leading slash and uses '/' only
	if strings.HasPrefix(p, "/") {
		return "", errors.New("absolute paths not allowed")
	}
	if strings.ContainsRune(p, '\\') {
		return "", errors.New("backslashes not allowed in fs paths")
	}
	if !fs.ValidPath(p) {
		// rejects ".", ".." segments, empty elements, etc.
		return "", fmt.Errorf("invalid fs path: %s", p)
	}
	clean := path.Clean(p) // purely slash semantics
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", errors.New("path traversal not allowed")
	}
	return clean, nil
}

// LoadFontFS loads a font resource from a filesystem at the specified
// path. The returned Font is immutable and safe for concurrent use.
//
// Example with embed.FS:
//
//	//go:embed fonts/*.json
//	var fonts embed.FS
//
//	font, err := lcdsvg.LoadFontFS(fonts, "fonts/font5x8.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadFontFS(fsys fs.FS, fontPath string) (*Font, error) {
	if fsys == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}

	clean, err := cleanFSPath(fontPath)
	if err != nil {
		return nil, err
	}

	file, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open font resource: %w", err)
	}
	defer file.Close()

	font, err := ParseFont(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", clean, err)
	}

	// Use path package for fs.FS paths (not filepath)
	font.Name = strings.TrimSuffix(path.Base(clean), path.Ext(clean))
	return font, nil
}

func trimFontExt(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Generate renders text as an SVG document for a rows x cols display.
//
// lines shorter than rows are padded with blank rows and extra lines are
// dropped; each line is right-padded or truncated to exactly cols
// characters before escape resolution, so the rendered grid always has
// exactly rows x cols cells.
func Generate(rows, cols int, lines []string, font *Font, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := GenerateTo(&sb, rows, cols, lines, font, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// GenerateTo renders text as an SVG document directly to the provided
// writer. This avoids allocating the result string for large displays.
func GenerateTo(w io.Writer, rows, cols int, lines []string, font *Font, opts ...Option) error {
	if font == nil {
		return ErrUnknownFont
	}
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	style := DefaultStyle()
	if options.style != nil {
		style = *options.style
	}
	if err := style.Validate(); err != nil {
		return err
	}

	start := time.Now()
	options.debug.Emit("render", "Start", debug.RenderStartData{
		Rows:        rows,
		Cols:        cols,
		LineCount:   len(lines),
		CustomCount: len(options.custom),
		FontGlyphs:  font.Len(),
		HasStyle:    options.style != nil,
	})

	grid := geometry.Compute(rows, cols, style.geometry())
	options.debug.Emit("render", "Geometry", debug.GeometryData{
		Rows:        rows,
		Cols:        cols,
		Width:       grid.Width,
		Height:      grid.Height,
		CellWidth:   grid.CellWidth,
		CellHeight:  grid.CellHeight,
		InnerRadius: grid.InnerRadius,
	})

	text := normalizeLines(rows, cols, lines)
	glyphs := make([][][]string, rows)
	for r := 0; r < rows; r++ {
		options.debug.Emit("scan", "RowStart", debug.RowStartData{
			Row:     r,
			Content: string(text[r]),
		})
		glyphs[r] = scanner.ResolveRow(text[r], font.font, &scanner.Options{
			Custom: options.custom,
			Row:    r,
			Debug:  options.debug,
		})
	}

	counting := &countingWriter{w: w}
	if err := svg.EmitTo(counting, glyphs, grid, style.colors(), &svg.Options{Debug: options.debug}); err != nil {
		return err
	}

	options.debug.Emit("render", "End", debug.RenderEndData{
		Width:        grid.Width,
		Height:       grid.Height,
		ElapsedMs:    time.Since(start).Milliseconds(),
		BytesWritten: counting.n,
	})
	return nil
}

// normalizeLines produces exactly rows mutable rune rows of exactly cols
// characters: missing rows become blank, short rows are right-padded with
// spaces, and overflow in either dimension is dropped.
func normalizeLines(rows, cols int, lines []string) [][]rune {
	text := make([][]rune, rows)
	for r := 0; r < rows; r++ {
		row := make([]rune, cols)
		for i := range row {
			row[i] = ' '
		}
		if r < len(lines) {
			copy(row, []rune(lines[r]))
		}
		text[r] = row
	}
	return text
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// Save writes a rendered document to path. Any I/O failure is reported
// as the returned error and never panics past this boundary; the
// document remains valid and can be saved again.
func Save(docPath, document string) error {
	f, err := os.Create(docPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", docPath, err)
	}
	if _, err := io.WriteString(f, document); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", docPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", docPath, err)
	}
	return nil
}
