// Package geometry computes pixel coordinates for an LCD render.
//
// All values are integer pixel units. Given non-negative inputs every
// computed value is non-negative; there is no rounding.
package geometry

// Glyph cell dimensions in pixels.
const (
	// GlyphCols is the glyph width in pixel cells
	GlyphCols = 5
	// GlyphRows is the glyph height in pixel cells
	GlyphRows = 8
)

// Spec holds the integer layout parameters for one render.
type Spec struct {
	// BorderRadius is the outer corner radius; the inner background
	// rectangle uses max(BorderRadius-4, 0)
	BorderRadius int
	// Padding is the space between the frame and the character grid
	Padding int
	// PixelSize is the side length of one glyph pixel
	PixelSize int
	// PixelGap is the spacing between pixels within a cell
	PixelGap int
	// CharGap is the spacing between character cells in a row
	CharGap int
	// RowGap is the spacing between display rows
	RowGap int
	// FrameWidth is the thickness of the outer frame
	FrameWidth int
}

// Grid is the computed pixel geometry for a rows x cols display.
type Grid struct {
	Spec Spec

	// Rows and Cols are the display dimensions in character cells
	Rows, Cols int

	// Width and Height are the full canvas size including frame
	Width, Height int

	// CellWidth and CellHeight are the size of one character cell
	CellWidth, CellHeight int

	// InnerRadius is the corner radius of the background rectangle
	InnerRadius int
}

// Compute derives the canvas geometry for a rows x cols display.
func Compute(rows, cols int, s Spec) Grid {
	cw := GlyphCols*s.PixelSize + (GlyphCols-1)*s.PixelGap
	ch := GlyphRows*s.PixelSize + (GlyphRows-1)*s.PixelGap

	w := 2*s.Padding + cols*cw + (cols-1)*s.CharGap + 2*s.FrameWidth
	h := 2*s.Padding + rows*ch + (rows-1)*s.RowGap + 2*s.FrameWidth

	innerRadius := s.BorderRadius - 4
	if innerRadius < 0 {
		innerRadius = 0
	}

	return Grid{
		Spec:        s,
		Rows:        rows,
		Cols:        cols,
		Width:       w,
		Height:      h,
		CellWidth:   cw,
		CellHeight:  ch,
		InnerRadius: innerRadius,
	}
}

// InnerRect returns the origin and size of the background rectangle,
// inset from the canvas by the frame width.
func (g Grid) InnerRect() (x, y, w, h int) {
	fw := g.Spec.FrameWidth
	return fw, fw, g.Width - 2*fw, g.Height - 2*fw
}

// CellOrigin returns the top-left pixel coordinate of the character cell
// at display row r, column c.
func (g Grid) CellOrigin(r, c int) (x, y int) {
	x = g.Spec.FrameWidth + g.Spec.Padding + c*(g.CellWidth+g.Spec.CharGap)
	y = g.Spec.FrameWidth + g.Spec.Padding + r*(g.CellHeight+g.Spec.RowGap)
	return x, y
}

// PixelOrigin returns the top-left coordinate of the pixel at glyph
// column gx, glyph row gy within the cell at display row r, column c.
func (g Grid) PixelOrigin(r, c, gx, gy int) (x, y int) {
	x, y = g.CellOrigin(r, c)
	step := g.Spec.PixelSize + g.Spec.PixelGap
	return x + gx*step, y + gy*step
}
