package geometry

import "testing"

// defaultSpec mirrors the standard display style geometry.
func defaultSpec() Spec {
	return Spec{
		BorderRadius: 12,
		Padding:      16,
		PixelSize:    3,
		PixelGap:     1,
		CharGap:      4,
		RowGap:       10,
		FrameWidth:   8,
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		spec       Spec
		wantW      int
		wantH      int
		wantCW     int
		wantCH     int
		wantRadius int
	}{
		{
			// cw = 5*3+4*1 = 19, ch = 8*3+7*1 = 31
			// W = 32 + 20*19 + 19*4 + 16 = 504
			// H = 32 + 4*31 + 3*10 + 16 = 202
			name: "default_20x4",
			rows: 4, cols: 20,
			spec:  defaultSpec(),
			wantW: 504, wantH: 202,
			wantCW: 19, wantCH: 31,
			wantRadius: 8,
		},
		{
			// W = 32 + 3*19 + 2*4 + 16 = 113
			// H = 32 + 1*31 + 0*10 + 16 = 79
			name: "single_row_three_cols",
			rows: 1, cols: 3,
			spec:  defaultSpec(),
			wantW: 113, wantH: 79,
			wantCW: 19, wantCH: 31,
			wantRadius: 8,
		},
		{
			name: "zero_spec",
			rows: 2, cols: 2,
			spec:  Spec{},
			wantW: 0, wantH: 0,
			wantCW: 0, wantCH: 0,
			wantRadius: 0,
		},
		{
			name: "small_border_radius_clamps_to_zero",
			rows: 1, cols: 1,
			spec:  Spec{BorderRadius: 3, PixelSize: 1},
			wantW: 5, wantH: 8,
			wantCW: 5, wantCH: 8,
			wantRadius: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.rows, tt.cols, tt.spec)
			if g.Width != tt.wantW || g.Height != tt.wantH {
				t.Errorf("canvas = %dx%d, want %dx%d", g.Width, g.Height, tt.wantW, tt.wantH)
			}
			if g.CellWidth != tt.wantCW || g.CellHeight != tt.wantCH {
				t.Errorf("cell = %dx%d, want %dx%d", g.CellWidth, g.CellHeight, tt.wantCW, tt.wantCH)
			}
			if g.InnerRadius != tt.wantRadius {
				t.Errorf("InnerRadius = %d, want %d", g.InnerRadius, tt.wantRadius)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := Compute(4, 20, defaultSpec())
	b := Compute(4, 20, defaultSpec())
	if a != b {
		t.Errorf("Compute not deterministic: %+v vs %+v", a, b)
	}
}

func TestInnerRect(t *testing.T) {
	g := Compute(4, 20, defaultSpec())
	x, y, w, h := g.InnerRect()
	if x != 8 || y != 8 {
		t.Errorf("inner origin = (%d,%d), want (8,8)", x, y)
	}
	if w != g.Width-16 || h != g.Height-16 {
		t.Errorf("inner size = %dx%d, want %dx%d", w, h, g.Width-16, g.Height-16)
	}
}

func TestCellOrigin(t *testing.T) {
	g := Compute(4, 20, defaultSpec())

	x, y := g.CellOrigin(0, 0)
	if x != 24 || y != 24 {
		t.Errorf("CellOrigin(0,0) = (%d,%d), want (24,24)", x, y)
	}

	// x = 24 + 2*(19+4) = 70, y = 24 + 1*(31+10) = 65
	x, y = g.CellOrigin(1, 2)
	if x != 70 || y != 65 {
		t.Errorf("CellOrigin(1,2) = (%d,%d), want (70,65)", x, y)
	}
}

func TestPixelOrigin(t *testing.T) {
	g := Compute(4, 20, defaultSpec())

	x, y := g.PixelOrigin(0, 0, 0, 0)
	cx, cy := g.CellOrigin(0, 0)
	if x != cx || y != cy {
		t.Errorf("PixelOrigin(0,0,0,0) = (%d,%d), want cell origin (%d,%d)", x, y, cx, cy)
	}

	// step = 3+1 = 4
	x, y = g.PixelOrigin(0, 0, 4, 7)
	if x != cx+16 || y != cy+28 {
		t.Errorf("PixelOrigin(0,0,4,7) = (%d,%d), want (%d,%d)", x, y, cx+16, cy+28)
	}
}

func TestNonNegativeOutputs(t *testing.T) {
	specs := []Spec{
		{},
		defaultSpec(),
		{BorderRadius: 1, Padding: 1, PixelSize: 1, PixelGap: 1, CharGap: 1, RowGap: 1, FrameWidth: 1},
	}
	for _, s := range specs {
		g := Compute(1, 1, s)
		if g.Width < 0 || g.Height < 0 || g.InnerRadius < 0 {
			t.Errorf("negative geometry from %+v: %+v", s, g)
		}
		if x, y := g.PixelOrigin(0, 0, GlyphCols-1, GlyphRows-1); x < 0 || y < 0 {
			t.Errorf("negative pixel origin from %+v: (%d,%d)", s, x, y)
		}
	}
}
