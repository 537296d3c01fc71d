package scanner

import (
	"strings"
	"testing"

	"github.com/jschwab/lcdsvg/internal/parser"
)

// tagGlyph builds an 8x5 glyph whose rows all carry the given tag so tests
// can identify which glyph a column resolved to.
func tagGlyph(tag string) []string {
	rows := make([]string, parser.GlyphRows)
	for i := range rows {
		rows[i] = tag
	}
	return rows
}

// testFont returns a font with distinguishable glyphs for a small charset.
func testFont() *parser.Font {
	glyphs := map[rune][]string{
		' ':  tagGlyph("00000"),
		'\\': tagGlyph("10101"),
		'A':  tagGlyph("11100"),
		'B':  tagGlyph("11110"),
		'a':  tagGlyph("00111"),
		'b':  tagGlyph("01111"),
		'c':  tagGlyph("01110"),
		'x':  tagGlyph("10010"),
		'1':  tagGlyph("10000"),
		'2':  tagGlyph("01000"),
		'9':  tagGlyph("10001"),
	}
	return &parser.Font{Name: "test", Glyphs: glyphs}
}

// tagOf extracts the identifying tag from a resolved glyph.
func tagOf(g []string) string {
	if len(g) == 0 {
		return ""
	}
	return g[0]
}

func TestResolveRow(t *testing.T) {
	font := testFont()
	customX := tagGlyph("11111")
	customY := tagGlyph("11011")

	tests := []struct {
		name    string
		row     string
		custom  map[int][]string
		want    []string // expected glyph tags per column
		wantRow string   // expected row state after the scan
	}{
		{
			name:    "plain_characters",
			row:     "AB ",
			want:    []string{"11100", "11110", "00000"},
			wantRow: "AB ",
		},
		{
			name:    "trailing_backslash_last_column",
			row:     "AB\\",
			want:    []string{"11100", "11110", "10101"},
			wantRow: "AB ",
		},
		{
			name: "lone_backslash_mid_row",
			// Removing the backslash shifts 'b' into the already-resolved
			// column, so 'b' is not rendered.
			row:     "a\\bc ",
			want:    []string{"00111", "10101", "01110", "00000", "00000"},
			wantRow: "abc  ",
		},
		{
			name:    "escaped_backslash",
			row:     "\\\\x ",
			want:    []string{"10101", "10010", "00000", "00000"},
			wantRow: "\\x  ",
		},
		{
			name:   "custom_code_consumes_digits",
			row:    "\\65A ",
			custom: map[int][]string{65: customX},
			// Digits '6' and '5' are consumed; 'A' shifts into the resolved
			// column and drops out of the render.
			want:    []string{"11111", "00000", "00000", "00000", "00000"},
			wantRow: "A    ",
		},
		{
			name:    "custom_code_then_shifted_text",
			row:     "\\1 B ",
			custom:  map[int][]string{1: customX},
			want:    []string{"11111", "11110", "00000", "00000", "00000"},
			wantRow: " B   ",
		},
		{
			name:    "absent_code_falls_back_to_space",
			row:     "\\999A",
			want:    []string{"00000", "00000", "00000", "00000", "00000"},
			wantRow: "A    ",
		},
		{
			name:   "multi_digit_code",
			row:    "\\112 ",
			custom: map[int][]string{112: customX, 11: customY, 2: customY},
			// The span ends at the end of the digit run: code 112, not code
			// 11 with a stray literal '2'.
			want:    []string{"11111", "00000", "00000", "00000", "00000"},
			wantRow: "     ",
		},
		{
			name:    "escape_clipped_at_row_boundary",
			row:     "AB\\9",
			want:    []string{"11100", "11110", "00000", "00000"},
			wantRow: "AB  ",
		},
		{
			name:   "two_escapes_one_row",
			row:    "\\1\\2AB",
			custom: map[int][]string{1: customX, 2: customY},
			// The first escape shifts the second backslash into the
			// already-resolved column 0, so it is never scanned; its digit
			// '2' renders as a literal character.
			want:    []string{"11111", "01000", "11100", "11110", "00000", "00000"},
			wantRow: "\\2AB  ",
		},
		{
			name: "overflowing_code_is_space",
			row:  "\\99999999999999999999",
			want: append([]string{"00000"}, repeat("00000", 20)...),
		},
		{
			name: "non_ascii_digit_is_not_an_escape",
			// U+0663 ARABIC-INDIC DIGIT THREE is numeric but not an ASCII
			// digit, so the backslash is literal.
			row:     "\\٣ ",
			want:    []string{"10101", "00000", "00000"},
			wantRow: "٣  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := []rune(tt.row)
			got := ResolveRow(row, font, &Options{Custom: tt.custom})

			if len(got) != len([]rune(tt.row)) {
				t.Fatalf("resolved %d glyphs, want %d", len(got), len([]rune(tt.row)))
			}
			if len(row) != len([]rune(tt.row)) {
				t.Fatalf("row length changed: %d, want %d", len(row), len([]rune(tt.row)))
			}

			var tags []string
			for _, g := range got {
				tags = append(tags, tagOf(g))
			}
			for i, want := range tt.want {
				if tags[i] != want {
					t.Errorf("column %d resolved to %q, want %q (all: %v)", i, tags[i], want, tags)
				}
			}
			if tt.wantRow != "" && string(row) != tt.wantRow {
				t.Errorf("row after scan = %q, want %q", string(row), tt.wantRow)
			}
		})
	}
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestResolveRowNilOptions(t *testing.T) {
	font := testFont()
	row := []rune("A\\9 ")
	got := ResolveRow(row, font, nil)
	if len(got) != 4 {
		t.Fatalf("resolved %d glyphs, want 4", len(got))
	}
	// \9 has no custom table at all: space fallback
	if tagOf(got[1]) != "00000" {
		t.Errorf("column 1 = %q, want space fallback", tagOf(got[1]))
	}
}

func TestConsumePreservesLength(t *testing.T) {
	for _, width := range []int{1, 2, 5, 20, 40} {
		row := []rune(strings.Repeat("\\", width))
		ResolveRow(row, testFont(), nil)
		if len(row) != width {
			t.Errorf("width %d: row length changed to %d", width, len(row))
		}
	}
}
