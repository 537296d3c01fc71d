package debug

// RenderStartData contains information about the start of a render operation.
type RenderStartData struct {
	Rows        int  `json:"rows"`
	Cols        int  `json:"cols"`
	LineCount   int  `json:"line_count"`
	CustomCount int  `json:"custom_count"`
	FontGlyphs  int  `json:"font_glyphs"`
	HasStyle    bool `json:"has_style"`
}

// RenderEndData contains information about the end of a render operation.
type RenderEndData struct {
	Width        int   `json:"width"`
	Height       int   `json:"height"`
	ElapsedMs    int64 `json:"elapsed_ms"`
	BytesWritten int   `json:"bytes_written"`
}

// RowStartData contains information about the start of a row scan.
type RowStartData struct {
	Row     int    `json:"row"`
	Content string `json:"content"`
}

// EscapeData contains information about a resolved escape sequence.
type EscapeData struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Digits   string `json:"digits"`
	Code     int    `json:"code"`
	SpanLen  int    `json:"span_len"`
	Custom   bool   `json:"custom"`
	Fallback bool   `json:"fallback,omitempty"`
	Literal  bool   `json:"literal,omitempty"`
}

// GeometryData contains the computed canvas geometry for a render.
type GeometryData struct {
	Rows        int `json:"rows"`
	Cols        int `json:"cols"`
	Width       int `json:"width"`
	Height      int `json:"height"`
	CellWidth   int `json:"cell_width"`
	CellHeight  int `json:"cell_height"`
	InnerRadius int `json:"inner_radius"`
}

// EmitEndData contains information about a completed document emission.
type EmitEndData struct {
	PixelRects int `json:"pixel_rects"`
	LitPixels  int `json:"lit_pixels"`
}
