package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	// Format: [timestamp] [phase/event]
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	// Pretty print data based on type
	switch d := event.Data.(type) {
	case RenderStartData:
		s.writeRenderStart(d)
	case RenderEndData:
		s.writeRenderEnd(d)
	case RowStartData:
		s.writeRowStart(d)
	case EscapeData:
		s.writeEscape(d)
	case GeometryData:
		s.writeGeometry(d)
	case EmitEndData:
		s.writeEmitEnd(d)
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		s.writeMapInt64(d)
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writeRenderStart(d RenderStartData) {
	fmt.Fprintf(s.w, "  grid: %dx%d, lines: %d\n", d.Rows, d.Cols, d.LineCount)
	fmt.Fprintf(s.w, "  font_glyphs: %d, custom_glyphs: %d\n", d.FontGlyphs, d.CustomCount)
}

func (s *PrettySink) writeRenderEnd(d RenderEndData) {
	fmt.Fprintf(s.w, "  canvas: %dx%d\n", d.Width, d.Height)
	fmt.Fprintf(s.w, "  elapsed_ms: %d, bytes_written: %d\n", d.ElapsedMs, d.BytesWritten)
}

func (s *PrettySink) writeRowStart(d RowStartData) {
	fmt.Fprintf(s.w, "  row: %d, content: %q\n", d.Row, d.Content)
}

func (s *PrettySink) writeEscape(d EscapeData) {
	fmt.Fprintf(s.w, "  position: row=%d, col=%d, span: %d\n", d.Row, d.Col, d.SpanLen)
	if d.Literal {
		fmt.Fprintf(s.w, "  literal backslash\n")
		return
	}
	fmt.Fprintf(s.w, "  digits: %q, code: %d\n", d.Digits, d.Code)
	if d.Custom {
		fmt.Fprintf(s.w, "  custom: true\n")
	}
	if d.Fallback {
		fmt.Fprintf(s.w, "  fallback: space\n")
	}
}

func (s *PrettySink) writeGeometry(d GeometryData) {
	fmt.Fprintf(s.w, "  grid: %dx%d, canvas: %dx%d\n", d.Rows, d.Cols, d.Width, d.Height)
	fmt.Fprintf(s.w, "  cell: %dx%d, inner_radius: %d\n", d.CellWidth, d.CellHeight, d.InnerRadius)
}

func (s *PrettySink) writeEmitEnd(d EmitEndData) {
	fmt.Fprintf(s.w, "  pixel_rects: %d, lit: %d\n", d.PixelRects, d.LitPixels)
}

func (s *PrettySink) writeMap(d map[string]interface{}) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %v\n", k, v)
	}
}

func (s *PrettySink) writeMapInt64(d map[string]int64) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %d\n", k, v)
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}
