// Package project implements persistence of display settings and editor
// projects as plain JSON documents.
//
// Settings are stored as .lcd_settings files and projects as .lcd_project
// files. Reads are tolerant: missing or malformed fields fall back to
// defaults so that documents written by older versions keep loading.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jschwab/lcdsvg"
)

const (
	// SettingsExt is the file extension for settings documents
	SettingsExt = ".lcd_settings"
	// ProjectExt is the file extension for project documents
	ProjectExt = ".lcd_project"

	// settingsSchema identifies the settings document version
	settingsSchema = "lcd_settings_v1"

	// Default display dimensions
	defaultRows = 4
	defaultCols = 20
)

// Settings holds the display configuration of a project.
type Settings struct {
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
	Style lcdsvg.Style `json:"style"`
}

// DefaultSettings returns a 20x4 display with the default style.
func DefaultSettings() Settings {
	return Settings{
		Rows:  defaultRows,
		Cols:  defaultCols,
		Style: lcdsvg.DefaultStyle(),
	}
}

// Input is one named text buffer of a project.
type Input struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Project bundles settings, custom glyphs, and text inputs.
type Project struct {
	Settings    Settings             `json:"settings"`
	CustomChars map[int]lcdsvg.Glyph `json:"custom_chars"`
	Inputs      []Input              `json:"inputs"`
	ActiveInput int                  `json:"active_input"`
}

// NewProject returns an empty project with default settings and a single
// blank input.
func NewProject() Project {
	return Project{
		Settings:    DefaultSettings(),
		CustomChars: map[int]lcdsvg.Glyph{},
		Inputs:      []Input{{Name: "Input 1", Text: ""}},
	}
}

// ActiveText returns the text of the active input.
func (p Project) ActiveText() string {
	if len(p.Inputs) == 0 {
		return ""
	}
	return p.Inputs[p.ActiveInput].Text
}

// SaveSettings writes settings to path as a .lcd_settings JSON document.
// The extension is appended when missing. The written path is returned.
func SaveSettings(path string, s Settings) (string, error) {
	path = ensureExt(path, SettingsExt)

	payload := struct {
		Schema string       `json:"schema"`
		Rows   int          `json:"rows"`
		Cols   int          `json:"cols"`
		Style  lcdsvg.Style `json:"style"`
	}{
		Schema: settingsSchema,
		Rows:   s.Rows,
		Cols:   s.Cols,
		Style:  s.Style,
	}
	if err := writeJSON(path, payload); err != nil {
		return "", err
	}
	return path, nil
}

// LoadSettings reads a .lcd_settings JSON document. Missing fields fall
// back to defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Settings{}, fmt.Errorf("settings document %s is not valid JSON", path)
	}
	return settingsFromJSON(gjson.ParseBytes(data)), nil
}

// settingsFromJSON builds settings from a parsed document, applying
// defaults field-wise.
func settingsFromJSON(doc gjson.Result) Settings {
	s := DefaultSettings()
	if v := doc.Get("rows"); v.Exists() {
		s.Rows = int(v.Int())
	}
	if v := doc.Get("cols"); v.Exists() {
		s.Cols = int(v.Int())
	}
	if style := doc.Get("style"); style.IsObject() {
		s.Style = styleFromJSON(style)
	}
	return s
}

// styleFromJSON reads a style object, keeping defaults for absent fields.
func styleFromJSON(doc gjson.Result) lcdsvg.Style {
	s := lcdsvg.DefaultStyle()

	strs := []struct {
		key string
		dst *string
	}{
		{"Background", &s.Background},
		{"Frame", &s.Frame},
		{"PixelOn", &s.PixelOn},
		{"PixelOff", &s.PixelOff},
	}
	for _, f := range strs {
		if v := doc.Get(f.key); v.Exists() {
			*f.dst = v.String()
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"BorderRadius", &s.BorderRadius},
		{"Padding", &s.Padding},
		{"PixelSize", &s.PixelSize},
		{"PixelGap", &s.PixelGap},
		{"CharGap", &s.CharGap},
		{"RowGap", &s.RowGap},
		{"FrameWidth", &s.FrameWidth},
	}
	for _, f := range ints {
		if v := doc.Get(f.key); v.Exists() {
			*f.dst = int(v.Int())
		}
	}
	return s
}

// SaveProject writes a project to path as a .lcd_project JSON document.
// The extension is appended when missing. The written path is returned.
func SaveProject(path string, p Project) (string, error) {
	path = ensureExt(path, ProjectExt)

	// JSON object keys are strings; custom glyph codes are serialized as
	// their decimal representation.
	chars := make(map[string]lcdsvg.Glyph, len(p.CustomChars))
	for code, glyph := range p.CustomChars {
		chars[strconv.Itoa(code)] = glyph
	}

	payload := struct {
		Settings    Settings                `json:"settings"`
		CustomChars map[string]lcdsvg.Glyph `json:"custom_chars"`
		Inputs      []Input                 `json:"inputs"`
		ActiveInput int                     `json:"active_input"`
	}{
		Settings:    p.Settings,
		CustomChars: chars,
		Inputs:      p.Inputs,
		ActiveInput: p.ActiveInput,
	}
	if err := writeJSON(path, payload); err != nil {
		return "", err
	}
	return path, nil
}

// LoadProject reads a .lcd_project JSON document. Missing fields fall
// back to defaults, an empty input list gains one blank input, and the
// active input index is clamped to the input range.
func LoadProject(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Project{}, fmt.Errorf("project document %s is not valid JSON", path)
	}
	doc := gjson.ParseBytes(data)

	p := Project{
		Settings:    settingsFromJSON(doc.Get("settings")),
		CustomChars: map[int]lcdsvg.Glyph{},
	}

	doc.Get("custom_chars").ForEach(func(key, value gjson.Result) bool {
		code, err := strconv.Atoi(key.String())
		if err != nil {
			// Skip unparseable codes rather than failing the whole load
			return true
		}
		var glyph lcdsvg.Glyph
		for _, row := range value.Array() {
			glyph = append(glyph, row.String())
		}
		p.CustomChars[code] = glyph
		return true
	})

	for _, item := range doc.Get("inputs").Array() {
		p.Inputs = append(p.Inputs, Input{
			Name: item.Get("name").String(),
			Text: item.Get("text").String(),
		})
	}
	if len(p.Inputs) == 0 {
		p.Inputs = []Input{{Name: "Input 1", Text: ""}}
	}

	active := int(doc.Get("active_input").Int())
	if active < 0 {
		active = 0
	}
	if active > len(p.Inputs)-1 {
		active = len(p.Inputs) - 1
	}
	p.ActiveInput = active

	return p, nil
}

// ensureExt appends ext when path does not already end in it.
func ensureExt(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

// writeJSON marshals v with two-space indentation and writes it to path.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
