package lcdsvg

import (
	"embed"
	"sync"
)

// embeddedFonts holds the bundled font resources.
//
//go:embed fonts/font5x8.json
var embeddedFonts embed.FS

// DefaultFontPath is the path of the bundled 5x8 font within the
// embedded filesystem.
const DefaultFontPath = "fonts/font5x8.json"

var defaultFont struct {
	once sync.Once
	font *Font
	err  error
}

// DefaultFont returns the bundled 5x8 font. The font is parsed once per
// process and the immutable result is shared by all callers; concurrent
// use requires no locking.
func DefaultFont() (*Font, error) {
	defaultFont.once.Do(func() {
		defaultFont.font, defaultFont.err = LoadFontFS(embeddedFonts, DefaultFontPath)
	})
	return defaultFont.font, defaultFont.err
}
