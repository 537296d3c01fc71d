// Command lcdsvg renders text as an SVG image of a dot-matrix character
// LCD display.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jschwab/lcdsvg"
	"github.com/jschwab/lcdsvg/internal/debug"
	"github.com/jschwab/lcdsvg/project"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		rows         int
		cols         int
		fontPath     string
		outPath      string
		styleName    string
		settingsPath string
		projectPath  string
		charset      bool
		showVersion  bool
		showHelp     bool
		debugMode    bool
		debugFile    string
		debugPretty  bool
	)

	pflag.IntVarP(&rows, "rows", "r", 4, "Display rows")
	pflag.IntVarP(&cols, "cols", "c", 20, "Display columns")
	pflag.StringVarP(&fontPath, "font", "f", "", "Path to font resource (default: bundled 5x8 font)")
	pflag.StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	pflag.StringVar(&styleName, "style", "default", "Style preset: default, green")
	pflag.StringVar(&settingsPath, "settings", "", "Load display settings from a .lcd_settings file")
	pflag.StringVar(&projectPath, "project", "", "Load text, glyphs, and settings from a .lcd_project file")
	pflag.BoolVar(&charset, "charset", false, "Render the font's full character set instead of text")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.BoolVar(&debugMode, "debug", false, "Enable debug mode (outputs to stderr)")
	pflag.StringVar(&debugFile, "debug-file", "", "Write debug output to file instead of stderr")
	pflag.BoolVar(&debugPretty, "debug-pretty", false, "Use pretty format for debug output (default: JSON)")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}

	if showVersion {
		fmt.Printf("lcdsvg version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	style := lcdsvg.DefaultStyle()
	custom := map[int]lcdsvg.Glyph{}
	var lines []string

	if settingsPath != "" {
		settings, err := project.LoadSettings(settingsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
			return 1
		}
		rows, cols, style = settings.Rows, settings.Cols, settings.Style
	}

	if projectPath != "" {
		proj, err := project.LoadProject(projectPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading project: %v\n", err)
			return 1
		}
		rows, cols, style = proj.Settings.Rows, proj.Settings.Cols, proj.Settings.Style
		custom = proj.CustomChars
		lines = strings.Split(proj.ActiveText(), "\n")
	}

	// Explicit flags win over file-provided values
	if pflag.CommandLine.Changed("rows") {
		rows = mustFlagInt("rows")
	}
	if pflag.CommandLine.Changed("cols") {
		cols = mustFlagInt("cols")
	}
	if pflag.CommandLine.Changed("style") || (settingsPath == "" && projectPath == "") {
		preset, err := stylePreset(styleName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		style = preset
	}

	font, err := loadFont(fontPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
		return 1
	}

	switch {
	case charset:
		lines = charsetLines(font, cols)
		rows = len(lines)
	case len(pflag.Args()) > 0:
		lines = pflag.Args()
	case lines == nil:
		lines, err = readLines(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return 1
		}
	}

	session, cleanup, err := debugSession(debugMode, debugFile, debugPretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	doc, err := lcdsvg.Generate(rows, cols, lines, font,
		lcdsvg.WithStyle(style),
		lcdsvg.WithCustomGlyphs(custom),
		lcdsvg.WithDebug(session),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering display: %v\n", err)
		return 1
	}

	if outPath != "" {
		if err := lcdsvg.Save(outPath, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Println(doc)
	return 0
}

func mustFlagInt(name string) int {
	v, err := pflag.CommandLine.GetInt(name)
	if err != nil {
		panic(err)
	}
	return v
}

// stylePreset maps a preset name to its style.
func stylePreset(name string) (lcdsvg.Style, error) {
	switch strings.ToLower(name) {
	case "default", "lime":
		return lcdsvg.DefaultStyle(), nil
	case "green":
		return lcdsvg.GreenStyle(), nil
	default:
		return lcdsvg.Style{}, fmt.Errorf("unknown style preset: %s (want default or green)", name)
	}
}

// loadFont loads the bundled font when path is empty, otherwise resolves
// and loads the font resource at path.
func loadFont(path string) (*lcdsvg.Font, error) {
	if path == "" {
		return lcdsvg.DefaultFont()
	}
	return lcdsvg.LoadFontCached(resolveFontPath(path))
}

// resolveFontPath resolves a font resource from either a full path or
// just a font name.
func resolveFontPath(fontPath string) string {
	// If it's already a full path to a .json file, use it directly
	if filepath.Ext(fontPath) == ".json" {
		return fontPath
	}

	// Check if it exists as is
	if _, err := os.Stat(fontPath); err == nil {
		return fontPath
	}

	// Try adding .json extension
	withExt := fontPath + ".json"
	if _, err := os.Stat(withExt); err == nil {
		return withExt
	}

	// Try in fonts/ directory
	inFonts := filepath.Join("fonts", fontPath+".json")
	if _, err := os.Stat(inFonts); err == nil {
		return inFonts
	}

	// Default to original path (will fail with better error later)
	return fontPath
}

// charsetLines lays the font's character set out as display lines of at
// most cols characters, in rune order.
func charsetLines(font *lcdsvg.Font, cols int) []string {
	runes := font.Runes()
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	if cols <= 0 {
		return nil
	}
	var lines []string
	for len(runes) > 0 {
		n := cols
		if n > len(runes) {
			n = len(runes)
		}
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}
	return lines
}

// readLines reads display lines from r, one per input line.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// debugSession builds a debug session from the CLI flags and environment.
// The returned cleanup must run after rendering completes.
func debugSession(debugMode bool, debugFile string, debugPretty bool) (*debug.Session, func(), error) {
	cleanup := func() {}
	if !debugMode && debugFile == "" && os.Getenv("LCDSVG_DEBUG") != "1" {
		return nil, cleanup, nil
	}

	debug.SetEnabled(true)
	debug.InitFromEnv()

	var output io.Writer = os.Stderr
	if debugFile != "" {
		file, err := os.Create(debugFile)
		if err != nil {
			return nil, cleanup, fmt.Errorf("creating debug file: %w", err)
		}
		cleanup = func() { file.Close() }
		output = file
	}

	var sink debug.Sink
	if debugPretty || os.Getenv("LCDSVG_DEBUG_PRETTY") == "1" {
		sink = debug.NewPrettySink(output)
	} else {
		sink = debug.NewJSONSink(output)
	}

	session := debug.NewSession(sink)
	if session != nil {
		fileCleanup := cleanup
		cleanup = func() {
			session.Close()
			fileCleanup()
		}
	}
	return session, cleanup, nil
}

func printHelp() {
	fmt.Println("lcdsvg - character LCD display SVG generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lcdsvg [flags] [line ...]")
	fmt.Println()
	fmt.Println("Each positional argument is one display row; with no arguments")
	fmt.Println("rows are read from stdin. Text may reference custom glyphs from")
	fmt.Println("a loaded project by escape code, e.g. \\7.")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  lcdsvg -r 2 -c 16 'Hello' 'World'")
	fmt.Println("  lcdsvg --project demo.lcd_project -o demo.svg")
	fmt.Println("  lcdsvg --charset --style green -o charset.svg")
}
