// Command generate-goldens regenerates the golden SVG files used by the
// regression tests. Each golden is a markdown file with YAML front matter
// describing the render parameters and a fenced block holding the exact
// document, so a diff of a golden is readable in review.
//
// Run from the repository root after an intentional output change:
//
//	go run ./cmd/generate-goldens
package main

import (
	"bytes"
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jschwab/lcdsvg"
)

// GoldenMetadata represents the YAML front matter in golden files.
// This should match the struct in golden_test.go
type GoldenMetadata struct {
	Font           string `yaml:"font"`
	Style          string `yaml:"style"`
	Rows           int    `yaml:"rows"`
	Cols           int    `yaml:"cols"`
	Sample         string `yaml:"sample"`
	Generated      string `yaml:"generated"`
	Generator      string `yaml:"generator"`
	ChecksumSHA256 string `yaml:"checksum_sha256"`
}

var (
	outDir = flag.String("out", "testdata/goldens", "Output directory")
	styles = flag.String("styles", "default green", "Space-separated list of style presets")
	strict = flag.Bool("strict", false, "Exit on any warning")
)

// Default samples including edge cases. Lines are separated by newlines;
// escape sequences exercise the scanner against the bundled font.
var defaultSamples = []struct {
	rows, cols int
	text       string
}{
	{2, 16, "Hello, World!\n2x16 display"},
	{4, 20, "The quick brown\nfox jumps over\nthe lazy dog\n0123456789"},
	{1, 8, ""},
	{1, 10, `|/\[]{}()<>`},
	{1, 12, `escape \999 x`},
	{1, 6, `tail \`},
	{2, 10, "overflowing this narrow display\nsecond row"},
}

func main() {
	flag.Parse()

	font, err := lcdsvg.DefaultFont()
	if err != nil {
		log.Fatalf("Failed to load bundled font: %v", err)
	}

	for _, styleName := range strings.Fields(*styles) {
		style, err := stylePreset(styleName)
		if err != nil {
			log.Fatalf("Unknown style %q", styleName)
		}

		dir := filepath.Join(*outDir, styleName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}

		for _, sample := range defaultSamples {
			if err := generateGoldenFile(font, styleName, style, sample.rows, sample.cols, sample.text); err != nil {
				if *strict {
					log.Fatalf("Failed to generate golden file: %v", err)
				}
				log.Printf("Warning: %v", err)
			}
		}
	}

	log.Println("Golden file generation complete")
}

func stylePreset(name string) (lcdsvg.Style, error) {
	switch name {
	case "default":
		return lcdsvg.DefaultStyle(), nil
	case "green":
		return lcdsvg.GreenStyle(), nil
	default:
		return lcdsvg.Style{}, fmt.Errorf("unknown style preset: %s", name)
	}
}

func generateGoldenFile(font *lcdsvg.Font, styleName string, style lcdsvg.Style, rows, cols int, sample string) error {
	slug := slugify(sample)
	outFile := filepath.Join(*outDir, styleName, fmt.Sprintf("%dx%d_%s.md", rows, cols, slug))

	log.Printf("Generating %s/%dx%d_%s.md", styleName, rows, cols, slug)

	doc, err := lcdsvg.Generate(rows, cols, strings.Split(sample, "\n"), font, lcdsvg.WithStyle(style))
	if err != nil {
		return fmt.Errorf("failed to render %s/%s: %w", styleName, slug, err)
	}

	metadata := GoldenMetadata{
		Font:           font.Name,
		Style:          styleName,
		Rows:           rows,
		Cols:           cols,
		Sample:         sample, // YAML marshaling will handle escaping
		Generated:      time.Now().UTC().Format("2006-01-02"),
		Generator:      "generate-goldens",
		ChecksumSHA256: calculateChecksum(doc),
	}

	yamlData, err := yaml.Marshal(&metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlData)
	buf.WriteString("---\n\n")
	buf.WriteString("```svg\n")
	buf.WriteString(doc)
	buf.WriteString("\n```\n")

	if err := os.WriteFile(outFile, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", outFile, err)
	}
	return nil
}

func calculateChecksum(data string) string {
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

func slugify(s string) string {
	if s == "" {
		return "empty"
	}

	var result []rune
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = append(result, r)
		} else if len(result) == 0 || result[len(result)-1] != '_' {
			result = append(result, '_')
		}
	}
	slug := strings.Trim(string(result), "_")

	if slug == "" {
		hash := sha256.Sum256([]byte(s))
		return fmt.Sprintf("%x", hash)[:8]
	}
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug
}
