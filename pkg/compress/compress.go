// Package compress shrinks PDF files by rewriting them with Ghostscript's
// pdfwrite device. This is what the ghostscript system package installed by
// `pdfpress setup` is for.
package compress

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Level controls how aggressively images inside the PDF are downsampled.
type Level string

const (
	LevelLess        Level = "less"
	LevelRecommended Level = "recommended"
	LevelExtreme     Level = "extreme"
)

// Ghostscript's pdfwrite presets, from least to most aggressive.
var pdfSettings = map[Level]string{
	LevelLess:        "/prepress",
	LevelRecommended: "/ebook",
	LevelExtreme:     "/screen",
}

// ParseLevel validates a user-supplied compression level. The empty string
// means the default, LevelRecommended.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelRecommended, nil
	}
	level := Level(s)
	if _, ok := pdfSettings[level]; !ok {
		return "", fmt.Errorf("Invalid compression level %q, must be one of: less, recommended, extreme", s)
	}
	return level, nil
}

type Result struct {
	Data           []byte
	OriginalSize   int
	CompressedSize int
}

type Compressor struct {
	runner CommandRunner
}

func NewCompressor() *Compressor {
	return &Compressor{runner: &gsRunner{}}
}

// NewCompressorWithRunner is used by tests to stub out Ghostscript.
func NewCompressorWithRunner(runner CommandRunner) *Compressor {
	return &Compressor{runner: runner}
}

// Compress rewrites pdf at the given level and returns the compressed bytes
// together with both sizes. The caller decides what to do when the result is
// not actually smaller; Ghostscript can grow tiny files.
func (c *Compressor) Compress(pdf []byte, level Level) (*Result, error) {
	settings, ok := pdfSettings[level]
	if !ok {
		return nil, fmt.Errorf("Invalid compression level %q", level)
	}

	tmpDir, err := os.MkdirTemp("", "pdfpress")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	inPath := filepath.Join(tmpDir, "input.pdf")
	outPath := filepath.Join(tmpDir, "output.pdf")
	if err := os.WriteFile(inPath, pdf, 0o644); err != nil {
		return nil, err
	}

	args := []string{
		"-q",
		"-dNOPAUSE",
		"-dBATCH",
		"-dSAFER",
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + settings,
		"-sOutputFile=" + outPath,
		inPath,
	}
	if err := c.runner.Run("gs", args...); err != nil {
		return nil, fmt.Errorf("Ghostscript failed: %w", err)
	}

	compressed, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("Ghostscript produced no output: %w", err)
	}

	return &Result{
		Data:           compressed,
		OriginalSize:   len(pdf),
		CompressedSize: len(compressed),
	}, nil
}

// CompressedFilename derives the output filename for an input, e.g.
// "report.pdf" becomes "report_compressed.pdf".
func CompressedFilename(original string) string {
	ext := filepath.Ext(original)
	name := strings.TrimSuffix(original, ext)
	return name + "_compressed" + ext
}
