package compress

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGhostscript writes output bytes to whatever -sOutputFile points at.
type fakeGhostscript struct {
	output   []byte
	err      error
	lastArgs []string
}

func (f *fakeGhostscript) Run(name string, args ...string) error {
	f.lastArgs = append([]string{name}, args...)
	if f.err != nil {
		return f.err
	}
	for _, arg := range args {
		if path, ok := strings.CutPrefix(arg, "-sOutputFile="); ok {
			return os.WriteFile(path, f.output, 0o644)
		}
	}
	return errors.New("no -sOutputFile argument")
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]Level{
		"":            LevelRecommended,
		"less":        LevelLess,
		"recommended": LevelRecommended,
		"extreme":     LevelExtreme,
	} {
		level, err := ParseLevel(s)
		require.NoError(t, err)
		require.Equal(t, want, level)
	}

	_, err := ParseLevel("maximum")
	require.Error(t, err)
}

func TestCompress(t *testing.T) {
	gs := &fakeGhostscript{output: []byte("small")}
	compressor := NewCompressorWithRunner(gs)

	result, err := compressor.Compress([]byte("a much bigger input pdf"), LevelRecommended)
	require.NoError(t, err)
	require.Equal(t, []byte("small"), result.Data)
	require.Equal(t, 23, result.OriginalSize)
	require.Equal(t, 5, result.CompressedSize)

	require.Contains(t, gs.lastArgs, "-dPDFSETTINGS=/ebook")
	require.Contains(t, gs.lastArgs, "-sDEVICE=pdfwrite")
}

func TestCompressLevelSettings(t *testing.T) {
	for level, settings := range map[Level]string{
		LevelLess:    "-dPDFSETTINGS=/prepress",
		LevelExtreme: "-dPDFSETTINGS=/screen",
	} {
		gs := &fakeGhostscript{output: []byte("out")}
		_, err := NewCompressorWithRunner(gs).Compress([]byte("in"), level)
		require.NoError(t, err)
		require.Contains(t, gs.lastArgs, settings)
	}
}

func TestCompressGhostscriptFailure(t *testing.T) {
	gs := &fakeGhostscript{err: errors.New("exit status 1")}
	compressor := NewCompressorWithRunner(gs)

	_, err := compressor.Compress([]byte("input"), LevelRecommended)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Ghostscript failed")
}

func TestCompressInvalidLevel(t *testing.T) {
	compressor := NewCompressorWithRunner(&fakeGhostscript{})
	_, err := compressor.Compress([]byte("input"), Level("maximum"))
	require.Error(t, err)
}

func TestCompressedFilename(t *testing.T) {
	require.Equal(t, "report_compressed.pdf", CompressedFilename("report.pdf"))
	require.Equal(t, "document_compressed", CompressedFilename("document"))
	require.Equal(t, "a.b_compressed.pdf", CompressedFilename("a.b.pdf"))
}
