package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	exists, err := Exists(path)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	exists, err = Exists(path)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestWriteIfDifferent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	require.NoError(t, WriteIfDifferent(path, "one"))
	firstInfo, err := os.Stat(path)
	require.NoError(t, err)

	// Same contents, write is skipped
	require.NoError(t, WriteIfDifferent(path, "one"))
	secondInfo, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, firstInfo.ModTime(), secondInfo.ModTime())

	require.NoError(t, WriteIfDifferent(path, "two"))
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "two", string(contents))
}
