// File: pkg/collect/reader_test.go
package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileTextUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utf8.txt")
	require.NoError(t, os.WriteFile(path, []byte("héllo wörld\n"), 0o644))

	content, err := ReadFileText(path)
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld\n", content)
}

func TestReadFileTextLatin1Fallback(t *testing.T) {
	// "café" encoded as Latin-1: 0xE9 alone is not valid UTF-8.
	raw := []byte{'c', 'a', 'f', 0xE9, '\n'}
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	content, err := ReadFileText(path)
	require.NoError(t, err, "invalid UTF-8 must fall back, not fail")
	assert.Equal(t, "café\n", content)
}

func TestReadFileTextMissingFile(t *testing.T) {
	_, err := ReadFileText(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestReadRecordCarriesFailureReason(t *testing.T) {
	rec := readRecord(filepath.Join(t.TempDir(), "nope.txt"), "nope.txt")

	assert.Equal(t, "nope.txt", rec.RelPath)
	assert.NotEmpty(t, rec.Err)
	assert.Empty(t, rec.Content)
}

func TestReadRecordSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	rec := readRecord(path, "ok.txt")

	assert.Equal(t, "ok.txt", rec.RelPath)
	assert.Equal(t, "hello", rec.Content)
	assert.Empty(t, rec.Err)
}
