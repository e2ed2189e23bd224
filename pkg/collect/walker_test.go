// File: pkg/collect/walker_test.go
package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeTestFile creates path (and parent directories) with the given content.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestClassifier(folders, patterns, selfNames []string) *Classifier {
	return NewClassifier(NewRules(folders, patterns, zap.NewNop()), selfNames, zap.NewNop())
}

func TestWalkCollectsInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.txt"), "b")
	writeTestFile(t, filepath.Join(root, "a.txt"), "a")
	writeTestFile(t, filepath.Join(root, "src", "main.txt"), "hello")

	c := newTestClassifier(nil, nil, nil)
	candidates, stats, err := Walk(root, c, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "b.txt", "src/main.txt"}, candidates)
	assert.Zero(t, stats.SkippedFiles)
	assert.Zero(t, stats.PrunedDirs)
}

func TestWalkPrunesIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "src", "main.txt"), "hello")
	writeTestFile(t, filepath.Join(root, "build", "cache.bin"), "junk")
	writeTestFile(t, filepath.Join(root, "build", "deep", "nested.txt"), "junk")

	c := newTestClassifier([]string{"build"}, nil, nil)
	candidates, stats, err := Walk(root, c, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"src/main.txt"}, candidates)
	assert.Equal(t, 1, stats.PrunedDirs, "the nested directory is never visited")
}

func TestWalkPrunesAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a", "b", "node_modules", "pkg", "index.js"), "x")
	writeTestFile(t, filepath.Join(root, "a", "b", "keep.txt"), "keep")

	c := newTestClassifier([]string{"node_modules"}, nil, nil)
	candidates, _, err := Walk(root, c, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"a/b/keep.txt"}, candidates)
}

func TestWalkSkipsPatternMatchesEverywhere(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "notes.log"), "x")
	writeTestFile(t, filepath.Join(root, "src", "notes.log"), "x")
	writeTestFile(t, filepath.Join(root, "src", "main.txt"), "hello")

	c := newTestClassifier(nil, []string{"*.log"}, nil)
	candidates, stats, err := Walk(root, c, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"src/main.txt"}, candidates)
	assert.Equal(t, 2, stats.SkippedFiles)
}

func TestWalkDoesNotPruneRootByName(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "build")
	writeTestFile(t, filepath.Join(root, "main.txt"), "hello")

	c := newTestClassifier([]string{"build"}, nil, nil)
	candidates, _, err := Walk(root, c, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"main.txt"}, candidates)
}

func TestWalkExcludesSelfNames(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, DefaultOutputName), "previous run")
	writeTestFile(t, filepath.Join(root, DefaultConfigName), "[FOLDERS]")
	writeTestFile(t, filepath.Join(root, "main.txt"), "hello")

	c := newTestClassifier(nil, nil, []string{DefaultOutputName, DefaultConfigName})
	candidates, stats, err := Walk(root, c, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"main.txt"}, candidates)
	assert.Equal(t, 2, stats.SkippedFiles)
}

func TestWalkContinuesPastUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	writeTestFile(t, filepath.Join(locked, "hidden.txt"), "x")
	writeTestFile(t, filepath.Join(root, "visible.txt"), "hello")

	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	c := newTestClassifier(nil, nil, nil)
	candidates, _, err := Walk(root, c, zap.NewNop())
	require.NoError(t, err, "an unreadable directory must not abort the walk")

	assert.Equal(t, []string{"visible.txt"}, candidates)
}
