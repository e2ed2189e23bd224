// File: pkg/collect/walker.go
package collect

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// Walk traverses root depth-first and returns the candidate files in
// traversal order, as forward-slash paths relative to root. Pruned
// directories are never descended into, so large ignored trees cost nothing.
// Sibling order is the lexical order os.ReadDir yields, which makes repeated
// runs over an unchanged tree deterministic.
//
// An unreadable directory is logged and contributes nothing; it never aborts
// the walk. Only a root that cannot be resolved at all is an error.
func Walk(root string, c *Classifier, logger *zap.Logger) ([]string, WalkStats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var stats WalkStats
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to resolve scan root %q: %w", root, err)
	}

	var candidates []string
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: the subtree contributes zero files.
			logger.Warn("Skipping unreadable path during traversal",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path == absRoot {
				return nil // never prune the scan root by its own name
			}
			if c.PruneDir(d.Name()) {
				stats.PrunedDirs++
				return filepath.SkipDir
			}
			return nil
		}

		if !c.IncludeFile(d.Name()) {
			stats.SkippedFiles++
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			logger.Warn("Cannot relativize path, skipping",
				zap.String("path", path),
				zap.Error(relErr))
			stats.SkippedFiles++
			return nil
		}
		candidates = append(candidates, filepath.ToSlash(rel))
		return nil
	})
	if walkErr != nil {
		return candidates, stats, fmt.Errorf("traversal of %q failed: %w", absRoot, walkErr)
	}

	logger.Debug("Completed traversal",
		zap.String("root", absRoot),
		zap.Int("candidates", len(candidates)),
		zap.Int("skippedFiles", stats.SkippedFiles),
		zap.Int("prunedDirs", stats.PrunedDirs))
	return candidates, stats, nil
}
