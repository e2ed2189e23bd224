// File: pkg/collect/execute.go
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Execute runs the full collection pipeline: load ignore rules, walk the
// scan root, and assemble the combined output file. Per-file and
// per-directory problems are recovered and reported; only a destination the
// tool cannot create or write makes Execute fail.
func Execute(args *Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	absRoot, err := filepath.Abs(args.Directory)
	if err != nil {
		return fmt.Errorf("failed to resolve scan root %q: %w", args.Directory, err)
	}
	logger.Info("Starting collection", zap.String("root", absRoot))

	rules := LoadRules(resolveInRoot(absRoot, args.ConfigFile), logger)

	outputPath := resolveInRoot(absRoot, args.Output)
	selfNames := []string{filepath.Base(outputPath), filepath.Base(args.ConfigFile)}
	treePath := ""
	if args.Tree != "" {
		treePath = resolveInRoot(absRoot, args.Tree)
		selfNames = append(selfNames, filepath.Base(treePath))
	}
	classifier := NewClassifier(rules, selfNames, logger)

	candidates, stats, err := Walk(absRoot, classifier, logger)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		logger.Warn("No files to collect after filtering", zap.String("root", absRoot))
	}

	included, failed, err := Assemble(absRoot, candidates, outputPath, logger)
	if err != nil {
		return err
	}

	if treePath != "" {
		if err := writeTree(absRoot, treePath, classifier, logger); err != nil {
			return err
		}
	}

	logger.Info("Collection complete",
		zap.String("output", outputPath),
		zap.Int("included", included),
		zap.Int("failed", failed),
		zap.Int("skippedFiles", stats.SkippedFiles),
		zap.Int("prunedDirs", stats.PrunedDirs),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// writeTree renders the pruned directory tree and writes it to treePath.
func writeTree(absRoot, treePath string, c *Classifier, logger *zap.Logger) error {
	tree, err := RenderTree(absRoot, c, logger)
	if err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	if err := os.WriteFile(treePath, []byte(tree), 0o644); err != nil {
		return fmt.Errorf("failed to write tree file %q: %w", treePath, err)
	}
	logger.Info("Wrote directory tree", zap.String("tree", treePath))
	return nil
}

// resolveInRoot places a relative destination inside the scan root;
// absolute destinations are used as given.
func resolveInRoot(absRoot, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(absRoot, path)
}
