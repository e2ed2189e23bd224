// File: pkg/collect/tree.go
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// RenderTree renders a box-drawing tree of the scan root showing only the
// entries a collection run would visit: pruned directories and skipped files
// are omitted. The result is written to a separate file by the caller and is
// never part of the combined output document.
func RenderTree(root string, c *Classifier, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve scan root %q: %w", root, err)
	}

	var tree strings.Builder
	tree.WriteString(filepath.Base(absRoot) + "/\n")

	subtree := renderSubtree(absRoot, c, "", logger)
	if subtree != "" {
		tree.WriteString(subtree)
		tree.WriteString("\n")
	}
	return tree.String(), nil
}

// renderSubtree builds the tree lines for one directory. Unreadable
// directories render nothing, matching the walker's pruning behavior.
func renderSubtree(directory string, c *Classifier, prefix string, logger *zap.Logger) string {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree rendering",
			zap.String("directory", directory),
			zap.Error(err))
		return ""
	}

	// Directories first, then files, alphabetically within each group.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	visible := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() {
			if !c.PruneDir(entry.Name()) {
				visible = append(visible, entry)
			}
		} else if c.IncludeFile(entry.Name()) {
			visible = append(visible, entry)
		}
	}

	var output []string
	for i, entry := range visible {
		connector := "├── "
		extension := "│   "
		if i == len(visible)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))
			subtree := renderSubtree(filepath.Join(directory, entry.Name()), c, prefix+extension, logger)
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, prefix+connector+entry.Name())
		}
	}

	return strings.Join(output, "\n")
}
