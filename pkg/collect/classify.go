// File: pkg/collect/classify.go
package collect

import (
	"go.uber.org/zap"
)

// Classifier decides, per directory entry, whether the walker descends into
// a directory and whether a file becomes a candidate. It also enforces
// self-exclusion: the tool's own output, config, and tree files are never
// ingested, regardless of where identically named files appear.
type Classifier struct {
	rules     *Rules
	selfNames map[string]struct{}
	logger    *zap.Logger
}

// NewClassifier builds a classifier over the given rule set. selfNames are
// base filenames to exclude unconditionally (output file, config file).
func NewClassifier(rules *Rules, selfNames []string, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Classifier{
		rules:     rules,
		selfNames: make(map[string]struct{}, len(selfNames)),
		logger:    logger,
	}
	for _, name := range selfNames {
		if name != "" && name != "." {
			c.selfNames[name] = struct{}{}
		}
	}
	return c
}

// PruneDir reports whether the walker must skip the directory with the given
// base name without descending into it.
func (c *Classifier) PruneDir(name string) bool {
	if c.rules.IgnoresFolder(name) {
		c.logger.Debug("Pruning ignored directory", zap.String("directory", name))
		return true
	}
	return false
}

// IncludeFile reports whether the file with the given base name becomes a
// collection candidate.
func (c *Classifier) IncludeFile(name string) bool {
	if _, ok := c.selfNames[name]; ok {
		c.logger.Debug("Excluding tool-owned file", zap.String("file", name))
		return false
	}
	if matched, pattern := c.rules.MatchesFile(name); matched {
		c.logger.Debug("Skipping file matching ignore pattern",
			zap.String("file", name),
			zap.String("pattern", pattern))
		return false
	}
	return true
}
