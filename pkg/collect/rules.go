// File: pkg/collect/rules.go
package collect

import (
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Rules is the immutable ignore-rule store: folder names pruned during
// traversal and filename patterns that exclude files. Build instances with
// NewRules, DefaultRules, or LoadRules; do not mutate after construction.
type Rules struct {
	folders  map[string]struct{}
	patterns []compiledPattern
}

// compiledPattern pairs a pattern line with its compiled form so matches can
// be reported in terms of the original text.
type compiledPattern struct {
	line string
	re   *regexp.Regexp
}

// NewRules builds a rule set from explicit folder names and glob patterns.
// Patterns that fail to compile are dropped with a warning; a bad pattern
// degrades coverage, it never aborts the run.
func NewRules(folders, patterns []string, logger *zap.Logger) *Rules {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Rules{folders: make(map[string]struct{}, len(folders))}
	for _, name := range folders {
		r.folders[name] = struct{}{}
	}

	for _, p := range patterns {
		re, err := globToRegexp(p)
		if err != nil {
			logger.Warn("Dropping unparsable ignore pattern",
				zap.String("pattern", p),
				zap.Error(err))
			continue
		}
		r.patterns = append(r.patterns, compiledPattern{line: p, re: re})
	}

	return r
}

// DefaultRules returns the built-in rule set used when no ignore-config file
// is present.
func DefaultRules(logger *zap.Logger) *Rules {
	return NewRules(defaultFolders, defaultPatterns, logger)
}

// LoadRules reads the ignore-config file at path. A missing file yields the
// built-in defaults; a present file fully replaces them, it is never merged.
//
// The format is line-oriented: blank lines and '#' comments are skipped,
// '[FOLDERS]' and '[PATTERNS]' headers (case-insensitive) select the active
// section, and every other non-empty line is added verbatim to that section.
// Lines before the first header, and lines under an unrecognized '[section]'
// header, are dropped. Malformed content never causes an error.
func LoadRules(path string, logger *zap.Logger) *Rules {
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Cannot read ignore-config file, using defaults",
				zap.String("file", path),
				zap.Error(err))
		} else {
			logger.Debug("No ignore-config file, using defaults", zap.String("file", path))
		}
		return DefaultRules(logger)
	}

	var folders, patterns []string
	var active *[]string

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.EqualFold(line, "[folders]"):
			active = &folders
		case strings.EqualFold(line, "[patterns]"):
			active = &patterns
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			logger.Warn("Unknown section in ignore-config file",
				zap.String("file", path),
				zap.String("section", line))
			active = nil
		default:
			if active != nil {
				*active = append(*active, line)
			}
		}
	}

	logger.Info("Loaded ignore-config file",
		zap.String("file", path),
		zap.Int("folders", len(folders)),
		zap.Int("patterns", len(patterns)))
	return NewRules(folders, patterns, logger)
}

// IgnoresFolder reports whether a directory with the given base name must be
// pruned. The comparison is exact and case-sensitive.
func (r *Rules) IgnoresFolder(name string) bool {
	_, ok := r.folders[name]
	return ok
}

// MatchesFile reports whether the given base filename matches any ignore
// pattern, and returns the first matching pattern line.
func (r *Rules) MatchesFile(name string) (bool, string) {
	for _, p := range r.patterns {
		if p.re.MatchString(name) {
			return true, p.line
		}
	}
	return false, ""
}
