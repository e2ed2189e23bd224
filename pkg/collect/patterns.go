// File: pkg/collect/patterns.go
package collect

import (
	"regexp"
	"strings"
)

// globToRegexp translates a filename glob into an anchored, case-insensitive
// regular expression. Supported glob syntax: '*' matches any run of
// characters, '?' a single character, '[...]' a character class ('[!...]'
// negates it). The pattern matches the bare filename only; path separators
// receive no special treatment.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?i)^`)

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				// Unterminated class, treat the bracket literally.
				b.WriteString(`\[`)
				continue
			}
			class := pattern[i+1 : end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + class + "]")
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`$`)
	return regexp.Compile(b.String())
}

// classEnd returns the index of the ']' closing the character class that
// opens at pattern[start], or -1 if the class is unterminated. A ']' in the
// first position of the class body is a literal member, not the terminator.
func classEnd(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && (pattern[i] == '!' || pattern[i] == '^') {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for ; i < len(pattern); i++ {
		if pattern[i] == ']' {
			return i
		}
	}
	return -1
}
