// File: pkg/collect/reader.go
package collect

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadFileText reads the file at path and returns its content as a string.
// Valid UTF-8 bytes are used as-is; anything else is re-decoded as Latin-1,
// which maps every byte to a code point and therefore always yields text.
// A file with invalid UTF-8 is included via the fallback, never dropped.
func ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("latin-1 fallback decode failed: %w", err)
	}
	return string(decoded), nil
}

// readRecord reads one candidate into a FileRecord. Read failures become a
// record carrying the reason; the caller emits a placeholder block for it.
func readRecord(absPath, relPath string) FileRecord {
	content, err := ReadFileText(absPath)
	if err != nil {
		return FileRecord{RelPath: relPath, Err: err.Error()}
	}
	return FileRecord{RelPath: relPath, Content: content}
}
