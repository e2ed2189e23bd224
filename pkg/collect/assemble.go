// File: pkg/collect/assemble.go
package collect

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// delimiterWidth is the length of the '=' fence lines around each file
// header. The fence plus the "File: " prefix makes block boundaries
// unambiguous against plausible file content.
const delimiterWidth = 70

var fenceLine = strings.Repeat("=", delimiterWidth)

// Assemble reads each candidate in traversal order and writes one delimited
// block per candidate to outputPath. The destination is created in truncate
// mode, so a prior run's output is fully replaced. Only failures to create
// or write the destination are returned as errors; unreadable candidates
// become placeholder blocks and count toward failed.
func Assemble(root string, candidates []string, outputPath string, logger *zap.Logger) (included, failed int, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create output file %q: %w", outputPath, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %q: %w", outputPath, closeErr)
		}
	}()

	writer := bufio.NewWriter(out)
	for _, rel := range candidates {
		record := readRecord(filepath.Join(root, filepath.FromSlash(rel)), rel)
		if record.Err != "" {
			failed++
			logger.Warn("Could not read file, emitting placeholder",
				zap.String("file", rel),
				zap.String("reason", record.Err))
		} else {
			included++
			logger.Info("Processing file", zap.String("file", rel))
		}

		if writeErr := writeBlock(writer, record); writeErr != nil {
			return included, failed, fmt.Errorf("failed to write output for %q: %w", rel, writeErr)
		}
	}

	if flushErr := writer.Flush(); flushErr != nil {
		return included, failed, fmt.Errorf("failed to flush output file %q: %w", outputPath, flushErr)
	}
	return included, failed, nil
}

// writeBlock emits one header+content block followed by a blank separator
// line. Content that does not end in a newline gets one, so the separator is
// always a visually blank line.
func writeBlock(w *bufio.Writer, record FileRecord) error {
	if _, err := fmt.Fprintf(w, "%s\nFile: %s\n%s\n", fenceLine, record.RelPath, fenceLine); err != nil {
		return err
	}

	if record.Err != "" {
		_, err := fmt.Fprintf(w, "[Could not read file: %s]\n\n", record.Err)
		return err
	}

	if _, err := w.WriteString(record.Content); err != nil {
		return err
	}
	if !strings.HasSuffix(record.Content, "\n") {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
