// File: pkg/collect/types.go
package collect

// Default locations, relative to the scan root.
const (
	DefaultOutputName = "collected_code.txt" // Combined output file written into the scan root.
	DefaultConfigName = ".collectignore"     // Optional ignore-config file looked up in the scan root.
)

// Arguments holds the configuration options for a collection run.
type Arguments struct {
	Directory  string // Directory to scan; the scan root.
	Output     string // Destination path for the combined output file.
	ConfigFile string // Name of the ignore-config file, resolved in the scan root.
	Tree       string // Optional destination for a directory tree file; empty disables it.
	Verbose    bool   // If true, enables per-entry debug logging.
}

// DefaultArguments returns the arguments for a plain run from the current
// directory, matching the zero-flag invocation.
func DefaultArguments() *Arguments {
	return &Arguments{
		Directory:  ".",
		Output:     DefaultOutputName,
		ConfigFile: DefaultConfigName,
	}
}

// FileRecord represents one file block handed from the reader to the
// assembler. Exactly one of Content and Err is meaningful.
type FileRecord struct {
	RelPath string // Path relative to the scan root, forward slashes.
	Content string // Decoded file content when the read succeeded.
	Err     string // Reason text when the file could not be read.
}

// WalkStats counts what the walker filtered out.
type WalkStats struct {
	SkippedFiles int // Files rejected by pattern match or self-exclusion.
	PrunedDirs   int // Directories never descended into.
}
