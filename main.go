package main

import (
	"log"
	"os"
	"strings"

	"codecollect/cmd"
	"codecollect/pkg/logging"
	"codecollect/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, "codecollect", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		logging.Logger.Error("codecollect execution failed", zap.Error(err))
		syncLogger()
		os.Exit(1)
	}
	syncLogger()
}

// syncLogger flushes the logger. Syncing stderr returns EINVAL when it is
// neither a terminal nor a regular file, so those errors are not reported.
func syncLogger() {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logging.Logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
