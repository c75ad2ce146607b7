// File: pkg/logging/logging.go

// Package logging builds the application logger. Diagnostics go to stderr and
// never share a stream with the context block or the streamed reply.
package logging

import (
	"log"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Setup builds the logger used across one run. Debug mode switches to the
// development config. Every run is stamped with a ULID so warnings emitted
// during a single scan can be correlated.
func Setup(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName": "manus",
		"runID":   NewRunID(),
	}

	return cfg.Build()
}

// NewRunID returns a fresh ULID identifying one invocation.
func NewRunID() string {
	return ulid.Make().String()
}

// Sync flushes the logger. Syncing a stderr that is neither a terminal nor a
// regular file fails with EINVAL on some platforms, so that case is skipped.
func Sync(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
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
