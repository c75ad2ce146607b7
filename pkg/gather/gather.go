// File: pkg/gather/gather.go

// Package gather walks a project tree, filters it through glob-style ignore
// rules and binary/size checks, and renders the surviving files into one
// delimited context block for prompt construction.
package gather

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MaxFileRunes caps the decoded length of a single file. Anything larger is
// assumed to be a minified bundle or a log that slipped past the extension
// filter and is skipped.
const MaxFileRunes = 100000

// binaryExtensions lists extensions that are never worth trying to decode.
var binaryExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bin":  true,
	".zip":  true,
	".tar":  true,
	".gz":   true,
	".ico":  true,
}

// Gather enumerates every regular file under root, applies the ignore rules
// and the binary/size filters, and returns a Report of included entries and
// per-file skip reasons. Ignored directories are pruned without descending.
//
// The walk is lexical, so repeated runs over an unchanged tree produce an
// identical Report. Unreadable files are warned about and skipped; only a
// failure on the root itself aborts the scan.
func Gather(root string, rules Ruleset, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	report := &Report{}
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == absRoot {
			return nil
		}

		rel, relErr := relativeTo(path, absRoot)
		if relErr != nil {
			logger.Warn("Skipping path outside project root", zap.String("path", path), zap.Error(relErr))
			return nil
		}

		ignored, igErr := rules.IsIgnored(path, absRoot)
		if igErr != nil {
			logger.Warn("Failed to evaluate ignore rules", zap.String("path", path), zap.Error(igErr))
			return nil
		}

		if d.IsDir() {
			if ignored {
				logger.Debug("Pruning ignored directory", zap.String("path", rel))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if ignored {
			report.Skipped = append(report.Skipped, Skipped{Path: rel, Reason: SkipIgnored})
			return nil
		}
		if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
			report.Skipped = append(report.Skipped, Skipped{Path: rel, Reason: SkipBinaryExt})
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warn("Could not read file", zap.String("path", rel), zap.Error(readErr))
			report.Skipped = append(report.Skipped, Skipped{Path: rel, Reason: SkipReadError})
			return nil
		}
		if !utf8.Valid(content) {
			report.Skipped = append(report.Skipped, Skipped{Path: rel, Reason: SkipNonText})
			return nil
		}
		if utf8.RuneCount(content) > MaxFileRunes {
			report.Skipped = append(report.Skipped, Skipped{Path: rel, Reason: SkipTooLarge})
			return nil
		}

		report.Entries = append(report.Entries, Entry{Path: rel, Content: string(content)})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk project tree: %w", walkErr)
	}

	logger.Debug("Completed project scan",
		zap.Int("included", len(report.Entries)),
		zap.Int("skipped", len(report.Skipped)))
	return report, nil
}
