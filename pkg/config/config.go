// File: pkg/config/config.go

// Package config loads the effective run configuration: built-in defaults
// overlaid with the project's manus.json and extended with .manusignore
// patterns. Missing files are fine; present-but-broken files degrade to
// defaults with a warning.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"manus/pkg/gather"

	"go.uber.org/zap"
)

const (
	// FileName is the project configuration file expected at the root.
	FileName = "manus.json"
	// IgnoreFileName is the per-project ignore declaration file.
	IgnoreFileName = ".manusignore"
)

// Config is the effective configuration for one run. It is built once by
// Load and not mutated afterwards.
type Config struct {
	Model        string   `json:"model"`
	SystemPrompt string   `json:"system_prompt"`
	IgnoreFiles  []string `json:"ignore_files"`
}

// defaultSystemPrompt is the built-in assistant persona.
const defaultSystemPrompt = "You are a world-class full-stack developer assistant named Manus. " +
	"Your goal is to help the user with their coding tasks. You are working on a project described " +
	"by the following file contents. Analyze the context and provide concise, actionable code or " +
	"advice. If you are asked to write code, only output the code block and nothing else."

// Default returns the built-in base configuration. Callers receive a fresh
// copy; the defaults themselves are never shared or mutated.
func Default() Config {
	return Config{
		Model:        "gpt-4.1-mini",
		SystemPrompt: defaultSystemPrompt,
		IgnoreFiles:  append([]string(nil), gather.DefaultRules...),
	}
}

// fileConfig mirrors the recognized keys of manus.json. Pointer fields
// distinguish "key absent" from "key present with an empty value": a present
// key replaces the default wholesale.
type fileConfig struct {
	Model        *string  `json:"model"`
	SystemPrompt *string  `json:"system_prompt"`
	IgnoreFiles  []string `json:"ignore_files"`
}

// Load builds the effective configuration for root. It overlays manus.json
// onto the defaults (model and system_prompt replace, ignore_files append),
// then appends the patterns declared in .manusignore, and finally deduplicates
// the merged ignore list in first-seen order.
//
// Load never fails: absent files are silent, and files that exist but cannot
// be parsed or read produce a warning and are skipped.
func Load(root string, logger *zap.Logger) Config {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := Default()
	var fromConfig, fromIgnoreFile []string

	configPath := filepath.Join(root, FileName)
	if data, err := os.ReadFile(configPath); err == nil {
		var overlay fileConfig
		if jsonErr := json.Unmarshal(data, &overlay); jsonErr != nil {
			logger.Warn("Could not parse project configuration, using defaults",
				zap.String("path", configPath), zap.Error(jsonErr))
		} else {
			if overlay.Model != nil {
				cfg.Model = *overlay.Model
			}
			if overlay.SystemPrompt != nil {
				cfg.SystemPrompt = *overlay.SystemPrompt
			}
			fromConfig = overlay.IgnoreFiles
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Could not read project configuration, using defaults",
			zap.String("path", configPath), zap.Error(err))
	}

	ignorePath := filepath.Join(root, IgnoreFileName)
	if data, err := os.ReadFile(ignorePath); err == nil {
		fromIgnoreFile = parseIgnoreLines(string(data))
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Could not read ignore file", zap.String("path", ignorePath), zap.Error(err))
	}

	cfg.IgnoreFiles = mergeIgnoreLists(cfg.IgnoreFiles, fromConfig, fromIgnoreFile)
	return cfg
}

// parseIgnoreLines extracts patterns from ignore-file content: one pattern
// per line, whitespace trimmed, blank lines and '#' comments dropped.
func parseIgnoreLines(content string) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// mergeIgnoreLists concatenates the pattern lists in order and drops
// duplicates, keeping the first occurrence of each pattern.
func mergeIgnoreLists(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range lists {
		for _, pattern := range list {
			if _, ok := seen[pattern]; ok {
				continue
			}
			seen[pattern] = struct{}{}
			merged = append(merged, pattern)
		}
	}
	return merged
}
