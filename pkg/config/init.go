// File: pkg/config/init.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// sampleConfig is written by InitProject as a starting point for customization.
var sampleConfig = Config{
	Model: "gpt-4.1-mini",
	SystemPrompt: "You are a React/Node.js expert. Focus on writing clean, modern TypeScript code. " +
		"When asked to create a new file, wrap the content in a markdown code block with the filename " +
		"as the title, e.g., ```filename.ts\\n...code...\\n```",
	IgnoreFiles: []string{
		"dist/",
		"build/",
		"coverage/",
	},
}

const sampleIgnoreFile = `# Add files or directories to ignore when gathering project context.
# Patterns are glob-style (e.g., *.log, tmp/, src/test.js)
*.tmp
temp/
`

// InitProject writes a sample manus.json and .manusignore into root. If either
// file already exists the initialization is refused and nothing is written.
func InitProject(root string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	configPath := filepath.Join(root, FileName)
	ignorePath := filepath.Join(root, IgnoreFileName)

	if fileExists(configPath) || fileExists(ignorePath) {
		logger.Warn("Configuration files already exist, aborting initialization",
			zap.String("config", configPath), zap.String("ignore", ignorePath))
		return nil
	}

	data, err := json.MarshalIndent(sampleConfig, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode sample configuration: %w", err)
	}
	if err := os.WriteFile(configPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	logger.Info("Created sample configuration file", zap.String("path", configPath))

	if err := os.WriteFile(ignorePath, []byte(sampleIgnoreFile), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", IgnoreFileName, err)
	}
	logger.Info("Created sample ignore file", zap.String("path", ignorePath))

	fmt.Fprintln(os.Stderr, "Initialization complete. Edit manus.json and .manusignore to customize your assistant.")
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
