// File: pkg/remote/remote.go

// Package remote makes a remote repository usable as a project root by
// cloning it into a temporary directory.
package remote

import (
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"go.uber.org/zap"
)

// CloneTemp shallow-clones url into a fresh temporary directory and returns
// the directory path together with a cleanup function that removes it. When
// GH_TOKEN is set it is used as a basic-auth credential for private repos.
func CloneTemp(url string, logger *zap.Logger) (string, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tempDir, err := os.MkdirTemp("", "manus-clone-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(tempDir); err != nil {
			logger.Warn("Failed to remove clone directory", zap.String("dir", tempDir), zap.Error(err))
		}
	}

	opts := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		logger.Debug("Using GH_TOKEN for repository authentication")
		opts.Auth = &http.BasicAuth{
			Username: "git", // can be anything but not empty
			Password: token,
		}
	}

	if _, err := git.PlainClone(tempDir, false, opts); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to clone repository: %w", err)
	}

	logger.Debug("Cloned repository", zap.String("url", url), zap.String("dir", tempDir))
	return tempDir, cleanup, nil
}
