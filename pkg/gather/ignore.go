// File: pkg/gather/ignore.go
package gather

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsidePath is returned when a path handed to the ignore check is not a
// descendant of the project root.
var ErrOutsidePath = errors.New("path is outside the project root")

// DefaultRules are the ignore patterns that are always in effect: version
// control, dependency and virtual-environment directories, bytecode caches,
// logs, local databases, environment files, and the tool's own files.
var DefaultRules = []string{
	".git/",
	"node_modules/",
	"venv/",
	"__pycache__/",
	"*.log",
	"*.sqlite3",
	"*.env",
	".manusignore",
	"manus.json",
	"manus",
}

// Ruleset is an ordered collection of ignore patterns. Evaluation is a pure
// OR over the rules; there is no negation or allow-listing.
type Ruleset []string

// IsIgnored reports whether path, relative to root, matches any rule.
// Evaluation short-circuits on the first matching pattern.
func (r Ruleset) IsIgnored(path, root string) (bool, error) {
	rel, err := relativeTo(path, root)
	if err != nil {
		return false, err
	}
	for _, pattern := range r {
		if Match(pattern, rel) {
			return true, nil
		}
	}
	return false, nil
}

// relativeTo expresses path relative to root using forward slashes, the
// canonical form every pattern is matched against.
func relativeTo(path, root string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutsidePath, path)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsidePath, path)
	}
	return rel, nil
}
