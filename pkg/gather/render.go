// File: pkg/gather/render.go
package gather

import (
	"fmt"
	"strings"
)

// Render concatenates all entries into the context block consumed by the
// prompt builder. Each file is wrapped in matching start and end markers
// carrying its relative path; blocks are joined with a blank line.
func (r *Report) Render() string {
	blocks := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		blocks = append(blocks, fmt.Sprintf("--- FILE: %s ---\n%s\n--- END FILE: %s ---\n", e.Path, e.Content, e.Path))
	}
	return strings.Join(blocks, "\n")
}
