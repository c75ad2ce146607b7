// Manus is a context-aware developer assistant: it builds a textual snapshot
// of a project's source tree, merges it with a user prompt, and streams the
// chat-completion reply back.
//
// Example Usage:
//
//	# Ask a question about the current project
//	manus "Explain the config loading flow"
//
//	# Initialize sample configuration files
//	manus --init
//
//	# Inspect the context block without calling the model
//	manus --dry-run
package main

import (
	"os"

	"manus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
