// File: pkg/gather/types.go
package gather

// SkipReason classifies why a discovered file was left out of the context block.
type SkipReason string

const (
	SkipIgnored   SkipReason = "ignored"          // matched an ignore pattern
	SkipBinaryExt SkipReason = "binary-extension" // extension on the binary deny list
	SkipNonText   SkipReason = "non-text"         // content did not decode as UTF-8
	SkipTooLarge  SkipReason = "too-large"        // decoded content over the size cap
	SkipReadError SkipReason = "read-error"       // file could not be read
)

// Entry is one file that survived filtering: its slash-separated path relative
// to the project root and its full text content.
type Entry struct {
	Path    string
	Content string
}

// Skipped records a file that was discovered but excluded, and why.
type Skipped struct {
	Path   string
	Reason SkipReason
}

// Report is the outcome of one scan. Entries appear in discovery order;
// Skipped lists every excluded file so callers can see why each one was
// dropped rather than inferring it from absence.
type Report struct {
	Entries []Entry
	Skipped []Skipped
}
