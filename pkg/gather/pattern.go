// File: pkg/gather/pattern.go
package gather

import (
	"regexp"
	"strings"
	"sync"
)

// Compiled pattern cache, keyed by glob text. Patterns repeat for every file in
// the tree, so each glob is translated and compiled at most once per process.
var (
	patternCacheMu sync.Mutex
	patternCache   = map[string]*regexp.Regexp{}
)

// Match reports whether relPath matches the ignore pattern.
//
// A trailing '/' marks a directory scope: the separator is stripped and the
// path matches if it equals the pattern or lives anywhere beneath it. The
// descendant check (pattern + "/*") runs for every pattern, directory-scoped
// or not, so "build" and "build/" behave alike for nested paths.
//
// Globbing is shell-style and anchored to the full relative path: '*' matches
// any run of characters including '/' (a deliberate simplification, there is
// no recursive '**' form), '?' matches exactly one character, and '[...]'
// character classes are supported. Matching is case-sensitive.
func Match(pattern, relPath string) bool {
	pattern = strings.TrimSuffix(pattern, "/")
	if globMatch(pattern, relPath) {
		return true
	}
	return globMatch(pattern+"/*", relPath)
}

func globMatch(pattern, s string) bool {
	patternCacheMu.Lock()
	re, ok := patternCache[pattern]
	if !ok {
		re, _ = regexp.Compile(translate(pattern))
		patternCache[pattern] = re
	}
	patternCacheMu.Unlock()
	if re == nil {
		return false
	}
	return re.MatchString(s)
}

// translate converts a glob pattern to an anchored regular expression.
// Unlike path.Match, '*' compiles to '.*' so it crosses path separators.
func translate(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(runes) && (runes[j] == '!' || runes[j] == '^') {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++ // first ']' in a class is literal
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				b.WriteString(`\[`) // unterminated class, treat '[' literally
				continue
			}
			class := strings.ReplaceAll(string(runes[i+1:j]), `\`, `\\`)
			switch {
			case strings.HasPrefix(class, "!"):
				class = "^" + class[1:]
			case strings.HasPrefix(class, "^"):
				class = `\^` + class[1:]
			}
			b.WriteString("[" + class + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return b.String()
}
