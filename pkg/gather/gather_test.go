package gather

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func entryPaths(r *Report) []string {
	paths := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		paths = append(paths, e.Path)
	}
	return paths
}

func skipFor(r *Report, rel string) (SkipReason, bool) {
	for _, s := range r.Skipped {
		if s.Path == rel {
			return s.Reason, true
		}
	}
	return "", false
}

func TestGather_DefaultRulesScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", "print('hello')\n")
	writeFile(t, root, "node_modules/x.js", "module.exports = {}\n")
	writeFile(t, root, ".git/HEAD", "ref: refs/heads/main\n")
	writeFile(t, root, "notes.log", "log line\n")

	report, err := Gather(root, Ruleset(DefaultRules), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.py"}, entryPaths(report))

	block := report.Render()
	assert.Contains(t, block, "--- FILE: a.py ---")
	assert.NotContains(t, block, "x.js")
	assert.NotContains(t, block, "HEAD")
	assert.NotContains(t, block, "notes.log")
}

func TestGather_OneEntryPerSurvivingFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "b.go", "package b\n")
	writeFile(t, root, "sub/c.go", "package c\n")
	writeFile(t, root, "sub/deep/d.go", "package d\n")

	report, err := Gather(root, nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.go", "b.go", "sub/c.go", "sub/deep/d.go"}, entryPaths(report))
	assert.Empty(t, report.Skipped)
}

func TestGather_SizeThreshold(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.txt", strings.Repeat("a", 150000))
	writeFile(t, root, "almost.txt", strings.Repeat("a", 99999))

	report, err := Gather(root, Ruleset(DefaultRules), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"almost.txt"}, entryPaths(report))
	reason, ok := skipFor(report, "big.txt")
	require.True(t, ok)
	assert.Equal(t, SkipTooLarge, reason)
}

func TestGather_SizeThresholdCountsRunes(t *testing.T) {
	root := t.TempDir()
	// 100,000 three-byte runes: 300,000 bytes but exactly at the rune cap.
	writeFile(t, root, "runes.txt", strings.Repeat("日", MaxFileRunes))

	report, err := Gather(root, nil, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"runes.txt"}, entryPaths(report))
}

func TestGather_BinaryExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "logo.png", "not really an image")
	writeFile(t, root, "archive.ZIP", "not really a zip")
	writeFile(t, root, "main.go", "package main\n")

	report, err := Gather(root, nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go"}, entryPaths(report))
	reason, ok := skipFor(report, "logo.png")
	require.True(t, ok)
	assert.Equal(t, SkipBinaryExt, reason)
	reason, ok = skipFor(report, "archive.ZIP")
	require.True(t, ok)
	assert.Equal(t, SkipBinaryExt, reason)
}

func TestGather_NonTextContent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "blob.dat")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x01, 0x80}, 0o644))

	report, err := Gather(root, nil, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Empty(t, report.Entries)
	reason, ok := skipFor(report, "blob.dat")
	require.True(t, ok)
	assert.Equal(t, SkipNonText, reason)
}

func TestGather_IgnoredDirectoryIsPruned(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/deep/nested/x.js", "x")
	writeFile(t, root, "a.py", "a")

	report, err := Gather(root, Ruleset(DefaultRules), zaptest.NewLogger(t))
	require.NoError(t, err)

	// The directory is pruned, so files under it never show up, not even as
	// skipped records.
	assert.Equal(t, []string{"a.py"}, entryPaths(report))
	_, ok := skipFor(report, "node_modules/deep/nested/x.js")
	assert.False(t, ok)
}

func TestGather_IgnoredFileRecordedWithReason(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes.log", "log line")

	report, err := Gather(root, Ruleset(DefaultRules), zaptest.NewLogger(t))
	require.NoError(t, err)

	reason, ok := skipFor(report, "notes.log")
	require.True(t, ok)
	assert.Equal(t, SkipIgnored, reason)
}

func TestGather_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "sub/b.go", "package b\n")
	writeFile(t, root, "sub/c.md", "# notes\n")

	first, err := Gather(root, Ruleset(DefaultRules), zaptest.NewLogger(t))
	require.NoError(t, err)
	second, err := Gather(root, Ruleset(DefaultRules), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, first.Render(), second.Render())
}

func TestGather_MissingRoot(t *testing.T) {
	_, err := Gather(filepath.Join(t.TempDir(), "does-not-exist"), nil, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestRender_Format(t *testing.T) {
	report := &Report{Entries: []Entry{
		{Path: "a.py", Content: "print('a')\n"},
		{Path: "sub/b.py", Content: "print('b')\n"},
	}}

	want := "--- FILE: a.py ---\nprint('a')\n\n--- END FILE: a.py ---\n" +
		"\n" +
		"--- FILE: sub/b.py ---\nprint('b')\n\n--- END FILE: sub/b.py ---\n"
	assert.Equal(t, want, report.Render())
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", (&Report{}).Render())
}

func TestRender_EntryCountMatchesMarkers(t *testing.T) {
	report := &Report{}
	for i := 0; i < 5; i++ {
		report.Entries = append(report.Entries, Entry{
			Path:    fmt.Sprintf("f%d.txt", i),
			Content: "x",
		})
	}
	block := report.Render()
	assert.Equal(t, 5, strings.Count(block, "--- FILE: "))
	assert.Equal(t, 5, strings.Count(block, "--- END FILE: "))
}
