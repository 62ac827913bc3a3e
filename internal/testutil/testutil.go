// Package testutil provides helpers for building dataset directories in tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MakeDir creates a fresh temp directory populated with the given entries.
// Names ending in "/" become empty subdirectories; all others become small
// regular files whose content is their own name.
func MakeDir(tb testing.TB, names ...string) string {
	tb.Helper()
	dir := tb.TempDir()
	Populate(tb, dir, names...)
	return dir
}

// Populate creates the given entries inside dir. See MakeDir for naming rules.
func Populate(tb testing.TB, dir string, names ...string) {
	tb.Helper()
	for _, name := range names {
		if sub, ok := strings.CutSuffix(name, "/"); ok {
			if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
				tb.Fatalf("mkdir %s: %v", sub, err)
			}
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}
	}
}

// Names returns the entry names currently in dir.
func Names(tb testing.TB, dir string) []string {
	tb.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		tb.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
