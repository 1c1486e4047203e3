// Package hints produces the advisory output printed after an install:
// search-path guidance and a suggested Waybar module. Nothing here mutates
// the system or aborts the pipeline.
package hints

import (
	"fmt"
	"path/filepath"
)

// OnPath reports whether dir is one of the entries of searchPath. Entries are
// compared whole after cleaning, so /home/u/.local/bin2 does not match
// /home/u/.local/bin.
func OnPath(dir string, searchPath []string) bool {
	want := filepath.Clean(dir)
	for _, entry := range searchPath {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == want {
			return true
		}
	}
	return false
}

// PathAdvice returns instructions for adding dir to PATH, or "" when dir is
// already on it.
func PathAdvice(dir string, searchPath []string) string {
	if OnPath(dir, searchPath) {
		return ""
	}
	return fmt.Sprintf("%s is not in your PATH.\nAdd this line to your shell profile (~/.bashrc, ~/.zshrc):\n\n  export PATH=\"%s:$PATH\"", dir, dir)
}
