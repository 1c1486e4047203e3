// Package bootstrap writes tasuki's default configuration on first install.
package bootstrap

import (
	"github.com/cockroachdb/errors"
	"io/fs"
	"os"
	"path/filepath"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
)

// DefaultConfig is written when no config file exists yet.
const DefaultConfig = `# tasuki configuration

[general]
default_view = "today"
theme = "omarchy"

[waybar]
tooltip_scope = "overdue_today"

[backends.local]
enabled = true
# path = "~/.tasuki/todo.txt"

[backends.obsidian]
enabled = false
vault_path = "~/Documents/Obsidian"
inbox_file = "Inbox.md"
ignore_folders = [".obsidian", ".trash", ".git"]
`

// EnsureConfig creates path with DefaultConfig unless it already exists.
// It reports whether a file was created. An existing file is never opened for
// writing, so repeated calls leave user edits intact.
func EnsureConfig(path string) (bool, error) {
	return CreateIfAbsent(path, []byte(DefaultConfig))
}

// CreateIfAbsent writes data to path only if nothing is there. The existence
// check and the create are one O_EXCL open.
func CreateIfAbsent(path string, data []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, failure.Mark(errors.Wrapf(err, "create %s", filepath.Dir(path)), failure.ErrFilesystemWrite)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		logger.Debug("[DEBUG] %s already exists, leaving it untouched\n", path)
		return false, nil
	}
	if err != nil {
		return false, failure.Mark(errors.Wrapf(err, "create %s", path), failure.ErrFilesystemWrite)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(path)
		return false, failure.Mark(errors.Wrapf(err, "write %s", path), failure.ErrFilesystemWrite)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return false, failure.Mark(errors.Wrapf(err, "write %s", path), failure.ErrFilesystemWrite)
	}
	return true, nil
}
