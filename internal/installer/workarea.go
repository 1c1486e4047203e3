package installer

import (
	"github.com/cockroachdb/errors"
	"os"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
)

// WorkArea is a temporary directory that lives for one fn call.
type WorkArea struct {
	Dir string
}

// WithWorkArea creates a temporary directory under parent (os.TempDir when
// empty), runs fn inside it and removes it on every return path, including
// errors and panics.
func WithWorkArea(parent string, fn func(wa WorkArea) error) error {
	dir, err := os.MkdirTemp(parent, "tasuki-install-*")
	if err != nil {
		return failure.Mark(errors.Wrap(err, "create work area"), failure.ErrFilesystemWrite)
	}
	logger.Debug("[DEBUG] Work area: %s\n", dir)

	defer func() {
		if rerr := os.RemoveAll(dir); rerr != nil {
			logger.Warn("[WARN] Failed to remove work area %s: %v\n", dir, rerr)
		}
	}()

	return fn(WorkArea{Dir: dir})
}
