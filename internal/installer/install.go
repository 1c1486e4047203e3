package installer

import (
	"context"
	"github.com/cockroachdb/errors"
	"io"
	"os"
	"path/filepath"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
)

// InstallTarget is where the executable ends up.
type InstallTarget struct {
	Dir        string
	BinaryPath string
}

// NewInstallTarget places binary directly inside dir.
func NewInstallTarget(dir, binary string) InstallTarget {
	return InstallTarget{Dir: dir, BinaryPath: filepath.Join(dir, binary)}
}

// Install extracts archive inside the work area, finds the entry named after
// the target binary and moves it into place with mode 0755. Nothing is written
// to the install directory until the final move, and nothing at all once ctx
// is cancelled.
func Install(ctx context.Context, archive string, wa WorkArea, target InstallTarget) error {
	extractDir := filepath.Join(wa.Dir, "extract")
	if err := os.MkdirAll(extractDir, 0755); err != nil {
		return failure.Mark(errors.Wrap(err, "create extraction directory"), failure.ErrFilesystemWrite)
	}
	if err := ExtractArchive(archive, extractDir); err != nil {
		return err
	}

	entry, err := findEntry(extractDir, filepath.Base(target.BinaryPath))
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Found executable entry: %s\n", entry)

	if err := failure.Interrupted(ctx, "install"); err != nil {
		return err
	}
	if err := os.Chmod(entry, 0755); err != nil {
		return failure.Mark(errors.Wrapf(err, "chmod %s", entry), failure.ErrFilesystemWrite)
	}
	if err := os.MkdirAll(target.Dir, 0755); err != nil {
		return failure.Mark(errors.Wrapf(err, "create install directory %s", target.Dir), failure.ErrFilesystemWrite)
	}
	if err := moveBinary(entry, target.BinaryPath); err != nil {
		return failure.Mark(errors.Wrapf(err, "install %s", target.BinaryPath), failure.ErrFilesystemWrite)
	}

	logger.Info("[INFO] Installed %s\n", target.BinaryPath)
	return nil
}

// moveBinary renames src onto dst. When the work area sits on another
// filesystem it stages a copy next to dst and renames that instead, so dst
// only ever changes through a single rename.
func moveBinary(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	logger.Debug("[DEBUG] rename failed (%v), copying across filesystems\n", err)

	staged, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+"-*")
	if err != nil {
		return err
	}
	stagedPath := staged.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(stagedPath)
		}
	}()

	in, err := os.Open(src)
	if err != nil {
		staged.Close()
		return err
	}
	defer in.Close()

	if _, err := io.Copy(staged, in); err != nil {
		staged.Close()
		return err
	}
	if err := staged.Close(); err != nil {
		return err
	}
	if err := os.Chmod(stagedPath, 0755); err != nil {
		return err
	}
	if err := os.Rename(stagedPath, dst); err != nil {
		return err
	}
	committed = true
	return nil
}
