package installer

import (
	"archive/tar"                // For reading .tar archives
	"archive/zip"                // For reading .zip archives
	"compress/bzip2"             // For reading .bz2 compressed data
	"compress/gzip"              // For reading .gz compressed data
	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/cockroachdb/errors"
	"github.com/xi2/xz" // For reading .xz compressed data
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
)

// ExtractArchive unpacks src into dest, choosing the reader by file suffix.
// Entries that would land outside dest are rejected. Failures are ErrExtraction.
func ExtractArchive(src, dest string) error {
	var err error
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] compression type is zip\n")
		err = extractZip(src, dest)
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] compression type is .7z\n")
		err = extract7z(src, dest)
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] compression type is .tar.*\n")
		err = extractTarArchive(src, dest)
	default:
		err = errors.Newf("unsupported archive format: %s", filepath.Base(src))
	}
	if err != nil {
		return failure.Mark(errors.Wrapf(err, "extract %s", filepath.Base(src)), failure.ErrExtraction)
	}
	return nil
}

// extractTarArchive handles tar and compressed tar variants.
func extractTarArchive(src, dest string) error {
	logger.Debug("[DEBUG] uncompressing %s to %s\n", src, dest)
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := entryPath(dest, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		default:
			logger.Debug("[DEBUG] skipping tar entry %s (type %c)\n", hdr.Name, hdr.Typeflag)
		}
	}
}

// extractZip extracts a .zip archive.
func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractFile(dest, f.Name, f.FileInfo(), f.Open); err != nil {
			return err
		}
	}
	return nil
}

// extract7z handles .7z extraction using the sevenzip library.
func extract7z(src, dest string) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return errors.Wrap(err, "open 7z archive")
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractFile(dest, f.Name, f.FileInfo(), f.Open); err != nil {
			return err
		}
	}
	return nil
}

// extractFile writes one zip/7z member below dest.
func extractFile(dest, name string, info fs.FileInfo, open func() (io.ReadCloser, error)) error {
	target, err := entryPath(dest, name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if !info.Mode().IsRegular() {
		logger.Debug("[DEBUG] skipping non-regular entry %s\n", name)
		return nil
	}
	rc, err := open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return writeEntry(target, rc, info.Mode().Perm())
}

// entryPath joins an archive member name onto dest, refusing names that
// escape it.
func entryPath(dest, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if !filepath.IsLocal(clean) {
		return "", errors.Newf("archive entry %q escapes extraction directory", name)
	}
	return filepath.Join(dest, clean), nil
}

func writeEntry(target string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if perm == 0 {
		perm = 0644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// findEntry locates the expected executable below root by base name,
// preferring the shallowest match.
func findEntry(root, name string) (string, error) {
	logger.Debug("[DEBUG] Scanning %s for %s\n", root, name)
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != name || !d.Type().IsRegular() {
			return nil
		}
		if found == "" || depth(path) < depth(found) {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", failure.Mark(errors.Wrapf(err, "scan %s", root), failure.ErrExtraction)
	}
	if found == "" {
		err := errors.Newf("archive does not contain the expected executable %q", name)
		return "", failure.Mark(err, failure.ErrExtraction)
	}
	return found, nil
}

func depth(p string) int {
	return strings.Count(p, string(os.PathSeparator))
}
