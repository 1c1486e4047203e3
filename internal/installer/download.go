package installer

import (
	"context"
	"fmt"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
)

// ArchiveExt is the extension of published release artifacts.
const ArchiveExt = ".tar.gz"

// ArtifactFetcher downloads release artifacts into a work area.
type ArtifactFetcher struct {
	Client       *http.Client
	DownloadBase string // e.g. https://github.com
	Repo         string // owner/name

	// Progress receives a progress bar while downloading; nil disables it.
	Progress io.Writer
}

// URL builds <download_base>/<repo>/releases/download/<tag>/<asset>.tar.gz.
func (f ArtifactFetcher) URL(rel Release) string {
	return fmt.Sprintf("%s/%s/releases/download/%s/%s%s", f.DownloadBase, f.Repo, rel.Tag, rel.AssetName, ArchiveExt)
}

// Fetch transfers the artifact for rel into dir and returns the archive path.
// It writes exactly one file. Transport and HTTP errors are ErrDownload and
// carry the build-from-source hint.
func (f ArtifactFetcher) Fetch(ctx context.Context, rel Release, dir string) (string, error) {
	url := f.URL(rel)
	dest := filepath.Join(dir, rel.AssetName+ArchiveExt)
	logger.Info("[INFO] Downloading %s\n", url)

	if err := f.downloadFile(ctx, url, dest); err != nil {
		return "", err
	}

	logger.Debug("[DEBUG] Downloaded artifact to: %s\n", dest)
	return dest, nil
}

func (f ArtifactFetcher) downloadFile(ctx context.Context, url, destPath string) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return downloadFailure(errors.Wrap(err, "build download request"))
	}
	req.Header.Set("User-Agent", userAgent)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return downloadFailure(errors.Wrapf(err, "GET %s", url))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return downloadFailure(errors.Newf("GET %s: bad status %s", url, resp.Status))
	}

	out, err := os.Create(destPath)
	if err != nil {
		return failure.Mark(errors.Wrapf(err, "create %s", destPath), failure.ErrFilesystemWrite)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = failure.Mark(errors.Wrapf(cerr, "close %s", destPath), failure.ErrFilesystemWrite)
		}
	}()

	var body io.Reader = resp.Body
	if bar := newProgressBar(f.Progress, resp.ContentLength); bar != nil {
		body = io.TeeReader(resp.Body, bar)
		defer bar.finish()
	}

	return copyBody(out, body, destPath)
}

// copyBody streams src into dst. A failing write is a local filesystem
// problem; only read failures count as download errors.
func copyBody(dst io.Writer, src io.Reader, destPath string) error {
	w := &recordingWriter{w: dst}
	if _, err := io.Copy(w, src); err != nil {
		if w.err != nil {
			return failure.Mark(errors.Wrapf(w.err, "write %s", destPath), failure.ErrFilesystemWrite)
		}
		return downloadFailure(errors.Wrap(err, "transfer artifact"))
	}
	return nil
}

// recordingWriter remembers the first error returned by the wrapped writer.
type recordingWriter struct {
	w   io.Writer
	err error
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	n, err := r.w.Write(p)
	if err != nil && r.err == nil {
		r.err = err
	}
	return n, err
}

func downloadFailure(err error) error {
	return errors.WithHint(failure.Mark(err, failure.ErrDownload), failure.BuildFromSourceHint)
}

// progressBar renders transfer progress on a terminal with bubbles/progress.
type progressBar struct {
	out     io.Writer
	model   progress.Model
	total   int64
	written int64
}

// newProgressBar returns nil unless out is a terminal and the size is known.
func newProgressBar(out io.Writer, total int64) *progressBar {
	if out == nil || total <= 0 {
		return nil
	}
	if fd, ok := out.(interface{ Fd() uintptr }); !ok || !isatty.IsTerminal(fd.Fd()) {
		return nil
	}
	return &progressBar{
		out:   out,
		model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total: total,
	}
}

func (p *progressBar) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	fmt.Fprintf(p.out, "\r%s", p.model.ViewAs(float64(p.written)/float64(p.total)))
	return len(b), nil
}

func (p *progressBar) finish() {
	fmt.Fprintln(p.out)
}
