// Package failure defines the fatal error categories of the install and
// bootstrap pipeline. Every fatal error is marked with exactly one category so
// the CLI can name the stage that failed and print any attached advice.
package failure

import (
	"context"
	"github.com/cockroachdb/errors"
)

// Category markers. Use errors.Is against these to classify a pipeline error.
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrReleaseResolution   = errors.New("release resolution failure")
	ErrDownload            = errors.New("download failure")
	ErrExtraction          = errors.New("extraction failure")
	ErrFilesystemWrite     = errors.New("filesystem write failure")
	ErrInterrupted         = errors.New("interrupted")
)

// BuildFromSourceHint is attached to download failures.
const BuildFromSourceHint = "download a release manually or build from source: cargo install --path . (then copy target/release/tasuki onto your PATH)"

var stages = []struct {
	marker error
	name   string
}{
	{ErrUnsupportedPlatform, "platform detection"},
	{ErrReleaseResolution, "release lookup"},
	{ErrDownload, "download"},
	{ErrExtraction, "extraction"},
	{ErrFilesystemWrite, "filesystem write"},
	{ErrInterrupted, "interrupt"},
}

// Mark tags err with a category marker. A nil err stays nil.
func Mark(err error, category error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, category)
}

// Interrupted returns an ErrInterrupted error once ctx is cancelled, nil
// otherwise. Stages call it before any step that mutates the system.
func Interrupted(ctx context.Context, step string) error {
	if err := ctx.Err(); err != nil {
		return Mark(errors.Wrapf(err, "interrupted before %s", step), ErrInterrupted)
	}
	return nil
}

// Stage returns a human-readable name for the pipeline stage err belongs to,
// or "unexpected error" when err carries no category.
func Stage(err error) string {
	for _, s := range stages {
		if errors.Is(err, s.marker) {
			return s.name
		}
	}
	return "unexpected error"
}

// Hints returns the user-facing advice attached to err, outermost first.
func Hints(err error) []string {
	return errors.GetAllHints(err)
}
