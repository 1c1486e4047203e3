package installer

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/cockroachdb/errors"
	"net/http"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
	"tasuki-setup/internal/platform"
)

// userAgent identifies the installer to the release index.
const userAgent = "tasuki-setup"

// GitHubRelease is the subset of the release-index response we rely on.
type GitHubRelease struct {
	TagName string `json:"tag_name"` // The release tag (e.g., v1.2.3)
}

// Release is the version and asset resolved for one run. It is never cached.
type Release struct {
	Tag       string
	AssetName string
}

// NewRelease pairs a tag with the asset name derived from the platform.
func NewRelease(tag string, p platform.Platform, binary string) Release {
	return Release{Tag: tag, AssetName: p.AssetName(binary)}
}

// ReleaseResolver looks up the most recent published tag of Repo.
type ReleaseResolver struct {
	Client  *http.Client
	APIBase string // e.g. https://api.github.com
	Repo    string // owner/name
	Token   string // optional bearer token
}

// LatestURL is the endpoint queried by Latest.
func (r ReleaseResolver) LatestURL() string {
	return fmt.Sprintf("%s/repos/%s/releases/latest", r.APIBase, r.Repo)
}

// Latest performs a single GET against the release index and returns the
// tag_name of the latest release. Every failure is ErrReleaseResolution.
func (r ReleaseResolver) Latest(ctx context.Context) (string, error) {
	url := r.LatestURL()
	logger.Debug("[DEBUG] Fetching latest release from URL: %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", failure.Mark(errors.Wrap(err, "build release request"), failure.ErrReleaseResolution)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	resp, err := r.client().Do(req)
	if err != nil {
		return "", failure.Mark(errors.Wrapf(err, "query release index %s", url), failure.ErrReleaseResolution)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err := errors.Newf("release index returned %s for %s", resp.Status, r.Repo)
		return "", failure.Mark(err, failure.ErrReleaseResolution)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", failure.Mark(errors.Wrapf(err, "decode release JSON for %s", r.Repo), failure.ErrReleaseResolution)
	}
	if release.TagName == "" {
		err := errors.Newf("release index returned no tag_name for %s", r.Repo)
		return "", failure.Mark(err, failure.ErrReleaseResolution)
	}

	logger.Debug("[DEBUG] Latest release tag: %s\n", release.TagName)
	return release.TagName, nil
}

func (r ReleaseResolver) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return http.DefaultClient
}
