package installer

import (
	"context"
	"io"
	"net/http"
	"runtime"
	"tasuki-setup/internal/config"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
	"tasuki-setup/internal/platform"
)

// Pipeline runs platform detection, release lookup, download and install as
// one sequential chain. The first failure ends the run.
type Pipeline struct {
	Env      config.Env
	Settings config.Settings

	// Client is shared by both network calls. No timeout is set; cancel ctx
	// to abort.
	Client *http.Client

	// RawOS and RawArch default to runtime.GOOS and runtime.GOARCH.
	RawOS   string
	RawArch string

	// WorkParent is where the work area is created (os.TempDir when empty).
	WorkParent string

	// Progress receives the download bar; nil disables it.
	Progress io.Writer
}

// Result describes a completed install.
type Result struct {
	Platform platform.Platform
	Release  Release
	Target   InstallTarget
	WorkDir  string // already removed when Run returns
}

// NewPipeline wires a pipeline from the captured environment and settings.
func NewPipeline(env config.Env, settings config.Settings) *Pipeline {
	return &Pipeline{
		Env:      env,
		Settings: settings,
		Client:   &http.Client{},
	}
}

// Target is the install location this pipeline will write to.
func (p *Pipeline) Target() InstallTarget {
	return NewInstallTarget(p.Env.InstallDir(p.Settings), p.Settings.BinaryName)
}

// Run executes the chain. The work area is removed before Run returns,
// whatever the outcome.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	rawOS, rawArch := p.RawOS, p.RawArch
	if rawOS == "" {
		rawOS = runtime.GOOS
	}
	if rawArch == "" {
		rawArch = runtime.GOARCH
	}

	plat, err := platform.Resolve(rawOS, rawArch)
	if err != nil {
		return nil, err
	}
	logger.Info("[INFO] Detected platform %s\n", plat)

	resolver := ReleaseResolver{
		Client:  p.Client,
		APIBase: p.Settings.APIBase,
		Repo:    p.Settings.Repo,
		Token:   p.Env.GitHubToken,
	}
	tag, err := resolver.Latest(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("[INFO] Latest release is %s\n", tag)

	res := &Result{
		Platform: plat,
		Release:  NewRelease(tag, plat, p.Settings.BinaryName),
		Target:   p.Target(),
	}
	fetcher := ArtifactFetcher{
		Client:       p.Client,
		DownloadBase: p.Settings.DownloadBase,
		Repo:         p.Settings.Repo,
		Progress:     p.Progress,
	}

	err = WithWorkArea(p.WorkParent, func(wa WorkArea) error {
		res.WorkDir = wa.Dir
		archive, err := fetcher.Fetch(ctx, res.Release, wa.Dir)
		if err != nil {
			return err
		}
		if err := failure.Interrupted(ctx, "extraction"); err != nil {
			return err
		}
		return Install(ctx, archive, wa, res.Target)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
