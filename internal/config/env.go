package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables read once at startup.
const (
	InstallDirEnv = "TASUKI_INSTALL_DIR"
	TerminalEnv   = "TERMINAL"
	TokenEnv      = "GITHUB_TOKEN"
)

// Env is the ambient state the pipeline depends on, captured once so every
// component receives it explicitly instead of reading the process environment.
type Env struct {
	Home               string
	Path               []string
	InstallDirOverride string
	Terminal           string
	XDGConfigHome      string
	GitHubToken        string
}

// EnvFromOS snapshots the process environment.
func EnvFromOS() Env {
	home, _ := os.UserHomeDir()
	return Env{
		Home:               home,
		Path:               filepath.SplitList(os.Getenv("PATH")),
		InstallDirOverride: strings.TrimSpace(os.Getenv(InstallDirEnv)),
		Terminal:           strings.TrimSpace(os.Getenv(TerminalEnv)),
		XDGConfigHome:      os.Getenv("XDG_CONFIG_HOME"),
		GitHubToken:        strings.TrimSpace(os.Getenv(TokenEnv)),
	}
}

// InstallDir picks the install directory:
// TASUKI_INSTALL_DIR, then the settings file, then ~/.local/bin.
func (e Env) InstallDir(s Settings) string {
	switch {
	case e.InstallDirOverride != "":
		return expandHome(e.InstallDirOverride, e.Home)
	case s.InstallDir != "":
		return expandHome(s.InstallDir, e.Home)
	default:
		return filepath.Join(e.Home, ".local", "bin")
	}
}

// ConfigPath is the default location of tasuki's config.toml.
func (e Env) ConfigPath() string {
	base := e.XDGConfigHome
	if base == "" {
		base = filepath.Join(e.Home, ".config")
	}
	return filepath.Join(base, "tasuki", "config.toml")
}

// Which looks name up in the captured search path and returns the first
// regular file with an executable bit set.
func (e Env) Which(name string) (string, bool) {
	for _, dir := range e.Path {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.Mode().Perm()&0111 != 0 {
			return candidate, true
		}
	}
	return "", false
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
