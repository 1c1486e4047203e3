package config

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

// Default release coordinates.
const (
	DefaultRepo         = "tasuki-dev/tasuki"
	DefaultAPIBase      = "https://api.github.com"
	DefaultDownloadBase = "https://github.com"
	DefaultBinaryName   = "tasuki"
)

// DefaultSettings returns the built-in release coordinates with no install dir
// preference (the environment decides).
func DefaultSettings() Settings {
	return Settings{
		Repo:         DefaultRepo,
		APIBase:      DefaultAPIBase,
		DownloadBase: DefaultDownloadBase,
		BinaryName:   DefaultBinaryName,
	}
}

// LoadSettings reads a YAML settings file over the defaults.
// An empty path returns the defaults unchanged.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrapf(err, "read settings %s", path)
	}

	var file Settings
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return s, errors.Wrapf(err, "parse settings %s", path)
	}

	// Only override what the file sets
	if file.Repo != "" {
		s.Repo = file.Repo
	}
	if file.APIBase != "" {
		s.APIBase = strings.TrimRight(file.APIBase, "/")
	}
	if file.DownloadBase != "" {
		s.DownloadBase = strings.TrimRight(file.DownloadBase, "/")
	}
	if file.BinaryName != "" {
		s.BinaryName = file.BinaryName
	}
	s.InstallDir = file.InstallDir

	if strings.Count(s.Repo, "/") != 1 {
		return s, errors.Newf("settings %s: repo must be owner/name, got %q", path, s.Repo)
	}
	return s, nil
}
