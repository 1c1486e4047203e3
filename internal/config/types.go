package config

// Settings describes where releases come from and where the binary goes.
// It is loaded from an optional YAML file; absent keys keep their defaults.
// - Repo: GitHub "owner/name" of the published project.
// - APIBase: release-index API root (latest release is <api_base>/repos/<repo>/releases/latest).
// - DownloadBase: artifact host root (assets live under <download_base>/<repo>/releases/download).
// - BinaryName: executable entry expected inside the artifact.
// - InstallDir: install directory; TASUKI_INSTALL_DIR still wins over it.
type Settings struct {
	Repo         string `yaml:"repo"`
	APIBase      string `yaml:"api_base"`
	DownloadBase string `yaml:"download_base"`
	BinaryName   string `yaml:"binary_name"`
	InstallDir   string `yaml:"install_dir"`
}

// Config mirrors the tasuki config.toml read by the installed binary.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Waybar   WaybarConfig   `toml:"waybar,omitempty"`
	Backends BackendsConfig `toml:"backends"`
}

// GeneralConfig holds UI-wide preferences.
type GeneralConfig struct {
	DefaultView string `toml:"default_view,omitempty"`
	Theme       string `toml:"theme"`
}

// WaybarConfig controls the status-bar tooltip.
type WaybarConfig struct {
	TooltipScope string `toml:"tooltip_scope,omitempty"`
}

// BackendsConfig lists the task sources the binary aggregates.
type BackendsConfig struct {
	Local    *LocalBackend    `toml:"local,omitempty"`
	Obsidian *ObsidianBackend `toml:"obsidian,omitempty"`
}

// LocalBackend is the flat todo.txt-style file.
type LocalBackend struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// ObsidianBackend is a vault of markdown files with checkbox tasks.
type ObsidianBackend struct {
	Enabled       bool     `toml:"enabled"`
	VaultPath     string   `toml:"vault_path"`
	InboxFile     string   `toml:"inbox_file"`
	IgnoreFolders []string `toml:"ignore_folders"`
}
