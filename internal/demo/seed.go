package demo

import (
	"bytes"
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"os"
	"path/filepath"
	"sort"
	"tasuki-setup/internal/config"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
	"time"
)

// InboxFile is the vault note new tasks are appended to.
const InboxFile = "Inbox.md"

// Layout is where the demo dataset lives below a root (normally $HOME).
type Layout struct {
	TodoFile   string
	VaultDir   string
	ConfigFile string
}

// NewLayout follows tasuki's default locations below root.
func NewLayout(root string) Layout {
	return Layout{
		TodoFile:   filepath.Join(root, ".tasuki", "todo.txt"),
		VaultDir:   filepath.Join(root, "Documents", "tasuki-demo-vault"),
		ConfigFile: filepath.Join(root, ".config", "tasuki", "config.toml"),
	}
}

// LayoutFor places the demo under env.Home but writes the config wherever
// tasuki reads it from, honouring XDG_CONFIG_HOME.
func LayoutFor(env config.Env) Layout {
	l := NewLayout(env.Home)
	l.ConfigFile = env.ConfigPath()
	return l
}

// Config enables both backends with the vault pointed at l.VaultDir.
func (l Layout) Config() config.Config {
	return config.Config{
		General: config.GeneralConfig{DefaultView: "today", Theme: "omarchy"},
		Waybar:  config.WaybarConfig{TooltipScope: "overdue_today"},
		Backends: config.BackendsConfig{
			Local: &config.LocalBackend{Enabled: true, Path: l.TodoFile},
			Obsidian: &config.ObsidianBackend{
				Enabled:       true,
				VaultPath:     l.VaultDir,
				InboxFile:     InboxFile,
				IgnoreFolders: []string{".obsidian", ".trash", ".git"},
			},
		},
	}
}

// Seed writes the dataset for now into l, replacing any earlier demo files.
// The config file is overwritten too: the demo is a fixture, not user data.
func Seed(l Layout, now time.Time) (Dataset, error) {
	ds := Build(now)

	if err := writeFile(l.TodoFile, []byte(ds.LocalFile())); err != nil {
		return ds, err
	}
	logger.Info("[INFO] Wrote %d local tasks to %s\n", len(ds.LocalTasks), l.TodoFile)

	notes := make([]string, 0, len(ds.VaultNotes))
	for name := range ds.VaultNotes {
		notes = append(notes, name)
	}
	sort.Strings(notes)
	for _, name := range notes {
		if err := writeFile(filepath.Join(l.VaultDir, name), []byte(ds.VaultNotes[name])); err != nil {
			return ds, err
		}
	}
	logger.Info("[INFO] Wrote %d vault notes to %s\n", len(notes), l.VaultDir)

	var buf bytes.Buffer
	buf.WriteString("# tasuki demo configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(l.Config()); err != nil {
		return ds, errors.Wrap(err, "encode demo config")
	}
	if err := writeFile(l.ConfigFile, buf.Bytes()); err != nil {
		return ds, err
	}
	logger.Info("[INFO] Wrote demo config to %s\n", l.ConfigFile)

	return ds, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return failure.Mark(errors.Wrapf(err, "create %s", filepath.Dir(path)), failure.ErrFilesystemWrite)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return failure.Mark(errors.Wrapf(err, "write %s", path), failure.ErrFilesystemWrite)
	}
	return nil
}
