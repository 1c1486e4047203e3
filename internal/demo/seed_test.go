package demo

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"os"
	"path/filepath"
	"tasuki-setup/internal/config"
	"tasuki-setup/internal/failure"
	"testing"
	"time"
)

func TestSeed(t *testing.T) {
	root := t.TempDir()
	layout := NewLayout(root)

	ds, err := Seed(layout, time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	todo, err := os.ReadFile(layout.TodoFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(todo) != ds.LocalFile() {
		t.Error("todo.txt differs from the dataset")
	}
	for name, want := range ds.VaultNotes {
		got, err := os.ReadFile(filepath.Join(layout.VaultDir, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Errorf("%s differs from the dataset", name)
		}
	}

	var cfg config.Config
	if _, err := toml.DecodeFile(layout.ConfigFile, &cfg); err != nil {
		t.Fatalf("demo config is not valid TOML: %v", err)
	}
	if cfg.Backends.Local == nil || !cfg.Backends.Local.Enabled {
		t.Error("local backend not enabled")
	}
	if cfg.Backends.Obsidian == nil || !cfg.Backends.Obsidian.Enabled {
		t.Fatal("obsidian backend not enabled")
	}
	if cfg.Backends.Obsidian.VaultPath != layout.VaultDir {
		t.Errorf("vault_path = %q, want %q", cfg.Backends.Obsidian.VaultPath, layout.VaultDir)
	}
	if cfg.Backends.Obsidian.InboxFile != InboxFile {
		t.Errorf("inbox_file = %q", cfg.Backends.Obsidian.InboxFile)
	}
	if cfg.General.Theme == "" {
		t.Error("general.theme missing")
	}
}

func TestSeed_Reseed(t *testing.T) {
	layout := NewLayout(t.TempDir())
	if _, err := Seed(layout, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	ds, err := Seed(layout, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(layout.TodoFile)
	if string(got) != ds.LocalFile() {
		t.Error("reseeding should refresh dates")
	}
}

func TestSeed_WriteFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(root, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Seed(NewLayout(root), time.Now())
	if !errors.Is(err, failure.ErrFilesystemWrite) {
		t.Fatalf("err = %v, want filesystem write failure", err)
	}
}

func TestLayoutFor_XDGConfigHome(t *testing.T) {
	home := t.TempDir()
	xdg := filepath.Join(t.TempDir(), "xdg")
	env := config.Env{Home: home, XDGConfigHome: xdg}

	layout := LayoutFor(env)
	if layout.ConfigFile != env.ConfigPath() {
		t.Fatalf("ConfigFile = %q, want %q", layout.ConfigFile, env.ConfigPath())
	}
	if _, err := Seed(layout, time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var cfg config.Config
	if _, err := toml.DecodeFile(filepath.Join(xdg, "tasuki", "config.toml"), &cfg); err != nil {
		t.Fatalf("decode config under XDG_CONFIG_HOME: %v", err)
	}
	if cfg.Backends.Obsidian == nil || cfg.Backends.Obsidian.VaultPath != filepath.Join(home, "Documents", "tasuki-demo-vault") {
		t.Errorf("vault backend = %+v", cfg.Backends.Obsidian)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "tasuki", "config.toml")); !os.IsNotExist(err) {
		t.Error("config also written below $HOME/.config")
	}
}
