package hints

import (
	"os"
	"path/filepath"
	"tasuki-setup/internal/config"
	"testing"
)

func TestDetectTerminal(t *testing.T) {
	withLauncher := t.TempDir()
	if err := os.WriteFile(filepath.Join(withLauncher, Launcher), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	empty := t.TempDir()

	tests := []struct {
		name string
		env  config.Env
		want string
	}{
		{"preference wins", config.Env{Terminal: "alacritty", Path: []string{withLauncher}}, "alacritty"},
		{"launcher on path", config.Env{Path: []string{empty, withLauncher}}, Launcher},
		{"placeholder", config.Env{Path: []string{empty}}, TerminalPlaceholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTerminal(tt.env); got != tt.want {
				t.Errorf("DetectTerminal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLaunchCommand(t *testing.T) {
	if got := LaunchCommand(Launcher, "tasuki"); got != "xdg-terminal-exec tasuki" {
		t.Errorf("got %q", got)
	}
	if got := LaunchCommand("kitty", "tasuki"); got != "kitty -e tasuki" {
		t.Errorf("got %q", got)
	}
}
