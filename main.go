package main

import (
	"tasuki-setup/cmd" // CLI commands and execution logic
)

// main delegates to cmd.Execute, which parses flags, runs the selected
// command and exits non-zero when a stage fails.
//
// tasuki-setup installs the tasuki task manager on Linux:
//   - resolves the platform (linux x86_64/aarch64) and the latest release tag
//   - downloads the release archive into a temporary work area, extracts it
//     and moves the binary into ~/.local/bin (or $TASUKI_INSTALL_DIR)
//   - prints PATH guidance and a Waybar module snippet
//   - writes ~/.config/tasuki/config.toml unless it already exists
//
// The demo command seeds todo.txt and an Obsidian-style vault with tasks
// dated relative to today, for screen recordings.
func main() {
	cmd.Execute()
}
