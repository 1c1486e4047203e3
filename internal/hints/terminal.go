package hints

import (
	"tasuki-setup/internal/config"
)

// Launcher is the terminal launcher looked up on the search path when no
// preference is set.
const Launcher = "xdg-terminal-exec"

// TerminalPlaceholder is shown when no terminal can be determined.
const TerminalPlaceholder = "<your-terminal>"

// DetectTerminal picks the command used to open tasuki from the status bar:
// $TERMINAL, then xdg-terminal-exec if found, then a placeholder.
func DetectTerminal(env config.Env) string {
	if env.Terminal != "" {
		return env.Terminal
	}
	if _, ok := env.Which(Launcher); ok {
		return Launcher
	}
	return TerminalPlaceholder
}

// LaunchCommand builds the command line that opens binary in terminal.
// xdg-terminal-exec takes the program directly, other terminals take -e.
func LaunchCommand(terminal, binary string) string {
	if terminal == Launcher {
		return terminal + " " + binary
	}
	return terminal + " -e " + binary
}
