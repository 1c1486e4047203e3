package logger

import (
	"github.com/fatih/color" // Colored console output for each log level
)

// Colorized printing functions for the installer's log levels.
// They behave like fmt.Printf and write to color.Output (stdout).

// Info logs progress messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs non-fatal advisories in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs fatal stage failures in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Hint logs fallback suggestions attached to a failure in yellow.
var Hint = color.New(color.FgYellow).PrintfFunc()

// Debug logs verbose details in cyan once enabled through Init.
// Until then it is a no-op so packages can log before the CLI sets it up.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug output.
// It is called once from the root command's PersistentPreRun.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
