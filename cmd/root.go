package cmd

import (
	"context"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the `tasuki-setup` CLI.
var rootCmd = &cobra.Command{
	Use:   "tasuki-setup",
	Short: "Install tasuki and bootstrap its configuration",
	Long: `tasuki-setup downloads the latest tasuki release for this machine,
installs it, writes a default config if none exists and prints Waybar
integration hints. It can also seed a demo dataset for recordings.`,
	SilenceErrors: true,
	SilenceUsage:  true,

	// Initialize the logger before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute runs the CLI and exits non-zero on any fatal error.
// SIGINT and SIGTERM cancel the command context so in-flight downloads abort
// and temporary files are released before exiting.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints the failing stage, the cause and any fallback advice.
func reportError(err error) {
	logger.Error("[ERROR] %s failed: %v\n", failure.Stage(err), err)
	for _, hint := range failure.Hints(err) {
		logger.Hint("[HINT] %s\n", hint)
	}
}
