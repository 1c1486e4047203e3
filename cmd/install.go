package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"tasuki-setup/internal/bootstrap"
	"tasuki-setup/internal/config"
	"tasuki-setup/internal/failure"
	"tasuki-setup/internal/hints"
	"tasuki-setup/internal/installer"
	"tasuki-setup/internal/logger"
)

// settingsPath points at an optional YAML file overriding release coordinates.
var settingsPath string

// configPath overrides where tasuki's config.toml is bootstrapped.
var configPath string

// skipConfig disables config bootstrapping after install.
var skipConfig bool

// installCmd downloads and installs the latest release, then prints hints
// and bootstraps the config.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the latest tasuki release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := config.EnvFromOS()
		settings, err := config.LoadSettings(settingsPath)
		if err != nil {
			return err
		}

		pipeline := installer.NewPipeline(env, settings)
		pipeline.Progress = os.Stderr

		res, err := pipeline.Run(cmd.Context())
		if err != nil {
			return err
		}
		logger.Info("[INFO] tasuki %s installed to %s\n", res.Release.Tag, res.Target.BinaryPath)

		printHints(env, res.Target)

		if skipConfig {
			return nil
		}
		if err := failure.Interrupted(cmd.Context(), "config bootstrap"); err != nil {
			return err
		}
		return ensureConfig(env)
	},
}

// initConfigCmd only writes the default config when it is missing.
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Create the default tasuki config if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ensureConfig(config.EnvFromOS())
	},
}

// hintsCmd prints PATH and Waybar guidance for the configured install target.
var hintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "Show PATH and Waybar integration hints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := config.EnvFromOS()
		settings, err := config.LoadSettings(settingsPath)
		if err != nil {
			return err
		}
		printHints(env, installer.NewPipeline(env, settings).Target())
		return nil
	},
}

func ensureConfig(env config.Env) error {
	path := configPath
	if path == "" {
		path = env.ConfigPath()
	}
	created, err := bootstrap.EnsureConfig(path)
	if err != nil {
		return err
	}
	if created {
		logger.Info("[INFO] Created default config at %s\n", path)
	} else {
		logger.Info("[INFO] Keeping existing config at %s\n", path)
	}
	return nil
}

// printHints writes the PATH advisory (when needed) and the Waybar snippet.
func printHints(env config.Env, target installer.InstallTarget) {
	exec := target.BinaryPath
	if advice := hints.PathAdvice(target.Dir, env.Path); advice != "" {
		logger.Warn("[WARN] %s is not on your PATH\n", target.Dir)
		fmt.Println(hints.Box("Add tasuki to your PATH", advice))
	} else {
		exec = filepath.Base(target.BinaryPath)
	}

	terminal := hints.DetectTerminal(env)
	logger.Debug("[DEBUG] Terminal for on-click: %s\n", terminal)
	snippet, err := hints.NewWaybarModule(exec, terminal).Snippet()
	if err != nil {
		logger.Warn("[WARN] Could not render Waybar snippet: %v\n", err)
		return
	}
	fmt.Println(hints.Box("Waybar module (~/.config/waybar/config.jsonc)", snippet))
}

func init() {
	installCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to a YAML file overriding release settings")
	installCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path of the tasuki config to bootstrap")
	installCmd.Flags().BoolVar(&skipConfig, "skip-config", false, "Do not create a default config")

	initConfigCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path of the tasuki config to bootstrap")
	hintsCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to a YAML file overriding release settings")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(hintsCmd)
}
