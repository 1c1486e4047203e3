package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"tasuki-setup/internal/config"
	"tasuki-setup/internal/demo"
	"tasuki-setup/internal/logger"
	"time"
)

// demoRoot is the directory the demo layout is created under ($HOME by default).
var demoRoot string

// demoDate overrides "today" (YYYY-MM-DD).
var demoDate string

// demoCmd seeds the local file and vault backends with tasks dated relative
// to today. It does not need tasuki to be installed.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed a demo dataset for both backends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if demoDate != "" {
			parsed, err := time.ParseInLocation(demo.DateLayout, demoDate, time.Local)
			if err != nil {
				return errors.Wrapf(err, "invalid --date %q", demoDate)
			}
			now = parsed
		}

		layout := demo.NewLayout(demoRoot)
		if demoRoot == "" {
			layout = demo.LayoutFor(config.EnvFromOS())
		}
		logger.Warn("[WARN] Overwriting demo files and %s\n", layout.ConfigFile)
		if _, err := demo.Seed(layout, now); err != nil {
			return err
		}
		logger.Info("[INFO] Demo data ready for %s\n", now.Format(demo.DateLayout))
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoRoot, "root", "", "Directory to create the demo layout under (default $HOME)")
	demoCmd.Flags().StringVar(&demoDate, "date", "", "Pretend today is this date (YYYY-MM-DD)")
	rootCmd.AddCommand(demoCmd)
}
