package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/config"
	"mactl/internal/diag"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Writes a diagnostics report for bug reports",
	Long:  `Collects system information (macOS version, hardware, uptime, disk) into a report under ~/.mactl/reports/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		color.Cyan("i Collecting diagnostics...")
		path, err := diag.WriteReport(cfg)
		if err != nil {
			return err
		}
		color.Green("✔ Report written to %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
