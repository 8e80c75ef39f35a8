package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
)

var screenshotLocationCmd = &cobra.Command{
	Use:         "location <dir>",
	Short:       "Sets where screenshots are saved",
	Annotations: map[string]string{"keywords": "folder,save"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("no such directory: %s", dir)
		}
		if err := defaults.WriteString(screencaptureDomain, "location", dir); err != nil {
			return err
		}
		if err := defaults.KillAll("SystemUIServer"); err != nil {
			return err
		}
		color.Green("✔ Screenshots will be saved to %s", dir)
		return nil
	},
}

var screenshotFormatCmd = &cobra.Command{
	Use:         "format <png|jpg|pdf>",
	Short:       "Sets the screenshot file format",
	Annotations: map[string]string{"keywords": "type,image"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		switch format {
		case "png", "jpg", "pdf":
		default:
			return fmt.Errorf("format must be one of: png, jpg, pdf")
		}
		if err := defaults.WriteString(screencaptureDomain, "type", format); err != nil {
			return err
		}
		if err := defaults.KillAll("SystemUIServer"); err != nil {
			return err
		}
		color.Green("✔ Screenshot format set to %s", format)
		return nil
	},
}

var screenshotShadowCmd = &cobra.Command{
	Use:         "shadow <on|off>",
	Short:       "Controls the window capture drop shadow",
	Annotations: map[string]string{"keywords": "window"},
	Args:        cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var on bool
		switch args[0] {
		case "on":
			on = true
		case "off":
			on = false
		default:
			return fmt.Errorf("argument must be on or off")
		}
		// The preference is inverted: disable-shadow=true turns shadows off.
		if err := defaults.WriteBool(screencaptureDomain, "disable-shadow", !on); err != nil {
			return err
		}
		if err := defaults.KillAll("SystemUIServer"); err != nil {
			return err
		}
		color.Green("✔ Window capture shadow turned %s", args[0])
		return nil
	},
}

func init() {
	screenshotCmd.AddCommand(screenshotLocationCmd)
	screenshotCmd.AddCommand(screenshotFormatCmd)
	screenshotCmd.AddCommand(screenshotShadowCmd)
}
