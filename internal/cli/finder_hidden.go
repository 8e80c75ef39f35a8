package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/defaults"
)

func setShowHidden(on bool) error {
	current, err := defaults.ReadBool(finderDomain, "AppleShowAllFiles")
	if err != nil {
		return err
	}
	label := map[bool]string{true: "shown", false: "hidden"}
	if current == on {
		color.Green("✔ Hidden files are already %s", label[on])
		return nil
	}
	if err := defaults.WriteBool(finderDomain, "AppleShowAllFiles", on); err != nil {
		return err
	}
	if err := defaults.KillAll("Finder"); err != nil {
		return err
	}
	color.Green("✔ Hidden files are now %s", label[on])
	return nil
}

var finderHiddenCmd = &cobra.Command{
	Use:         "hidden [on|off|toggle|status]",
	Short:       "Shows or hides hidden files in Finder",
	Annotations: map[string]string{"keywords": "dotfiles,invisible"},
	Args:        cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := "status"
		if len(args) > 0 {
			mode = args[0]
		}
		switch mode {
		case "status":
			on, err := defaults.ReadBool(finderDomain, "AppleShowAllFiles")
			if err != nil {
				return err
			}
			if on {
				color.Green("Hidden files are shown")
			} else {
				color.Yellow("Hidden files are hidden")
			}
			return nil
		case "on":
			return setShowHidden(true)
		case "off":
			return setShowHidden(false)
		case "toggle":
			current, err := defaults.ReadBool(finderDomain, "AppleShowAllFiles")
			if err != nil {
				return err
			}
			return setShowHidden(!current)
		}
		return fmt.Errorf("argument must be one of: on, off, toggle, status")
	},
}

var finderExtensionsCmd = &cobra.Command{
	Use:         "extensions <on|off>",
	Short:       "Shows or hides all filename extensions",
	Annotations: map[string]string{"keywords": "filename,suffix"},
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
		if err := defaults.WriteBool(defaults.GlobalDomain, "AppleShowAllExtensions", on); err != nil {
			return err
		}
		if err := defaults.KillAll("Finder"); err != nil {
			return err
		}
		color.Green("✔ Filename extensions turned %s", args[0])
		return nil
	},
}

var finderPathbarCmd = &cobra.Command{
	Use:         "pathbar <on|off>",
	Short:       "Shows or hides the Finder path bar",
	Annotations: map[string]string{"keywords": "path,breadcrumb"},
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
		if err := defaults.WriteBool(finderDomain, "ShowPathbar", on); err != nil {
			return err
		}
		if err := defaults.KillAll("Finder"); err != nil {
			return err
		}
		color.Green("✔ Finder path bar turned %s", args[0])
		return nil
	},
}

func init() {
	finderCmd.AddCommand(finderHiddenCmd)
	finderCmd.AddCommand(finderExtensionsCmd)
	finderCmd.AddCommand(finderPathbarCmd)
}
