package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/runner"
)

func setWifiPower(device string, on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	return runner.Run("networksetup", "-setairportpower", device, state)
}

// switchWifi turns Wi-Fi on or off, skipping the write when the radio is
// already in the requested state.
func switchWifi(on bool) error {
	device, err := wifiDevice()
	if err != nil {
		return err
	}
	current, err := wifiPower(device)
	if err != nil {
		return err
	}
	label := map[bool]string{true: "on", false: "off"}
	if current == on {
		color.Green("✔ Wi-Fi is already %s", label[on])
		return nil
	}
	if err := setWifiPower(device, on); err != nil {
		return err
	}
	color.Green("✔ Wi-Fi turned %s", label[on])
	return nil
}

var wifiOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Turns Wi-Fi on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchWifi(true)
	},
}

var wifiOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Turns Wi-Fi off",
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchWifi(false)
	},
}

var wifiToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggles Wi-Fi power",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := wifiDevice()
		if err != nil {
			return err
		}
		current, err := wifiPower(device)
		if err != nil {
			return err
		}
		if err := setWifiPower(device, !current); err != nil {
			return err
		}
		if current {
			color.Green("✔ Wi-Fi turned off")
		} else {
			color.Green("✔ Wi-Fi turned on")
		}
		return nil
	},
}

func init() {
	wifiCmd.AddCommand(wifiOnCmd)
	wifiCmd.AddCommand(wifiOffCmd)
	wifiCmd.AddCommand(wifiToggleCmd)
}
