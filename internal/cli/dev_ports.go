package cli

import (
	"github.com/spf13/cobra"
)

var devPortsCmd = &cobra.Command{
	Use:         "ports",
	Short:       "Lists listening TCP ports",
	Annotations: map[string]string{"keywords": "lsof,listen,tcp"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return printListenPorts()
	},
}

func init() {
	devCmd.AddCommand(devPortsCmd)
}
