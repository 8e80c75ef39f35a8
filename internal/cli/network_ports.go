package cli

import (
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

// printListenPorts renders the listening TCP socket table. Shared between
// `network ports` and `dev ports`.
func printListenPorts() error {
	// lsof exits non-zero when nothing matches, so an error here usually
	// just means no listeners.
	out, err := runner.Output("lsof", "-iTCP", "-sTCP:LISTEN", "-P", "-n")
	if err != nil {
		color.Yellow("No listening TCP ports found.")
		return nil
	}
	entries := parse.ListenPorts(out)
	if len(entries) == 0 {
		color.Yellow("No listening TCP ports found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"COMMAND", "PID", "USER", "ADDRESS"})
	for _, e := range entries {
		table.Append([]string{e.Command, strconv.Itoa(e.PID), e.User, e.Address})
	}
	table.Render()
	return nil
}

var networkPortsCmd = &cobra.Command{
	Use:         "ports",
	Short:       "Lists listening TCP ports",
	Annotations: map[string]string{"keywords": "lsof,listen,tcp"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return printListenPorts()
	},
}

func init() {
	networkCmd.AddCommand(networkPortsCmd)
}
