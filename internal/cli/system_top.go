package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

var topCount int

var systemTopCmd = &cobra.Command{
	Use:         "top",
	Short:       "Shows the processes using the most CPU",
	Annotations: map[string]string{"keywords": "process,cpu,ps"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runner.Output("ps", "aux")
		if err != nil {
			return err
		}
		procs := parse.PSAux(out)
		sort.Slice(procs, func(i, j int) bool { return procs[i].CPU > procs[j].CPU })
		if len(procs) > topCount {
			procs = procs[:topCount]
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"PID", "USER", "%CPU", "%MEM", "COMMAND"})
		for _, p := range procs {
			command := p.Command
			// Truncate by runes so a multi-byte command line is not cut
			// mid-character.
			if runes := []rune(command); len(runes) > 60 {
				command = string(runes[:57]) + "..."
			}
			table.Append([]string{
				strconv.Itoa(p.PID),
				p.User,
				fmt.Sprintf("%.1f", p.CPU),
				fmt.Sprintf("%.1f", p.Mem),
				command,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	systemTopCmd.Flags().IntVarP(&topCount, "count", "n", 5, "number of processes to show")
	systemCmd.AddCommand(systemTopCmd)
}
