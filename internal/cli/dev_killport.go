package cli

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mactl/internal/parse"
	"mactl/internal/runner"
)

func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// On Unix-like systems, sending signal 0 to a process checks if it exists.
	return process.Signal(syscall.Signal(0)) == nil
}

// terminateProcess sends SIGTERM, waits briefly, then escalates to SIGKILL.
var terminateProcess = func(pid int) error {
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to send SIGTERM to %d: %w", pid, err)
	}
	for i := 0; i < 4; i++ {
		if !isProcessRunning(pid) {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	color.Yellow("! Process %d did not respond to SIGTERM, sending SIGKILL...", pid)
	if err := syscall.Kill(pid, syscall.SIGKILL); err != nil {
		return fmt.Errorf("failed to send SIGKILL to %d: %w", pid, err)
	}
	return nil
}

var devKillportCmd = &cobra.Command{
	Use:         "killport <port>",
	Short:       "Kills the processes listening on a TCP port",
	Annotations: map[string]string{"keywords": "kill,lsof,process"},
	// pflag would reject a negative port as an unknown shorthand flag
	// before parsePort ever ran.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		args, help := splitRawArgs(args)
		if help {
			return cmd.Help()
		}
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		port, err := parsePort(args[0])
		if err != nil {
			return err
		}

		out, err := runner.Output("lsof", "-ti", fmt.Sprintf("tcp:%d", port))
		if err != nil || out == "" {
			// lsof exits non-zero when nothing is listening there.
			color.Yellow("No process listening on port %d", port)
			return nil
		}
		pids, err := parse.PIDs(out)
		if err != nil {
			return err
		}

		for _, pid := range pids {
			if err := terminateProcess(pid); err != nil {
				return err
			}
			color.Green("✔ Killed process %d on port %d", pid, port)
		}
		return nil
	},
}

func init() {
	devCmd.AddCommand(devKillportCmd)
}
