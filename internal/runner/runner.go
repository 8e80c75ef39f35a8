package runner

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	"mactl/internal/errors"
)

// Debug, when true, echoes every command before it runs.
var Debug bool

var (
	// execCommand is a variable to allow mocking of exec.Command in tests
	execCommand = exec.Command
	lookPath    = exec.LookPath
)

func echo(name string, args []string) {
	if Debug {
		color.HiBlack("$ %s %s", name, strings.Join(args, " "))
	}
}

// Output runs a command and returns its trimmed stdout.
// On failure the error carries the command line and any captured stderr.
var Output = func(name string, args ...string) (string, error) {
	echo(name, args)
	cmd := execCommand(name, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", errors.E(cmd.String(), fmt.Errorf("%s", strings.TrimSpace(string(exitErr.Stderr))))
		}
		return "", errors.E(cmd.String(), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Run executes a command and returns an error with the combined output if it fails.
var Run = func(name string, args ...string) error {
	echo(name, args)
	cmd := execCommand(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.E(cmd.String(), fmt.Errorf("%w\n%s", err, strings.TrimSpace(string(output))))
	}
	return nil
}

// RunInteractive executes a command attached to the caller's terminal.
// Used for commands that prompt (sudo) or take over the screen (screencapture -i).
var RunInteractive = func(name string, args ...string) error {
	echo(name, args)
	cmd := execCommand(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.E(cmd.String(), err)
	}
	return nil
}

// Installed reports whether a binary is available on PATH.
var Installed = func(name string) bool {
	_, err := lookPath(name)
	return err == nil
}
