// Package waiter implements the bounded poll-with-timeout loops used after
// state-changing OS calls. Every wait has a fixed interval and a deadline and
// reports success or timeout explicitly.
package waiter

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/hpcloud/tail"
	"golang.org/x/term"

	"mactl/internal/runner"
)

// isTerminal is a variable to allow forcing non-interactive mode in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func start(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Suffix = suffix
	// The spinner scribbles over non-terminal output, so only animate on a tty.
	if isTerminal() {
		s.Start()
	}
	return s
}

func finish(s *spinner.Spinner, msg string) {
	if s.Active() {
		s.FinalMSG = msg
		s.Stop()
		return
	}
	fmt.Print(msg)
}

// ForProcess polls until a process with the given name is running again,
// or the timeout elapses. Used to confirm killall-style restarts.
var ForProcess = func(name string, timeout time.Duration) error {
	s := start(fmt.Sprintf(" Waiting for %s to come back...", name))

	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			finish(s, color.RedString("✖ Timed out waiting for %s to restart\n", name))
			return fmt.Errorf("timed out waiting for process %q", name)
		default:
			if _, err := runner.Output("pgrep", "-x", name); err == nil {
				finish(s, color.GreenString("✔ %s is running again.\n", name))
				return nil
			}
			time.Sleep(500 * time.Millisecond)
		}
	}
}

// ForPort polls a TCP port until it accepts connections or a timeout is reached.
var ForPort = func(host string, port int, timeout time.Duration) error {
	address := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	s := start(fmt.Sprintf(" Waiting for port %s to open...", address))

	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			finish(s, color.RedString("✖ Timed out waiting for port %s\n", address))
			return fmt.Errorf("timed out waiting for port %s", address)
		default:
			conn, err := net.DialTimeout("tcp", address, 1*time.Second)
			if err == nil {
				conn.Close()
				finish(s, color.GreenString("✔ Port %s is open.\n", address))
				return nil
			}
			time.Sleep(200 * time.Millisecond)
		}
	}
}

// ForLogMessage tails a log file and waits for a substring to appear,
// case-insensitively.
var ForLogMessage = func(logPath, message string, timeout time.Duration) error {
	s := start(fmt.Sprintf(" Waiting for %q in %s...", message, logPath))

	t, err := tail.TailFile(logPath, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:   tail.DiscardingLogger,
	})
	if err != nil {
		finish(s, color.RedString("✖ Could not tail %s\n", logPath))
		return fmt.Errorf("error tailing log file: %w", err)
	}
	defer t.Stop()

	deadline := time.After(timeout)
	for {
		select {
		case line := <-t.Lines:
			if line.Err != nil {
				finish(s, color.RedString("✖ Error reading %s\n", logPath))
				return fmt.Errorf("error reading log file: %w", line.Err)
			}
			if strings.Contains(strings.ToLower(line.Text), strings.ToLower(message)) {
				finish(s, color.GreenString("✔ Found %q in %s.\n", message, logPath))
				return nil
			}
		case <-deadline:
			finish(s, color.RedString("✖ Timed out waiting for %q.\n", message))
			return fmt.Errorf("timed out waiting for message in log file")
		}
	}
}

// Follow tails a log file to stdout until the process is interrupted.
var Follow = func(logPath string) error {
	t, err := tail.TailFile(logPath, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Logger:   tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("error tailing log file: %w", err)
	}
	defer t.Stop()

	for line := range t.Lines {
		if line.Err != nil {
			return fmt.Errorf("error reading log file: %w", line.Err)
		}
		fmt.Println(line.Text)
	}
	return nil
}
