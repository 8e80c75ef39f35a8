package cli

import (
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"mactl/internal/brew"
)

func TestSystemMemory(t *testing.T) {
	exec, _ := setupMocks(t)
	exec.outputs["vm_stat"] = "Mach Virtual Memory Statistics: (page size of 16384 bytes)\n" +
		"Pages free:                               74205.\n" +
		"Pages active:                            441186.\n" +
		"Pages inactive:                          431693.\n" +
		"Pages wired down:                        136549.\n" +
		"Pages occupied by compressor:            120773.\n"

	output, err := executeCommand(rootCmd, "system", "memory")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	for _, expected := range []string{"Free:", "1159 MB", "Active:", "6893 MB", "Wired:", "2133 MB"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain %q, but got %q", expected, output)
		}
	}
}

func TestSystemBattery(t *testing.T) {
	exec, _ := setupMocks(t)
	exec.outputs["pmset -g batt"] = "Now drawing from 'Battery Power'\n" +
		" -InternalBattery-0 (id=12582999)\t87%; discharging; 4:32 remaining present: true\n"

	output, err := executeCommand(rootCmd, "system", "battery")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "87%") || !strings.Contains(output, "discharging") {
		t.Errorf("unexpected output: %q", output)
	}
	if !strings.Contains(output, "4:32") {
		t.Errorf("expected time remaining, got %q", output)
	}
}

func TestSystemBatteryDesktop(t *testing.T) {
	exec, _ := setupMocks(t)
	exec.outputs["pmset -g batt"] = "Now drawing from 'AC Power'\n"

	output, err := executeCommand(rootCmd, "system", "battery")
	if err != nil {
		t.Fatalf("a desktop Mac must not be an error, got: %v", err)
	}
	if !strings.Contains(output, "No battery found") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestSystemUptime(t *testing.T) {
	exec, _ := setupMocks(t)
	boot := time.Date(2026, 8, 23, 9, 0, 0, 0, time.Local)
	exec.outputs["sysctl -n kern.boottime"] = "{ sec = " +
		// 2d 3h 30m before "now"
		formatUnix(boot) + ", usec = 0 } Sun Aug 23 09:00:00 2026"
	timeNow = func() time.Time { return boot.Add(51*time.Hour + 30*time.Minute) }

	output, err := executeCommand(rootCmd, "system", "uptime")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "Up 2d 3h 30m") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestSystemInfo(t *testing.T) {
	exec, _ := setupMocks(t)
	exec.outputs["sw_vers"] = "ProductName:\t\tmacOS\nProductVersion:\t\t14.6.1\nBuildVersion:\t\t23G93"
	exec.outputs["sysctl -n hw.model"] = "Mac15,6"
	exec.outputs["sysctl -n machdep.cpu.brand_string"] = "Apple M3 Pro"
	exec.outputs["sysctl -n hw.memsize"] = "38654705664"

	output, err := executeCommand(rootCmd, "system", "info")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	for _, expected := range []string{"14.6.1", "Mac15,6", "Apple M3 Pro", "36 GB"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain %q, but got %q", expected, output)
		}
	}
}

func TestSystemTop(t *testing.T) {
	exec, _ := setupMocks(t)
	exec.outputs["ps aux"] = "USER               PID  %CPU %MEM      VSZ    RSS   TT  STAT STARTED      TIME COMMAND\n" +
		"alice            71842  12.5  3.1 412345678  51234   ??  S    10:12AM   1:23.45 /usr/local/bin/node server.js\n" +
		"root                 1   0.0  0.1 408812345   9876   ??  Ss   Mon09AM   4:05.11 /sbin/launchd\n"

	output, err := executeCommand(rootCmd, "system", "top")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "71842") || !strings.Contains(output, "node server.js") {
		t.Errorf("unexpected output: %q", output)
	}
	// Highest CPU first.
	if strings.Index(output, "71842") > strings.Index(output, "launchd") {
		t.Errorf("expected CPU-descending order, got %q", output)
	}
}

func TestSystemTopTruncatesLongCommandByRunes(t *testing.T) {
	exec, _ := setupMocks(t)
	// 81 runes, 89 bytes; byte 57 falls in the middle of an "é".
	command := "x" + strings.Repeat("émulateur-", 8)
	exec.outputs["ps aux"] = "USER               PID  %CPU %MEM      VSZ    RSS   TT  STAT STARTED      TIME COMMAND\n" +
		"alice            71842  12.5  3.1 412345678  51234   ??  S    10:12AM   1:23.45 " + command + "\n"

	output, err := executeCommand(rootCmd, "system", "top")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !utf8.ValidString(output) {
		t.Error("expected truncation to keep the output valid UTF-8")
	}
	if !strings.Contains(output, "...") {
		t.Errorf("expected a truncation ellipsis, got %q", output)
	}
	if strings.Contains(output, command) {
		t.Errorf("expected the command line to be truncated, got %q", output)
	}
}

func TestSystemCleanup(t *testing.T) {
	tests := []struct {
		name          string
		brewInstalled bool
		expectedOut   string
	}{
		{name: "with homebrew", brewInstalled: true, expectedOut: "Homebrew caches cleaned"},
		{name: "without homebrew", brewInstalled: false, expectedOut: "skipping brew cleanup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, _ := setupMocks(t)
			brew.IsInstalled = func() bool { return tt.brewInstalled }

			output, err := executeCommand(rootCmd, "system", "cleanup")
			if err != nil {
				t.Fatalf("expected no error, but got: %v", err)
			}
			if !exec.called("sudo purge") {
				t.Errorf("expected purge call, got calls: %v", exec.calls)
			}
			if !strings.Contains(output, tt.expectedOut) {
				t.Errorf("expected output to contain %q, but got %q", tt.expectedOut, output)
			}
		})
	}
}

func formatUnix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
