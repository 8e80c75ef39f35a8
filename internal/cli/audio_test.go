package cli

import (
	"strings"
	"testing"
)

func TestVolumeValidation(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{name: "too high", arg: "150", wantErr: true},
		{name: "negative", arg: "-5", wantErr: true},
		{name: "lower bound", arg: "0"},
		{name: "upper bound", arg: "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, _ := setupMocks(t)

			_, err := executeCommand(rootCmd, "audio", "volume", tt.arg)
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "Volume must be between 0 and 100") {
					t.Errorf("expected range error, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error for %q, but got: %v", tt.arg, err)
			}
			if !exec.called("osascript -e set volume output volume " + tt.arg) {
				t.Errorf("expected osascript volume call, got calls: %v", exec.calls)
			}
		})
	}
}

func TestMuteIdempotent(t *testing.T) {
	exec, _ := setupMocks(t)
	volumeSettings = func() (int, bool, error) { return 50, true, nil }

	output, err := executeCommand(rootCmd, "audio", "mute")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "already muted") {
		t.Errorf("expected idempotence message, got %q", output)
	}
	if exec.called("osascript -e set volume output muted") {
		t.Errorf("expected no mute write when already muted, calls: %v", exec.calls)
	}
}

func TestUnmute(t *testing.T) {
	exec, _ := setupMocks(t)
	volumeSettings = func() (int, bool, error) { return 50, true, nil }

	output, err := executeCommand(rootCmd, "audio", "unmute")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !exec.called("osascript -e set volume output muted false") {
		t.Errorf("expected unmute call, got calls: %v", exec.calls)
	}
	if !strings.Contains(output, "unmuted") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestAudioStatus(t *testing.T) {
	setupMocks(t)
	volumeSettings = func() (int, bool, error) { return 30, true, nil }

	output, err := executeCommand(rootCmd, "audio", "status")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "30%") || !strings.Contains(output, "muted") {
		t.Errorf("unexpected output: %q", output)
	}
}
