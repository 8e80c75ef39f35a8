package cli

import (
	"strings"
	"testing"
)

func TestWifiToggle(t *testing.T) {
	tests := []struct {
		name         string
		powerOn      bool
		expectedCall string
		expectedOut  string
	}{
		{name: "on goes off", powerOn: true, expectedCall: "networksetup -setairportpower en0 off", expectedOut: "Wi-Fi turned off"},
		{name: "off goes on", powerOn: false, expectedCall: "networksetup -setairportpower en0 on", expectedOut: "Wi-Fi turned on"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, _ := setupMocks(t)
			wifiPower = func(device string) (bool, error) { return tt.powerOn, nil }

			output, err := executeCommand(rootCmd, "wifi", "toggle")
			if err != nil {
				t.Fatalf("expected no error, but got: %v", err)
			}
			if !exec.called(tt.expectedCall) {
				t.Errorf("expected call %q, got calls: %v", tt.expectedCall, exec.calls)
			}
			if !strings.Contains(output, tt.expectedOut) {
				t.Errorf("expected output to contain %q, but got %q", tt.expectedOut, output)
			}
		})
	}
}

func TestWifiOnIdempotent(t *testing.T) {
	exec, _ := setupMocks(t)
	wifiPower = func(device string) (bool, error) { return true, nil }

	output, err := executeCommand(rootCmd, "wifi", "on")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "already on") {
		t.Errorf("expected idempotence message, got %q", output)
	}
	if exec.called("networksetup -setairportpower") {
		t.Errorf("expected no power write when already on, got calls: %v", exec.calls)
	}
}

func TestWifiOff(t *testing.T) {
	exec, _ := setupMocks(t)
	wifiPower = func(device string) (bool, error) { return true, nil }

	output, err := executeCommand(rootCmd, "wifi", "off")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !exec.called("networksetup -setairportpower en0 off") {
		t.Errorf("expected power off call, got calls: %v", exec.calls)
	}
	if !strings.Contains(output, "Wi-Fi turned off") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestWifiStatus(t *testing.T) {
	tests := []struct {
		name        string
		powerOn     bool
		ssid        string
		expectedOut []string
	}{
		{name: "connected", powerOn: true, ssid: "HomeNet", expectedOut: []string{"Wi-Fi (en0) is on", "Connected to: HomeNet"}},
		{name: "on but roaming", powerOn: true, ssid: "", expectedOut: []string{"Not associated"}},
		{name: "radio off", powerOn: false, expectedOut: []string{"Wi-Fi (en0) is off"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupMocks(t)
			wifiPower = func(device string) (bool, error) { return tt.powerOn, nil }
			currentSSID = func(device string) (string, error) { return tt.ssid, nil }

			output, err := executeCommand(rootCmd, "wifi", "status")
			if err != nil {
				t.Fatalf("expected no error, but got: %v", err)
			}
			for _, expected := range tt.expectedOut {
				if !strings.Contains(output, expected) {
					t.Errorf("expected output to contain %q, but got %q", expected, output)
				}
			}
		})
	}
}

func TestWifiNameNotAssociated(t *testing.T) {
	setupMocks(t)
	currentSSID = func(device string) (string, error) { return "", nil }

	_, err := executeCommand(rootCmd, "wifi", "name")
	if err == nil {
		t.Fatal("expected an error when not associated")
	}
}
