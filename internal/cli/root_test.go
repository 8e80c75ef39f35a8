package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mactl/internal/config"
)

func TestUnknownCategory(t *testing.T) {
	setupMocks(t)

	_, err := executeCommand(rootCmd, "bogus")
	if err == nil {
		t.Fatal("expected an error for an unknown category")
	}
	if !strings.Contains(err.Error(), `unknown category "bogus"`) {
		t.Errorf("expected unknown category message, got: %v", err)
	}
	for _, category := range []string{"wifi", "network", "display", "dock", "finder", "system", "dev", "audio", "screenshot"} {
		if !strings.Contains(err.Error(), category) {
			t.Errorf("expected error to list category %q, got: %v", category, err)
		}
	}
}

func TestNoArgsPrintsHelp(t *testing.T) {
	setupMocks(t)

	output, err := executeCommand(rootCmd)
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "Categories:") {
		t.Errorf("expected help output with category group, got: %s", output)
	}
}

func TestActionRequired(t *testing.T) {
	tests := []struct {
		category string
		action   string // one action the error should list
	}{
		{"wifi", "toggle"},
		{"network", "ip"},
		{"display", "brightness"},
		{"dock", "autohide"},
		{"finder", "hidden"},
		{"system", "memory"},
		{"dev", "killport"},
		{"audio", "volume"},
		{"screenshot", "take"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			setupMocks(t)

			_, err := executeCommand(rootCmd, tt.category)
			if err == nil {
				t.Fatal("expected an error when no action is given")
			}
			if !strings.Contains(err.Error(), "action required") {
				t.Errorf("expected action required message, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.action) {
				t.Errorf("expected error to list action %q, got: %v", tt.action, err)
			}
		})
	}
}

func TestUnknownAction(t *testing.T) {
	setupMocks(t)

	_, err := executeCommand(rootCmd, "wifi", "explode")
	if err == nil {
		t.Fatal("expected an error for an unknown action")
	}
	if !strings.Contains(err.Error(), `unknown action "explode"`) {
		t.Errorf("expected unknown action message, got: %v", err)
	}
	if !strings.Contains(err.Error(), "toggle") {
		t.Errorf("expected error to list valid actions, got: %v", err)
	}
}

func TestBuiltinShortcuts(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedOut string
	}{
		{name: "dark", args: []string{"dark"}, expectedOut: "Switched to Dark mode"},
		{name: "light", args: []string{"light"}, expectedOut: "Light mode is already on"},
		{name: "kp forwards args", args: []string{"kp", "3000"}, expectedOut: "No process listening on port 3000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, _ := setupMocks(t)
			exec.fail["lsof -ti tcp:3000"] = true

			output, err := executeCommand(rootCmd, tt.args...)
			if err != nil {
				t.Fatalf("expected no error, but got: %v", err)
			}
			if !strings.Contains(output, tt.expectedOut) {
				t.Errorf("expected output to contain %q, but got %q", tt.expectedOut, output)
			}
		})
	}
}

// writeUserShortcuts points config.New at a fresh home dir containing the
// given config.yaml body.
func writeUserShortcuts(t *testing.T, yaml string) {
	t.Helper()
	tempDir := t.TempDir()
	appDir := filepath.Join(tempDir, ".mactl")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	config.New = func() (*config.Config, error) {
		cfg := &config.Config{}
		cfg.SetHomeDir(tempDir)
		return cfg, nil
	}
}

func TestUserShortcutFromConfig(t *testing.T) {
	setupMocks(t)
	writeUserShortcuts(t, "shortcuts:\n  hf: finder hidden\n")

	output, err := executeCommand(rootCmd, "hf")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "Hidden files") {
		t.Errorf("expected finder hidden status output, got: %q", output)
	}
}

func TestUserShortcutSelfReference(t *testing.T) {
	setupMocks(t)
	writeUserShortcuts(t, "shortcuts:\n  foo: foo again\n")

	// A self-referential alias must fail like any unknown name instead of
	// re-entering dispatch forever.
	output, err := executeCommand(rootCmd, "foo")
	if err == nil || !strings.Contains(err.Error(), `unknown category "foo"`) {
		t.Errorf("expected unknown category error, got: %v", err)
	}
	if !strings.Contains(output, `Ignoring shortcut "foo"`) {
		t.Errorf("expected ignore warning, got: %q", output)
	}
}

func TestUserShortcutBadTargetIsIgnored(t *testing.T) {
	setupMocks(t)
	writeUserShortcuts(t, "shortcuts:\n  zap: nosuchcategory action\n")

	output, err := executeCommand(rootCmd, "zap")
	if err == nil || !strings.Contains(err.Error(), `unknown category "zap"`) {
		t.Errorf("expected unknown category error, got: %v", err)
	}
	if !strings.Contains(output, `Ignoring shortcut "zap"`) {
		t.Errorf("expected ignore warning, got: %q", output)
	}
}

func TestUserShortcutShadowingCommandIsIgnored(t *testing.T) {
	setupMocks(t)
	writeUserShortcuts(t, "shortcuts:\n  dock: display dark\n")

	// The real command wins over the alias...
	_, err := executeCommand(rootCmd, "dock")
	if err == nil || !strings.Contains(err.Error(), "action required") {
		t.Errorf("expected the dock category, not the alias, got: %v", err)
	}

	// ...and shortcut resolution warns that the alias is dead.
	output, _ := executeCommand(rootCmd, "bogus")
	if !strings.Contains(output, `Ignoring shortcut "dock"`) {
		t.Errorf("expected shadow warning, got: %q", output)
	}
}

func TestVersionCommand(t *testing.T) {
	setupMocks(t)
	SetVersionInfo("1.2.3", "abc123", "2026-08-25")

	output, err := executeCommand(rootCmd, "version")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "1.2.3") || !strings.Contains(output, "abc123") {
		t.Errorf("expected version info in output, got: %q", output)
	}
}

func TestDebugCommand(t *testing.T) {
	setupMocks(t)

	output, err := executeCommand(rootCmd, "debug")
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if !strings.Contains(output, "/tmp/report.txt") {
		t.Errorf("expected report path in output, got: %q", output)
	}
}
