package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// execute runs the root command with fresh flag values in an isolated
// home and working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(config.EnvConfigPath, "")
	t.Chdir(dir)

	flagFPS, flagSeed, flagConfig = 60, 0, ""
	flagLogLevel, flagLogFile = "error", ""
	flagTicks, flagJumpEvery, flagAutopilot = 60*60, 0, false
	flagWidth, flagHeight = 0, 0
	flagDefaults = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConfigEffective(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap_size: 180\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "gap_size: 180") {
		t.Errorf("custom value missing from output:\n%s", out)
	}
}

func TestSimFreeFall(t *testing.T) {
	out, err := execute(t, "sim", "--seed", "1", "--jump-every", "0")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	for _, want := range []string{"score: 0", "ticks: 33", "outcome: game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimRejectsSmallPlayArea(t *testing.T) {
	_, err := execute(t, "sim", "--height", "100")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSimLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "flappy.log")

	if _, err := execute(t, "sim", "--log-level", "info", "--log-file", logPath); err != nil {
		t.Fatalf("sim: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "simulation finished") {
		t.Errorf("log file missing the result line:\n%s", data)
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := execute(t, "sim", "--log-level", "loud"); err == nil {
		t.Fatal("expected an error for an unknown log level")
	}
}
