package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/attractgen/internal/config"
)

func TestConfigSetGet(t *testing.T) {
	home := isolateHome(t)

	out, _, err := runCmd(t, "config", "set", "seed", "42")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if out != "Set seed = 42\n" {
		t.Errorf("unexpected set output: %q", out)
	}

	saved, err := config.LoadFromFile(filepath.Join(home, ".attractgen", "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if saved.Seed != 42 {
		t.Errorf("expected saved seed 42, got %d", saved.Seed)
	}

	out, _, err = runCmd(t, "config", "get", "seed")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "seed = 42\n" {
		t.Errorf("unexpected get output: %q", out)
	}
}

func TestConfigSet_ExplicitPath(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	if _, _, err := runCmd(t, "config", "set", "output", "custom.txt", "--config", path); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, _, err := runCmd(t, "config", "list", "--config", path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "output: custom.txt") {
		t.Errorf("expected custom output in list, got %q", out)
	}
}

func TestConfigSet_KeepsUnparsableFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := "output: keep.txt\nseed: 9\nrange: [oops\n"
	if err := os.WriteFile(path, []byte(original), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, _, err := runCmd(t, "config", "set", "seed", "1", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Fatalf("expected parse error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != original {
		t.Errorf("config file was rewritten:\n%s", data)
	}
}

func TestConfigSet_Invalid(t *testing.T) {
	isolateHome(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown key", []string{"nope", "1"}, "unknown configuration key"},
		{"bad seed", []string{"seed", "-1"}, "invalid seed"},
		{"bad level", []string{"logging.level", "loud"}, "invalid log level"},
		{"low above high", []string{"range.low", "6"}, "range.high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, append([]string{"config", "set"}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigGet_Unknown(t *testing.T) {
	isolateHome(t)

	_, _, err := runCmd(t, "config", "get", "llm.provider")
	if err == nil || !strings.Contains(err.Error(), "unknown configuration key") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestGetSetConfigValue(t *testing.T) {
	cfg := config.Default()
	for key, value := range map[string]string{
		"output":        "x.txt",
		"seed":          "9",
		"range.low":     "1.5",
		"range.high":    "4",
		"logging.level": "trace",
	} {
		if err := setConfigValue(cfg, key, value); err != nil {
			t.Fatalf("setConfigValue(%s): %v", key, err)
		}
		got, ok := getConfigValue(cfg, key)
		if !ok {
			t.Fatalf("getConfigValue(%s) not found", key)
		}
		if fmt.Sprint(got) != value {
			t.Errorf("%s: got %v, want %s", key, got, value)
		}
	}
}
