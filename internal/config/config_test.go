package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadFromBytes(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Probe.Timeout.Duration != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s default", cfg.Probe.Timeout.Duration)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %q, want \"text\" default", cfg.Output.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want \"info\" default", cfg.Logging.Level)
	}
}

func TestLoadFromBytes_ParsesYAML(t *testing.T) {
	data := []byte("probe:\n  timeout: \"3s\"\n  nvidia_smi_path: \"/opt/cuda/bin/nvidia-smi\"\noutput:\n  format: \"json\"")
	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Probe.Timeout.Duration != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Probe.Timeout.Duration)
	}
	if cfg.Probe.NvidiaSMIPath != "/opt/cuda/bin/nvidia-smi" {
		t.Errorf("NvidiaSMIPath = %q, want file value", cfg.Probe.NvidiaSMIPath)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want \"json\"", cfg.Output.Format)
	}
}

func TestLoadFromBytes_EnvOverridesFile(t *testing.T) {
	data := []byte("output:\n  format: \"text\"\nlogging:\n  level: \"info\"")
	t.Setenv("VKSCOUT_OUTPUT_FORMAT", "json")
	t.Setenv("VKSCOUT_LOG_LEVEL", "debug")

	cfg, err := LoadFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want env override", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want env override", cfg.Logging.Level)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %q, want default", cfg.Output.Format)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("probe:\n  timeout: \"30s\""), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Probe.Timeout.Duration != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s from file", cfg.Probe.Timeout.Duration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"json format is valid", func(c *Config) { c.Output.Format = "json" }, false},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"zero timeout", func(c *Config) { c.Probe.Timeout.Duration = 0 }, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
