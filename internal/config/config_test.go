package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

const validConfig = `
bindings:
  path: keys.yaml
input:
  hold_ms: 250
  frame_rate: 60
console:
  locked: true
logging:
  level: debug
  format: json
  file: /var/log/rebind.log
`

func TestLoadValidConfig(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", validConfig)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BindingsPath() != filepath.Join(filepath.Dir(cfgPath), "keys.yaml") {
		t.Errorf("unexpected bindings path: %s", cfg.BindingsPath())
	}
	if cfg.Hold() != 250*time.Millisecond {
		t.Errorf("unexpected hold: %v", cfg.Hold())
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("unexpected frame interval: %v", cfg.FrameInterval())
	}
	if !cfg.Console.Locked {
		t.Error("expected console locked")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.LogPath() != "/var/log/rebind.log" {
		t.Errorf("absolute log path should not be resolved: %s", cfg.LogPath())
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "console:\n  locked: false\n")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bindings.Path != "bindings.yaml" {
		t.Errorf("unexpected bindings path: %s", cfg.Bindings.Path)
	}
	if cfg.Input.HoldMS != 500 || cfg.Input.FrameRate != 30 {
		t.Errorf("unexpected input defaults: %+v", cfg.Input)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" || cfg.Logging.File != "rebind.log" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "")
	if _, err := Load(cfgPath); err != nil {
		t.Fatalf("empty config should load with defaults: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := writeTestFile(t, "config.yaml", "input: [unclosed")
	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative hold", "input:\n  hold_ms: -1\n"},
		{"frame rate too high", "input:\n  frame_rate: 1000\n"},
		{"negative frame rate", "input:\n  frame_rate: -5\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := writeTestFile(t, "config.yaml", tt.content)
			_, err := Load(cfgPath)
			if err == nil || !strings.Contains(err.Error(), "invalid config") {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "defaults",
			config:  defaultConfig(),
			wantErr: false,
		},
		{
			name:    "empty",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "zero hold",
			config: Config{
				Bindings: BindingsConfig{Path: "b.yaml"},
				Input:    InputConfig{HoldMS: 0, FrameRate: 10},
				Logging:  LoggingConfig{Level: "warn", Format: "text"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSampleConfigLoads(t *testing.T) {
	dir := t.TempDir()
	if err := InitDir(dir); err != nil {
		t.Fatalf("InitDir: %v", err)
	}
	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if cfg.BindingsPath() != filepath.Join(dir, "bindings.yaml") {
		t.Errorf("unexpected bindings path: %s", cfg.BindingsPath())
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(SampleConfig), &raw); err != nil {
		t.Fatalf("sample config is not yaml: %v", err)
	}
	for _, key := range []string{"bindings", "input", "console", "logging"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("sample config missing %q", key)
		}
	}
}

func TestInitDirKeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("console:\n  locked: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitDir(dir); err != nil {
		t.Fatalf("InitDir: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "console:\n  locked: true\n" {
		t.Errorf("existing config was overwritten: %q", data)
	}
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file %s: %v", name, err)
	}
	return path
}

func defaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}
