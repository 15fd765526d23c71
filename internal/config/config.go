// Package config handles loading and validating rebind configuration and the
// saved binding file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Bindings BindingsConfig `yaml:"bindings"`
	Input    InputConfig    `yaml:"input"`
	Console  ConsoleConfig  `yaml:"console"`
	Logging  LoggingConfig  `yaml:"logging"`

	// dir is the directory holding the config file; relative paths resolve
	// against it.
	dir string
}

// BindingsConfig locates the saved binding table.
type BindingsConfig struct {
	Path string `yaml:"path"`
}

// InputConfig tunes terminal input sampling.
type InputConfig struct {
	HoldMS    int `yaml:"hold_ms"`    // terminal hold emulation window
	FrameRate int `yaml:"frame_rate"` // frames per second
}

// ConsoleConfig holds console settings.
type ConsoleConfig struct {
	Locked bool `yaml:"locked"`
}

// LoggingConfig holds log settings. The TUI owns stdout, so logs go to File.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

const (
	defaultBindingsFile = "bindings.yaml"
	defaultHoldMS       = 500
	defaultFrameRate    = 30
	defaultLevel        = "info"
	defaultFormat       = "console"
	defaultLogFile      = "rebind.log"

	maxFrameRate = 240
)

// DefaultConfigDir returns the .rebind directory next to the executable.
func DefaultConfigDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("finding executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable symlinks: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), ".rebind"), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads and parses the config file at configPath. Zero values are
// replaced by defaults before validation.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.dir = filepath.Dir(configPath)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Bindings.Path == "" {
		c.Bindings.Path = defaultBindingsFile
	}
	if c.Input.HoldMS == 0 {
		c.Input.HoldMS = defaultHoldMS
	}
	if c.Input.FrameRate == 0 {
		c.Input.FrameRate = defaultFrameRate
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultFormat
	}
	if c.Logging.File == "" {
		c.Logging.File = defaultLogFile
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Bindings.Path == "" {
		return fmt.Errorf("bindings.path is required")
	}
	if c.Input.HoldMS < 0 {
		return fmt.Errorf("input.hold_ms must not be negative")
	}
	if c.Input.FrameRate < 1 || c.Input.FrameRate > maxFrameRate {
		return fmt.Errorf("input.frame_rate must be between 1 and %d", maxFrameRate)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn or error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be console, text or json", c.Logging.Format)
	}
	return nil
}

// BindingsPath returns the resolved binding file path.
func (c *Config) BindingsPath() string {
	return c.resolve(c.Bindings.Path)
}

// LogPath returns the resolved log file path.
func (c *Config) LogPath() string {
	return c.resolve(c.Logging.File)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// Hold returns the key hold window.
func (c *Config) Hold() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// FrameInterval returns the time between frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Input.FrameRate)
}
