package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SampleConfig is the default config.yaml written by Init.
const SampleConfig = `# rebind configuration

bindings:
  path: bindings.yaml   # relative to this directory

input:
  hold_ms: 500          # how long a key counts as held after its last press
  frame_rate: 30

console:
  locked: false         # a locked console cannot be opened

logging:
  level: info           # debug, info, warn or error
  format: console       # console, text or json
  file: rebind.log
`

// Init creates the .rebind directory with a sample config file. It returns
// the directory path created. An existing config file is left untouched.
func Init() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return dir, InitDir(dir)
}

// InitDir writes the sample config into dir, creating it if needed.
func InitDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return writeIfNotExists(filepath.Join(dir, "config.yaml"), SampleConfig)
}

// DirExists returns true if the .rebind config directory exists.
func DirExists() bool {
	dir, err := DefaultConfigDir()
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func writeIfNotExists(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // already exists, don't overwrite
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
