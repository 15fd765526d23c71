package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBindings reads the serialized binding tokens at path. Returns nil, nil
// if the file does not exist (caller keeps the defaults).
func LoadBindings(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading bindings file: %w", err)
	}

	var tokens []string
	if err := yaml.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("parsing bindings file: %w", err)
	}
	if tokens == nil {
		tokens = []string{}
	}
	return tokens, nil
}

// SaveBindings writes tokens to path as a yaml sequence, replacing the file
// atomically.
func SaveBindings(path string, tokens []string) error {
	data, err := yaml.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("marshaling bindings: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing bindings file: %w", err)
	}
	slog.Info("Bindings saved", "path", path, "tokens", len(tokens))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	file, err := os.CreateTemp(dir, ".tmp-*.yaml")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}

// FileStore persists bindings in a single yaml file.
type FileStore struct {
	Path string
}

func (s FileStore) Load() ([]string, error) { return LoadBindings(s.Path) }

func (s FileStore) Save(tokens []string) error { return SaveBindings(s.Path, tokens) }
