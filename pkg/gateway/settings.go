// Persisted settings file
package gateway

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsPath returns the default location of the persisted settings
// file, ~/.bedrock-gateway/config.yaml.
func SettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".bedrock-gateway", "config.yaml"), nil
}

// LoadSettings reads a Config from the YAML file at path. A missing
// file is not an error: it yields a zero Config, and the caller falls
// back to defaults for every field.
func LoadSettings(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return cfg, nil
}

// SaveSettings writes cfg as YAML to path, creating the parent
// directory when absent.
func SaveSettings(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings file %s: %w", path, err)
	}
	return nil
}
