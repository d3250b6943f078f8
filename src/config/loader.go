package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the config file at path, validating it before returning. When the
// file does not exist, the defaults are written there (pretty-printed, so the
// user can edit them) and returned; created reports that case. Any other
// failure is fatal to startup.
func Load(path string) (cfg *BotConfig, created bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg = DefaultConfig()
		if err := SaveFile(cfg, path); err != nil {
			return nil, false, &ConfigError{Path: path, Err: err}
		}
		return cfg, true, nil
	}
	if err != nil {
		return nil, false, &ConfigError{Path: path, Err: fmt.Errorf("failed to read: %w", err)}
	}

	cfg = &BotConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, false, &ConfigError{Path: path, Err: fmt.Errorf("failed to parse JSON: %w", err)}
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, false, &ConfigError{Path: path, Err: err}
	}
	return cfg, false, nil
}

// SaveFile writes the configuration to path as pretty-printed JSON, creating
// the parent directory if needed.
func SaveFile(cfg *BotConfig, path string) error {
	if err := NewValidator().Validate(cfg); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
