package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

type Config struct {
	DatabasePath string `json:"database_path"`

	MonitorInterval int `json:"monitor_interval_ms"`
	MaxItemSize     int `json:"max_item_size_bytes"`

	// RestoreDelay is how long the cosmetic "restoring" indicator stays
	// visible. It never gates the underlying fetch.
	RestoreDelay int `json:"restore_delay_ms"`
}

func Default() *Config {
	return &Config{
		DatabasePath: filepath.Join(xdg.DataHome, "clippad", "clipboard_history.db"),

		MonitorInterval: 500,
		MaxItemSize:     1 * 1024 * 1024, // 1MB of text

		RestoreDelay: 1000,
	}
}

func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Return default config if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.validate()

	return config, nil
}

func (c *Config) Save(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) validate() {
	if c.DatabasePath == "" {
		c.DatabasePath = Default().DatabasePath
	}
	if c.MonitorInterval <= 0 {
		c.MonitorInterval = 500
	}
	if c.MaxItemSize <= 0 {
		c.MaxItemSize = 1 * 1024 * 1024
	}
	if c.RestoreDelay < 0 {
		c.RestoreDelay = 1000
	}
}
