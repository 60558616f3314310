// Package config loads and persists the application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"viewtrack/log"
	"viewtrack/viewport"
)

const ConfigFileName = "config.json"

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".viewtrack"), nil
}

// ConfigPath returns the full path of the config file.
func ConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Config represents the application configuration
type Config struct {
	// Viewports is the breakpoint ladder, sorted ascending by min_width
	// with a 0 floor. Empty means the built-in default ladder.
	Viewports []viewport.Viewport `json:"viewports"`
	// FireOnChangeOnInit fires the change callback once during startup.
	FireOnChangeOnInit bool `json:"fire_on_change_on_init"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Viewports:          viewport.DefaultViewports(),
		FireOnChangeOnInit: false,
	}
}

// TrackerConfig converts the file configuration into a viewport.Config,
// attaching the given change callback.
func (c *Config) TrackerConfig(onChange viewport.ChangeFunc) viewport.Config {
	return viewport.Config{
		OnChange:           onChange,
		FireOnChangeOnInit: c.FireOnChangeOnInit,
		Viewports:          c.Viewports,
	}
}

// LoadConfig reads the config file, creating it with defaults when missing.
// Never fails: a broken file is backed up and replaced by defaults.
func LoadConfig() *Config {
	configPath, err := ConfigPath()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file at %s: %v", configPath, err)

		// Back up the corrupted config before falling back to defaults.
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0o644); backupErr == nil {
			log.InfoLog.Printf("backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	if len(config.Viewports) == 0 {
		config.Viewports = viewport.DefaultViewports()
	}
	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0o644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
