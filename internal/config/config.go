// Package config handles the tracker configuration file and its
// environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults for a fresh install.
const (
	DefaultListenAddr          = ":3001"
	DefaultAPIBase             = "http://localhost:3001"
	DefaultPollIntervalSeconds = 2
)

// Config is the flat tracker configuration.
type Config struct {
	ListenAddr          string `json:"listen_addr"`
	DatabasePath        string `json:"database_path,omitempty"`
	APIBase             string `json:"api_base"`
	PollIntervalSeconds int    `json:"poll_interval_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr:          DefaultListenAddr,
		APIBase:             DefaultAPIBase,
		PollIntervalSeconds: DefaultPollIntervalSeconds,
	}
}

// PollInterval returns the polling interval as a duration.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return DefaultPollIntervalSeconds * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// Load reads .homeworks/config.json from dir.
// Returns an error when no config is found; callers fall back to
// Default.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".homeworks", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes config.json under dir/.homeworks.
func Save(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".homeworks")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Resolve loads the config from the user's home directory, falling
// back to defaults, then applies environment overrides: PORT for the
// listen address, HOMEWORKS_DB for the database path, HOMEWORKS_API
// for the client API base.
func Resolve() *Config {
	cfg := Default()
	if home, err := os.UserHomeDir(); err == nil {
		if loaded, err := Load(home); err == nil {
			cfg = loaded
		}
	}
	applyEnv(cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}
	if dbPath := os.Getenv("HOMEWORKS_DB"); dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if apiBase := os.Getenv("HOMEWORKS_API"); apiBase != "" {
		cfg.APIBase = apiBase
	}
}
