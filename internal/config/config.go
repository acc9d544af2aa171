// Package config provides YAML-based application configuration for Pocket Dragon.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocket-dragon/internal/difficulty"
)

// Config contains all application settings.
type Config struct {
	Difficulty string       `yaml:"difficulty"` // Tier selected at startup
	Sound      bool         `yaml:"sound"`      // Whether feed alerts are played
	DBPath     string       `yaml:"db_path"`    // Results ledger path, ~ is expanded
	Seed       int64        `yaml:"seed"`       // RNG seed, 0 means time based
	Server     ServerConfig `yaml:"server"`

	// Source is the file the config was read from, or "default".
	Source string `yaml:"-"`
}

// ServerConfig contains settings for the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Empty means ~/.pocketdragon/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Difficulty: string(difficulty.NameEasy),
		Sound:      true,
		DBPath:     "~/.pocketdragon/results.db",
		Seed:       0,
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Source: "default",
	}
}

// DifficultyConfig resolves the configured tier.
func (c Config) DifficultyConfig() (difficulty.Config, error) {
	return difficulty.ByName(c.Difficulty)
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if _, err := c.DifficultyConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	return nil
}
