// Package config provides Viper-based configuration management for llmctl
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete llmctl configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// APIConfig contains LLM Central gateway settings
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig contains local session storage settings
type SessionConfig struct {
	TokenFile string `mapstructure:"token_file"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile, baseURL string) (*Config, error) {
	v := viper.New()

	// Set config file if specified
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .llmctl.yaml
		v.SetConfigName(".llmctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/llmctl")
	}

	// Environment variables
	v.SetEnvPrefix("LLMCTL")
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Override base URL if specified via flag
	if baseURL != "" {
		v.Set("api.base_url", baseURL)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Resolve the token file after unmarshaling so file/env overrides
	// win over the per-user default.
	if cfg.Session.TokenFile == "" {
		cfg.Session.TokenFile = defaultTokenFile()
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	// Gateway defaults; the portal always talks to <base>/api
	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout", 30*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Output defaults
	v.SetDefault("output.colors", true)
}

// defaultTokenFile returns the per-user location of the persisted credential
func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".llmctl", "token")
	}
	return filepath.Join(home, ".config", "llmctl", "token")
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	// Validate the gateway base URL
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api.base_url: %s", cfg.API.BaseURL)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive: %s", cfg.API.Timeout)
	}

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	return nil
}
