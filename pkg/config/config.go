package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Backend
	ServerURL             string `yaml:"server_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`

	// Listing
	DefaultSort string `yaml:"default_sort"`
	ReverseSort bool   `yaml:"reverse_sort"`

	// Uploads
	MaxParallelUploads int `yaml:"max_parallel_uploads"`
	WatchDebounceMS    int `yaml:"watch_debounce_ms"`

	// UI Settings
	ColorTheme         string `yaml:"color_theme"`
	SyntaxHighlighting bool   `yaml:"syntax_highlighting"`
	DisplayDateFormat  string `yaml:"display_date_format"`
	TableWidth         int    `yaml:"table_width"`

	// Performance
	EnableCache            bool `yaml:"enable_cache"`
	CacheExpirationMinutes int  `yaml:"cache_expiration_minutes"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:              "http://localhost:8000",
		RequestTimeoutSeconds:  60,
		DefaultSort:            "date",
		ReverseSort:            false,
		MaxParallelUploads:     4,
		WatchDebounceMS:        500,
		ColorTheme:             "auto",
		SyntaxHighlighting:     true,
		DisplayDateFormat:      "2006-01-02",
		TableWidth:             0,
		EnableCache:            true,
		CacheExpirationMinutes: 5,
		LogLevel:               "info",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8000"
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = 60
	}
	if cfg.MaxParallelUploads <= 0 {
		cfg.MaxParallelUploads = 4
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "date"
	}
	if cfg.DisplayDateFormat == "" {
		cfg.DisplayDateFormat = "2006-01-02"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !isValidSort(cfg.DefaultSort) {
		cfg.DefaultSort = "date"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidSort checks if the sort key is one the list view understands
func isValidSort(key string) bool {
	switch key {
	case "name", "size", "date":
		return true
	}
	return false
}

// Dir returns the application state directory (~/.docan), creating it if
// needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".docan")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
