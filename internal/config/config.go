// Package config loads the recall configuration file, the optional .env file,
// and the environment overrides layered on top of them.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath points at an explicit config file
	EnvConfigPath = "RECALL_CONFIG"
	// EnvDatabasePath overrides database.path
	EnvDatabasePath = "RECALL_DB_PATH"
	// EnvThemeFile points at a YAML file whose theme section is merged over the config
	EnvThemeFile = "RECALL_THEME_FILE"

	appDirName          = "recall"
	configFileName      = "config.yaml"
	DefaultDatabaseName = "recall.db"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Default returns a config made only of default values
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case errors.Is(readErr, fs.ErrNotExist):
			// defaults only
		default:
			return nil, readErr
		}
	}

	loadThemeFile(config)

	if path := os.Getenv(EnvDatabasePath); path != "" {
		config.Database.Path = path
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// DefaultDatabasePath places the database next to the running executable,
// falling back to the working directory when the executable can't be located.
func DefaultDatabasePath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultDatabaseName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultDatabaseName)
}

// loadDotEnv reads KEY=VALUE pairs from path into the environment.
// Variables that are already set win, and a missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// loadThemeFile loads and merges theme from RECALL_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
		if themeConfig.Theme.Preset != "" {
			config.ColorScheme.Preset = themeConfig.Theme.Preset
		}
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appDirName, configFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appDirName, configFileName), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
