// Package config handles global configuration and default paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config represents configuration loaded from ~/.config/quoter/config.yml,
// overridable through QUOTER_* environment variables.
type Config struct {
	StorePath    string `yaml:"store_path,omitempty" envconfig:"FILE"`
	IndexPath    string `yaml:"index_path,omitempty" envconfig:"INDEX"`
	Color        string `yaml:"color,omitempty" envconfig:"COLOR"`
	FetchURL     string `yaml:"fetch_url,omitempty" envconfig:"FETCH_URL"`
	UpdateRemote string `yaml:"update_remote,omitempty" envconfig:"UPDATE_REMOTE"`
	UpdateBranch string `yaml:"update_branch,omitempty" envconfig:"UPDATE_BRANCH"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "quoter"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// DataDir is the directory name under XDG_DATA_HOME.
	DataDir = "quoter"
	// StoreFile is the default quotes file name.
	StoreFile = "quotes.json"
	// IndexFile is the default search index file name.
	IndexFile = "quotes.db"
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "quoter"
)

// ConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/quoter/config.yml.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// DataPath returns the default data directory.
// Respects XDG_DATA_HOME, defaults to ~/.local/share/quoter.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, DataDir)
}

// Load reads the global config file, applies environment overrides and
// fills in defaults. A missing config file is not an error.
func Load() (*Config, error) {
	var cfg Config

	path := ConfigPath()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StorePath == "" {
		c.StorePath = filepath.Join(DataPath(), StoreFile)
	}
	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(DataPath(), IndexFile)
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.UpdateRemote == "" {
		c.UpdateRemote = "origin"
	}
}

// Save writes the config back to the global config file.
func (c *Config) Save() error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
