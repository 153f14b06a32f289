// Package config loads application settings from an optional YAML file
// overlaid with COMPASS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application-level settings. LLM settings live in the
// llm package and are loaded separately; no provider key ever appears
// in this struct's YAML output.
type Config struct {
	DBPath         string `yaml:"db_path"`
	OrganizationID string `yaml:"organization_id"`
	HTTPAddr       string `yaml:"http_addr"`
	HTTPPrefix     string `yaml:"http_prefix"`
}

// Default returns the built-in settings: a database under the user's
// home directory and the standard API prefix.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath:     filepath.Join(home, ".compass", "compass.db"),
		HTTPAddr:   ":8484",
		HTTPPrefix: "api",
	}
}

// Load resolves settings in order: defaults, then the YAML file at
// ~/.compass/config.yaml (if present), then environment variables.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".compass", "config.yaml")
		if fileCfg, err := loadFile(path); err != nil {
			return cfg, err
		} else if fileCfg != nil {
			cfg.merge(*fileCfg)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// loadFile reads a YAML config file. A missing file is not an error.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) merge(other Config) {
	if other.DBPath != "" {
		c.DBPath = other.DBPath
	}
	if other.OrganizationID != "" {
		c.OrganizationID = other.OrganizationID
	}
	if other.HTTPAddr != "" {
		c.HTTPAddr = other.HTTPAddr
	}
	if other.HTTPPrefix != "" {
		c.HTTPPrefix = other.HTTPPrefix
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("COMPASS_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("COMPASS_ORG_ID"); v != "" {
		c.OrganizationID = v
	}
	if v := os.Getenv("COMPASS_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("COMPASS_HTTP_PREFIX"); v != "" {
		c.HTTPPrefix = v
	}
}
