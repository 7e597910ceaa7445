package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BackupConfig controls periodic JSON snapshots of the run data.
type BackupConfig struct {
	Enabled  *bool  `yaml:"enabled" json:"enabled,omitempty"`
	Dir      string `yaml:"dir" json:"dir"`
	Schedule string `yaml:"schedule" json:"schedule"`
	Keep     int    `yaml:"keep" json:"keep"`
}

// IsEnabled returns whether periodic backups are enabled.
// Defaults to true when unset.
func (c BackupConfig) IsEnabled() bool {
	if c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// Config is the top-level daemon configuration parsed from runtrack.yaml.
type Config struct {
	Listen   string       `yaml:"listen" json:"listen"`
	DataDir  string       `yaml:"data_dir" json:"data_dir"`
	LogLevel string       `yaml:"log_level" json:"log_level"`
	Backup   BackupConfig `yaml:"backup" json:"backup"`
}

func applyDefaults(c *Config) {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	c.DataDir = expandPath(c.DataDir)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Backup.Dir == "" {
		c.Backup.Dir = filepath.Join(c.DataDir, "backups")
	} else {
		c.Backup.Dir = expandPath(c.Backup.Dir)
	}
	if c.Backup.Schedule == "" {
		c.Backup.Schedule = "@daily"
	}
	if c.Backup.Keep <= 0 {
		c.Backup.Keep = 14
	}
	if c.Backup.Enabled == nil {
		t := true
		c.Backup.Enabled = &t
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "./data"
	}
	return filepath.Join(home, ".local", "share", "runtrack")
}

func expandPath(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return value
	}

	v = os.ExpandEnv(v)

	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return v
	}

	if v == "~" {
		return home
	}
	if strings.HasPrefix(v, "~/") {
		return filepath.Join(home, v[2:])
	}
	if strings.HasPrefix(v, "~\\") {
		return filepath.Join(home, v[2:])
	}
	return v
}

// LoadConfig reads the YAML configuration file at path and returns a Config
// with defaults applied for any unset fields. A missing file is not an
// error: the defaults apply so the tool runs without any setup.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Fall through to defaults.
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}
