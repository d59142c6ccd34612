// Package config loads the YAML application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Tick rate bounds in ticks per second.
const (
	MinTickRate     = 10
	MaxTickRate     = 60
	DefaultTickRate = 20
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// AppConfig is the complete application configuration.
type AppConfig struct {
	TickRate int           `yaml:"tick_rate"`
	Seed     int64         `yaml:"seed"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
	SSH      SSHConfig     `yaml:"ssh"`
}

// StorageConfig selects where the high score lives.
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	HighScoreFile string `yaml:"highscore_file"`
	DBPath        string `yaml:"db_path"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig controls `tflap serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Normalize fills unset values with defaults and clamps the tick rate.
// It returns an error for values that cannot be repaired.
func (c *AppConfig) Normalize() error {
	d := DefaultConfig()

	switch {
	case c.TickRate == 0:
		c.TickRate = d.TickRate
	case c.TickRate < MinTickRate:
		c.TickRate = MinTickRate
	case c.TickRate > MaxTickRate:
		c.TickRate = MaxTickRate
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case "":
		c.Storage.Backend = d.Storage.Backend
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown storage backend %q (want %s or %s)",
			c.Storage.Backend, BackendFile, BackendSQLite)
	}
	if c.Storage.HighScoreFile == "" {
		c.Storage.HighScoreFile = d.Storage.HighScoreFile
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = d.Storage.DBPath
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}

	if c.SSH.Address == "" {
		c.SSH.Address = d.SSH.Address
	}
	if c.SSH.HostKey == "" {
		c.SSH.HostKey = d.SSH.HostKey
	}
	if c.SSH.IdleTimeout <= 0 {
		c.SSH.IdleTimeout = d.SSH.IdleTimeout
	}
	return nil
}

// ExpandPaths replaces a leading ~ in every configured path with the
// user's home directory.
func (c *AppConfig) ExpandPaths() error {
	for _, p := range []*string{
		&c.Storage.HighScoreFile,
		&c.Storage.DBPath,
		&c.Log.File,
		&c.SSH.HostKey,
	} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
