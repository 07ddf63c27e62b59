// Package config holds runtime configuration for the project manager.
// Configuration comes from defaults overridden by PM_* environment
// variables; none of it changes core behavior beyond where the data
// document lives and how output is presented.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration options for the application
type Config struct {
	Storage     StorageConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// StorageConfig holds data-document configuration
type StorageConfig struct {
	Dir            string `env:"PM_DATA_DIR"`
	Filename       string `env:"PM_DATA_FILE"`
	DirPermissions uint32 `env:"PM_DATA_DIR_PERMISSIONS"`
}

// DisplayConfig holds output formatting configuration
type DisplayConfig struct {
	EmptyCell string `env:"PM_DISPLAY_EMPTY_CELL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"PM_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:            "data",
			Filename:       "users.json",
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			EmptyCell: "—",
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// DocumentPath returns the full path to the data document
func (c *Config) DocumentPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration overrides from environment variables
func (c *Config) LoadFromEnvironment() {
	if dir := os.Getenv("PM_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("PM_DATA_FILE"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("PM_DATA_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}
	if cell := os.Getenv("PM_DISPLAY_EMPTY_CELL"); cell != "" {
		c.Display.EmptyCell = cell
	}
	if verbose := os.Getenv("PM_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "data filename cannot be empty"}
	}
	if c.Display.EmptyCell == "" {
		return &ConfigError{Field: "display.empty_cell", Message: "empty cell placeholder cannot be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for %s: %s", e.Field, e.Message)
}
