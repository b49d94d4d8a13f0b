// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/logger"
)

// Storage drivers accepted by Storage.Driver.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "RESUME_BUILDER_"

const (
	defaultDir           = ".resume_builder"
	defaultFileName      = "storage.json"
	defaultSQLiteName    = "storage.db"
	defaultLogName       = "resume_builder.log"
	defaultExportTimeout = 60 * time.Second
)

// Config represents the CLI configuration. Every field is optional in each
// source; Load layers the sources and fills the rest from defaults.
type Config struct {
	Storage Storage `json:"storage,omitempty" envPrefix:"STORAGE_"`
	Log     Log     `json:"log,omitempty" envPrefix:"LOG_"`
	Export  Export  `json:"export,omitempty" envPrefix:"EXPORT_"`
}

// Storage selects the backend holding account records.
type Storage struct {
	Driver string `json:"driver,omitempty" env:"DRIVER"` // file, sqlite, postgres or memory
	Path   string `json:"path,omitempty" env:"PATH"`     // data file for file and sqlite drivers
	DSN    string `json:"dsn,omitempty" env:"DSN"`       // PostgreSQL connection URL
}

// Log controls the structured log written by the CLI.
type Log struct {
	Level string `json:"level,omitempty" env:"LEVEL"`
	File  string `json:"file,omitempty" env:"FILE"`
}

// Export configures PDF export.
type Export struct {
	Dir        string   `json:"dir,omitempty" env:"DIR"`
	Timeout    Duration `json:"timeout,omitempty" env:"TIMEOUT"`
	ChromePath string   `json:"chrome_path,omitempty" env:"CHROME_PATH"`
}

// Duration is a time.Duration read from text such as "30s" in both JSON and
// environment variables.
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats d as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Defaults returns the configuration used when no source sets a field. Paths
// depend on the driver, so defaults are computed after the other sources are
// merged.
func Defaults(driver string) *Config {
	if driver == "" {
		driver = DriverFile
	}

	dir := defaultBaseDir()
	cfg := &Config{
		Storage: Storage{Driver: driver},
		Log: Log{
			Level: "info",
			File:  filepath.Join(dir, defaultLogName),
		},
		Export: Export{
			Dir:     ".",
			Timeout: Duration(defaultExportTimeout),
		},
	}

	switch driver {
	case DriverFile:
		cfg.Storage.Path = filepath.Join(dir, defaultFileName)
	case DriverSQLite:
		cfg.Storage.Path = filepath.Join(dir, defaultSQLiteName)
	}
	return cfg
}

func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultDir
	}
	return filepath.Join(home, defaultDir)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: driver %q needs a path", ErrInvalidStorageConfig, c.Storage.Driver)
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: driver %q needs a dsn", ErrInvalidStorageConfig, c.Storage.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfig, c.Storage.Driver)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfig, err)
	}

	if c.Export.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidExportConfig)
	}

	return nil
}
