// Package config provides application configuration management with support for command-line flags, environment variables, and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Flag names read from the command line.
const (
	FlagEnv         = "env"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagEnvFile     = "env-file"
	FlagSeedFile    = "seed-file"
	FlagDefaultSeed = "default-seed"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Catalog CatalogConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string // json or pretty; empty picks by environment
}

// CatalogConfig holds the startup contents of the catalog.
type CatalogConfig struct {
	// SeedPath is an optional JSON array of records loaded at startup.
	SeedPath string
	// DefaultSeed loads the built-in starter records before SeedPath.
	DefaultSeed bool
}

// Source supplies command-line flag values. *cli.Context satisfies it.
type Source interface {
	String(name string) string
	Bool(name string) bool
	IsSet(name string) bool
}

// Load builds the configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(src Source) (*Config, error) {
	envFile := src.String(FlagEnvFile)
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, fmt.Errorf("load env file %q: %w", envFile, err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(src.String(FlagEnv), "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getConfigValue(src.String(FlagLogLevel), "LOG_LEVEL", "info"),
			Format: getConfigValue(src.String(FlagLogFormat), "LOG_FORMAT", ""),
		},
		Catalog: CatalogConfig{
			SeedPath:    getConfigValue(src.String(FlagSeedFile), "CATALOG_SEED_PATH", ""),
			DefaultSeed: getBoolConfigValue(src, FlagDefaultSeed, "CATALOG_DEFAULT_SEED", false),
		},
	}

	if err := cfg.expandSeedPath(); err != nil {
		return nil, fmt.Errorf("invalid seed path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Logger.Format {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("invalid log format: %s (must be json or pretty)", c.Logger.Format)
	}

	return nil
}

// expandPath expands ~ and makes the path absolute.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandSeedPath expands ~ and makes the seed path absolute. Empty stays empty.
func (c *Config) expandSeedPath() error {
	expanded, err := expandPath(c.Catalog.SeedPath)
	if err != nil {
		return err
	}
	c.Catalog.SeedPath = expanded
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue returns a bool from an explicitly set flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(src Source, flagName, envKey string, defaultValue bool) bool {
	if src.IsSet(flagName) {
		return src.Bool(flagName)
	}
	strValue := os.Getenv(envKey)
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads variables from a .env file without overriding ones already
// set in the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
