package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flagSource stands in for *cli.Context.
type flagSource struct {
	strings map[string]string
	bools   map[string]bool
}

func (f flagSource) String(name string) string { return f.strings[name] }

func (f flagSource) Bool(name string) bool { return f.bools[name] }

func (f flagSource) IsSet(name string) bool {
	if _, ok := f.bools[name]; ok {
		return true
	}
	_, ok := f.strings[name]
	return ok
}

var configEnvKeys = []string{"ENV", "LOG_LEVEL", "LOG_FORMAT", "CATALOG_SEED_PATH", "CATALOG_DEFAULT_SEED"}

// clearEnv unsets keys for the duration of the test and restores them afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func noEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, configEnvKeys...)

	cfg, err := Load(flagSource{strings: map[string]string{FlagEnvFile: noEnvFile(t)}})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.Logger.Format)
	assert.Empty(t, cfg.Catalog.SeedPath)
	assert.False(t, cfg.Catalog.DefaultSeed)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t, configEnvKeys...)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "ENV=staging\nLOG_LEVEL=debug\nLOG_FORMAT=json\nCATALOG_DEFAULT_SEED=yes\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// Environment beats .env; flags beat environment.
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "pretty")

	cfg, err := Load(flagSource{
		strings: map[string]string{FlagEnvFile: envFile, FlagLogFormat: "json"},
		bools:   map[string]bool{},
	})
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Environment, ".env fills unset values")
	assert.Equal(t, "warn", cfg.Logger.Level, "environment beats .env")
	assert.Equal(t, "json", cfg.Logger.Format, "flag beats environment")
	assert.True(t, cfg.Catalog.DefaultSeed)
}

func TestLoad_ExplicitBoolFlagBeatsEnv(t *testing.T) {
	clearEnv(t, configEnvKeys...)
	t.Setenv("CATALOG_DEFAULT_SEED", "true")

	cfg, err := Load(flagSource{
		strings: map[string]string{FlagEnvFile: noEnvFile(t)},
		bools:   map[string]bool{FlagDefaultSeed: false},
	})
	require.NoError(t, err)
	assert.False(t, cfg.Catalog.DefaultSeed)
}

func TestLoad_SeedPathExpanded(t *testing.T) {
	clearEnv(t, configEnvKeys...)

	cfg, err := Load(flagSource{strings: map[string]string{
		FlagEnvFile:  noEnvFile(t),
		FlagSeedFile: "testdata/books.json",
	}})
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Catalog.SeedPath))
	assert.Equal(t, "books.json", filepath.Base(cfg.Catalog.SeedPath))
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
	}{
		{"environment", map[string]string{FlagEnv: "test"}},
		{"log level", map[string]string{FlagLogLevel: "verbose"}},
		{"log format", map[string]string{FlagLogFormat: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t, configEnvKeys...)
			tt.flags[FlagEnvFile] = noEnvFile(t)

			_, err := Load(flagSource{strings: tt.flags})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MalformedEnvFile(t *testing.T) {
	clearEnv(t, configEnvKeys...)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("ENV='unterminated\n"), 0o600))

	_, err := Load(flagSource{strings: map[string]string{FlagEnvFile: envFile}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{
				App:    AppConfig{Environment: tt.env},
				Logger: LoggerConfig{Level: "info"},
			}

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO", "Debug"} {
		t.Run(level, func(t *testing.T) {
			cfg := &Config{
				App:    AppConfig{Environment: "development"},
				Logger: LoggerConfig{Level: level},
			}
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"tilde", "~/books/seed.json", filepath.Join(homeDir, "books", "seed.json")},
		{"absolute cleaned", "/srv//books/../seed.json", "/srv/seed.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "env-value")

	assert.Equal(t, "flag-value", getConfigValue("flag-value", "TEST_ENV_KEY", "default"))
	assert.Equal(t, "env-value", getConfigValue("", "TEST_ENV_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "TEST_UNSET_KEY_12345", "default"))
}

func TestLoadEnvFile_ExistingEnvVarsNotOverwritten(t *testing.T) {
	t.Setenv("TEST_VAR", "original-value")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_VAR=new-value\n"), 0o600))

	require.NoError(t, loadEnvFile(envFile))
	assert.Equal(t, "original-value", os.Getenv("TEST_VAR"))
}

func TestLoadEnvFile_NonExistentFile(t *testing.T) {
	assert.NoError(t, loadEnvFile("/nonexistent/file/.env"))
}
