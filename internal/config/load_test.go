package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value behaves as unset for the loader.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that Load returns the documented defaults when
// nothing is configured.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"PUZZLES_LOG_LEVEL":         "",
		"PUZZLES_PUZZLES_INPUT_DIR": "",
		"PUZZLES_PUZZLES_DAYS":      "",
		"PUZZLES_SCRATCH_STRATEGY":  "",
		ConfigDirEnv:                "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "info", cfg.Log.Level, "Default log level should be 'info'")
	assert.Equal(t, "data", cfg.Puzzles.InputDir)
	assert.Equal(t, []int{1, 2, 3, 4}, cfg.Puzzles.Days)
	assert.Equal(t, "worklist", cfg.Scratch.Strategy)
	assert.Equal(t, CubesConfig{Red: 12, Green: 13, Blue: 14}, cfg.Cubes)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"PUZZLES_LOG_LEVEL":         "debug",
		"PUZZLES_PUZZLES_INPUT_DIR": "/srv/inputs",
		"PUZZLES_PUZZLES_DAYS":      "4,2",
		"PUZZLES_SCRATCH_STRATEGY":  "multiplier",
		"PUZZLES_CUBES_RED":         "20",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/inputs", cfg.Puzzles.InputDir)
	assert.Equal(t, []int{4, 2}, cfg.Puzzles.Days)
	assert.Equal(t, "multiplier", cfg.Scratch.Strategy)
	assert.Equal(t, 20, cfg.Cubes.Red)
	assert.Equal(t, 13, cfg.Cubes.Green, "unset colours keep their default")
}

// TestLoadFromFile verifies that config.yaml is read and that environment
// variables still win over it.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
log:
  level: warn
puzzles:
  input_dir: inputs
  days: [4]
scratch:
  strategy: multiplier
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	setupEnv(t, map[string]string{
		ConfigDirEnv:               dir,
		"PUZZLES_LOG_LEVEL":        "error",
		"PUZZLES_SCRATCH_STRATEGY": "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level, "environment overrides the file")
	assert.Equal(t, "inputs", cfg.Puzzles.InputDir)
	assert.Equal(t, []int{4}, cfg.Puzzles.Days)
	assert.Equal(t, "multiplier", cfg.Scratch.Strategy)
}

// TestLoadValidationErrors verifies that Load rejects invalid configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"PUZZLES_LOG_LEVEL": "invalid-level"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Unknown cascade strategy",
			envVars:        map[string]string{"PUZZLES_SCRATCH_STRATEGY": "recursive"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Day out of range",
			envVars:        map[string]string{"PUZZLES_PUZZLES_DAYS": "1,26"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Negative cube count",
			envVars:        map[string]string{"PUZZLES_CUBES_BLUE": "-1"},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

// TestLoadBadConfigFile verifies that an unreadable config file is an error
// rather than silently ignored.
func TestLoadBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o600))
	setupEnv(t, map[string]string{ConfigDirEnv: dir})

	cfg, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}
