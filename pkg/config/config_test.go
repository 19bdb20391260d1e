//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relman", "config.yaml")
	manager := NewManager(path)

	original := manager.DefaultConfig()
	original.CacheFile = filepath.Join(t.TempDir(), "cache.json")
	original.SMTP = SMTP{
		Host:        "smtp.example.com",
		Port:        587,
		Username:    "builder",
		PasswordEnv: "SMTP_PASSWORD",
		From:        "builder@example.com",
		To:          []string{"dev@example.com"},
	}

	require.NoError(t, manager.SaveConfig(original))

	loaded, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestManager_GetConfig_NotInitialized(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := manager.GetConfig()

	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestManager_GetConfig_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tracker: [unclosed"), 0644))

	_, err := NewManager(path).GetConfig()

	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_SaveConfig_RejectsInvalid(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))

	invalid := manager.DefaultConfig()
	invalid.Project = ""

	assert.ErrorIs(t, manager.SaveConfig(invalid), ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty tracker", mutate: func(c *Config) { c.Tracker = "" }},
		{name: "empty project", mutate: func(c *Config) { c.Project = "" }},
		{name: "empty repository path", mutate: func(c *Config) { c.RepositoryPath = "" }},
		{name: "empty mainline", mutate: func(c *Config) { c.Mainline = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := NewManager("unused").DefaultConfig()
			test.mutate(&cfg)

			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	manager := NewManager(filepath.Join("some", "dir", "config.yaml"))

	cfg := manager.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "jira", cfg.Tracker)
	assert.Equal(t, "ARROW", cfg.Project)
	assert.Equal(t, "PARQUET", cfg.SecondaryProject)
	assert.Equal(t, "apache-arrow-", cfg.TagPrefix)
	assert.Equal(t, filepath.Join("some", "dir", "cache.json"), cfg.CacheFile)
}

func TestManager_GetConfig_ExpandsTildes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "tracker: jira\nproject: ARROW\nrepository_path: ~/src/arrow\nmainline: main\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := NewManager(path).GetConfig()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "src", "arrow"), loaded.RepositoryPath)
}
