package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("NOVAQUEST_HOME", home)
	for _, key := range []string{
		"NOVAQUEST_GEMINI_API_KEY", "GEMINI_API_KEY",
		"NOVAQUEST_AI_BASE_URL", "AI_BASE_URL",
		"NOVAQUEST_AI_MODEL", "AI_MODEL",
		"NOVAQUEST_NASA_API_KEY", "NASA_API_KEY",
		"NOVAQUEST_LOG_LEVEL", "LOG_LEVEL",
		"NOVAQUEST_LOG_FILE", "LOG_FILE",
		"NOVAQUEST_DEBUG", "DEBUG",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.ActiveProfile)
	assert.False(t, cfg.IsValid())
	assert.Equal(t, DefaultModel, cfg.GetModel())
	assert.Equal(t, DefaultBaseURL, cfg.GetBaseURL())
	assert.Equal(t, DefaultNASAKey, cfg.GetNASAKey())
	assert.Equal(t, DefaultImagesURL, cfg.GetImagesURL())
	assert.Equal(t, DefaultAPIURL, cfg.GetAPIURL())
	assert.Equal(t, filepath.Join(home, ".novaquest", "novaquest.log"), cfg.GetLogFile())

	_, err = os.Stat(filepath.Join(home, ".novaquest", "config.json"))
	assert.NoError(t, err)
}

func TestEnvironmentOverridesProfile(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("NOVAQUEST_NASA_API_KEY", "nasa-env")
	t.Setenv("NOVAQUEST_AI_MODEL", "gemini-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsValid())
	assert.True(t, cfg.KeyFromEnv())
	assert.Equal(t, "from-env", cfg.GetAPIKey())
	assert.Equal(t, "nasa-env", cfg.GetNASAKey())
	assert.Equal(t, "gemini-test", cfg.GetModel())
}

func TestSaveAndSwitchProfile(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Profiles["work"] = Profile{APIKey: "secret", Model: "gemini-2.5-pro"}
	require.NoError(t, cfg.ActivateProfile("work"))
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(home, ".novaquest", "config.json"))
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, "work", onDisk.ActiveProfile)

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret", reloaded.GetAPIKey())
	assert.Equal(t, "gemini-2.5-pro", reloaded.GetModel())

	assert.Error(t, reloaded.ActivateProfile("missing"))
}

func TestUnknownActiveProfileFallsBack(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".novaquest")
	require.NoError(t, os.MkdirAll(dir, 0755))
	raw := `{"profiles":{"only":{"api_key":"k","model":"m"}},"active_profile":"gone"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "only", cfg.ActiveProfile)
	assert.Equal(t, "k", cfg.GetAPIKey())
}

func TestGenericEnvironmentIsIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("DEBUG", "*")
	t.Setenv("LOG_LEVEL", "trace")
	t.Setenv("LOG_FILE", "/tmp/elsewhere.log")
	t.Setenv("AI_MODEL", "other-model")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Debug())
	assert.Equal(t, DefaultLogLevel, cfg.GetLogLevel())
	assert.NotEqual(t, "/tmp/elsewhere.log", cfg.GetLogFile())
	assert.Equal(t, DefaultModel, cfg.GetModel())
}

func TestPrefixedEnvironmentIsRead(t *testing.T) {
	isolate(t)
	t.Setenv("NOVAQUEST_DEBUG", "true")
	t.Setenv("NOVAQUEST_LOG_LEVEL", "debug")
	t.Setenv("NOVAQUEST_AI_BASE_URL", "http://localhost:8080/v1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Debug())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, "http://localhost:8080/v1", cfg.GetBaseURL())
}
