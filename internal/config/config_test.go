package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineflow/catalogd/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, constants.DefaultAPIBaseURL+constants.UploadsPath, cfg.ImageBaseURL)
	assert.Equal(t, constants.DefaultPort, cfg.Port)
	assert.Equal(t, constants.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, constants.DefaultSearchDebounceMs, cfg.SearchDebounceMs)
	assert.Equal(t, time.Duration(constants.DefaultCacheTTL)*time.Hour, cfg.CacheTTL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"API_BASE_URL": "http://upstream.test:5000",
		"PORT": "9090",
		"PAGE_SIZE": 25
	}`), 0644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://upstream.test:5000", cfg.APIBaseURL)
	assert.Equal(t, "http://upstream.test:5000/uploads/", cfg.ImageBaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 25, cfg.PageSize)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"PORT": "9090"}`), 0644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("API_BASE_URL", "http://env.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "http://env.test", cfg.APIBaseURL)
}

func TestValidateTrimsTrailingSlash(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://upstream.test/"}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://upstream.test", cfg.APIBaseURL)
	assert.Equal(t, "http://upstream.test/uploads/", cfg.ImageBaseURL)
}

func TestValidateKeepsExplicitImageBase(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://upstream.test", ImageBaseURL: "http://cdn.test/img/"}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://cdn.test/img/", cfg.ImageBaseURL)
}

func TestValidateRejectsEmptyBaseURL(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}

func TestValidateFillsZeroValues(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://upstream.test", PageSize: -1}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, constants.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, constants.DefaultSearchDebounceMs, cfg.SearchDebounceMs)
	assert.Equal(t, constants.DefaultCacheSize, cfg.CacheSize)
}

func TestSearchDebounce(t *testing.T) {
	cfg := &Config{SearchDebounceMs: 500}
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce())
}
