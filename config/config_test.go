package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freejourney.yaml")

	err := os.WriteFile(path, []byte("token: filetoken\nbase_url: https://example.com/api\ntimeout: 5s\n"), 0o600)
	assert.Nil(t, err)

	cfg, err := Load(path)

	assert.Nil(t, err)
	assert.Equal(t, "filetoken", cfg.Token)
	assert.Equal(t, "https://example.com/api", cfg.BaseUrl)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.UserAgent)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freejourney.json")

	err := os.WriteFile(path, []byte(`{"token":"filetoken","user_agent":"file-agent"}`), 0o600)
	assert.Nil(t, err)

	t.Setenv("FREEJOURNEY_TOKEN", "envtoken")

	cfg, err := Load(path)

	assert.Nil(t, err)
	assert.Equal(t, "envtoken", cfg.Token)
	assert.Equal(t, "file-agent", cfg.UserAgent)
}

func TestLoadEnvironmentOnly(t *testing.T) {
	t.Setenv("FREEJOURNEY_TOKEN", "envtoken")
	t.Setenv("FREEJOURNEY_BASE_URL", "http://localhost:8080")
	t.Setenv("FREEJOURNEY_TIMEOUT", "250ms")

	cfg, err := Load("")

	assert.Nil(t, err)
	assert.Equal(t, "envtoken", cfg.Token)
	assert.Equal(t, "http://localhost:8080", cfg.BaseUrl)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorContains(t, err, "could not read configuration file")
}
