package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tempconv/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600))
	return dir
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, `
port: "9090"
log:
  level: debug
db:
  path: /tmp/x.db
storage:
  driver: MEMORY
history:
  key: customKey
auth:
  signing_key: s3cret
  token_ttl: 15m
notifications:
  ttl: 5s
`)
	cfg, err := Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "/tmp/x.db", cfg.DB.Path)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "customKey", cfg.History.Key)
	assert.Equal(t, history.DefaultTimeFormat, cfg.History.TimeFormat)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Notifications.TTL)
	assert.Equal(t, 500*time.Millisecond, cfg.Notifications.Tick)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TEMPCONV_AUTH_ENABLED", "false")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, history.DefaultKey, cfg.History.Key)
	assert.Equal(t, 3*time.Second, cfg.Notifications.TTL)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "auth:\n  signing_key: from-file\ndb:\n  path: file.db\n")
	t.Setenv("TEMPCONV_DB_PATH", "env.db")

	cfg, err := Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.DB.Path)
	assert.Equal(t, "from-file", cfg.Auth.SigningKey)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Storage:       StorageConfig{Driver: StorageSQLite},
			Auth:          AuthConfig{Enabled: true, SigningKey: "k", TokenTTL: time.Hour},
			Notifications: NotificationsConfig{TTL: time.Second, Tick: time.Second},
		}
	}
	require.NoError(t, base().Validate())

	c := base()
	c.Storage.Driver = "redis"
	assert.Error(t, c.Validate())

	c = base()
	c.Auth.SigningKey = ""
	assert.Error(t, c.Validate())
	c.Auth.Enabled = false
	assert.NoError(t, c.Validate())

	c = base()
	c.Notifications.Tick = 0
	assert.Error(t, c.Validate())
}
