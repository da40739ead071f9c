package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, DriverSQLite, c.Store.Driver)
	assert.Equal(t, 720*time.Hour, c.Auth.TokenTTL)
	assert.True(t, c.Metrics.Enabled)
	assert.False(t, c.Telegram.Bot)
	assert.Equal(t, 30, c.Telegram.PollTimeoutSec)
}

func TestLoad_FileAndEnv(t *testing.T) {
	p := writeFile(t, `
app:
  env: prod
  timezone: UTC
store:
  driver: memory
auth:
  jwt_secret: from-file
  token_ttl: 2h
telegram:
  admin_chat_id: 12345
  bot: true
prices:
  cement: 0.25
`)
	t.Setenv("APP_AUTH_JWT_SECRET", "from-env")
	t.Setenv("APP_HTTP_ADDR", ":9090")

	c, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "prod", c.App.Env)
	assert.Equal(t, DriverMemory, c.Store.Driver)
	assert.Equal(t, "from-env", c.Auth.JWTSecret)
	assert.Equal(t, ":9090", c.HTTP.Addr)
	assert.Equal(t, 2*time.Hour, c.Auth.TokenTTL)
	assert.Equal(t, int64(12345), c.Telegram.AdminChatID)
	assert.True(t, c.Telegram.Bot)
	assert.Equal(t, 0.25, c.Prices["cement"])
	assert.Equal(t, time.UTC, c.Location())
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeFile(t, "store:\n  driver: postgres\n"))
	assert.EqualError(t, err, "store.dsn is required for postgres")

	_, err = Load(writeFile(t, "store:\n  driver: mongo\n"))
	assert.Error(t, err)
}
