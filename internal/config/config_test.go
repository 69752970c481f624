package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_DefaultsAndYaml(t *testing.T) {
	dir := writeConfig(t, `
app:
  name: gateway
upstream:
  users_url: http://users
  rooms_url: http://rooms
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "gateway", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 10, cfg.Upstream.TimeoutSec)
	assert.Equal(t, 401, cfg.Auth.DecodeFailureStatus)
	assert.Equal(t, "gateway:lifecycle", cfg.Redis.EventChannel)
	assert.Equal(t, "/events", cfg.WSS.Path)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MySQL.Enabled())
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := writeConfig(t, `
upstream:
  users_url: http://users
  rooms_url: http://rooms
`)
	t.Setenv(EnvPort, "9999")
	t.Setenv(EnvUsersServerURL, "http://users.internal")
	t.Setenv(EnvJWTSecret, "s3cret")
	t.Setenv(EnvRedisAddr, "redis:6379")
	t.Setenv(EnvMySQLHost, "db")
	t.Setenv(EnvMySQLPort, "3307")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.App.Port)
	assert.Equal(t, "http://users.internal", cfg.Upstream.UsersURL)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.MySQL.Enabled())
	assert.Contains(t, cfg.MySQL.DSN(), "tcp(db:3307)")
}

func TestLoad_MissingUpstream(t *testing.T) {
	dir := writeConfig(t, "app:\n  name: gateway\n")
	t.Setenv(EnvUsersServerURL, "")
	t.Setenv(EnvRoomsServerURL, "")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
