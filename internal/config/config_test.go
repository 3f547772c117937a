package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "localhost", cfg.Database.Redis.Host)
	assert.Equal(t, 6379, cfg.Database.Redis.Port)
	assert.Equal(t, 0, cfg.Database.Redis.DB)
	assert.Equal(t, "localhost:6379", cfg.Database.Redis.Addr())
	assert.Equal(t, 2*time.Second, cfg.Store.LookupTimeout)
	assert.Equal(t, 2*time.Second, cfg.Database.Redis.DialTimeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  redis:
    host: redis.internal
    port: 6380
    db: 2
    read_timeout: 750ms
store:
  lookup_timeout: 1s
log:
  level: debug
  format: console
`)
	t.Setenv("DATABASE_REDIS_PASSWORD", "s3cret")
	t.Setenv("DATABASE_REDIS_DB", "4")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis.internal:6380", cfg.Database.Redis.Addr())
	assert.Equal(t, "s3cret", cfg.Database.Redis.Password)
	assert.Equal(t, 4, cfg.Database.Redis.DB)
	assert.Equal(t, 750*time.Millisecond, cfg.Database.Redis.ReadTimeout)
	assert.Equal(t, time.Second, cfg.Store.LookupTimeout)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverridesEveryDefaultedKey(t *testing.T) {
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestLoad_MemorySeed(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: memory
  seed:
    - key: AbC123
      value: '{"balance":100}'
    - key: zzz
      value: plain
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	seed := cfg.Store.SeedMap()
	assert.Len(t, seed, 2)
	assert.Equal(t, `{"balance":100}`, seed["AbC123"])
	assert.Equal(t, "plain", seed["zzz"])
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown backend", body: "store:\n  backend: etcd\n"},
		{name: "negative db", body: "database:\n  redis:\n    db: -1\n"},
		{name: "zero timeout", body: "store:\n  lookup_timeout: 0s\n"},
		{name: "bad port", body: "server:\n  port: 70000\n"},
		{name: "malformed yaml", body: "server: [\n"},
		{name: "seed without key", body: "store:\n  backend: memory\n  seed:\n    - value: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
	assert.True(t, logger.Core().Enabled(1))

	_, err = NewLogger(LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	client := NewRedisClient(RedisConfig{Host: "127.0.0.1", Port: 6390, DB: 5, PoolSize: 3})
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, "127.0.0.1:6390", opts.Addr)
	assert.Equal(t, 5, opts.DB)
	assert.Equal(t, 3, opts.PoolSize)
	// go-redis normalises -1 (no retries) to 0 attempts beyond the first.
	assert.Equal(t, 0, opts.MaxRetries)
	assert.True(t, opts.ContextTimeoutEnabled)
}
