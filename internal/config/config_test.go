package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.True(t, cfg.Persistence)
	assert.Equal(t, 0.19, cfg.TaxRate)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9090"
store_backend: redis
persistence: true
tax_rate: 0.07
redis:
  addr: redis.internal:6379
  ttl: 1h
  lock: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, 0.07, cfg.TaxRate)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.True(t, cfg.Redis.Lock)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	_, err := Load(writeConfig(t, "store_backend: cloud"))
	assert.Error(t, err)
}

func TestLoadRejectsBadTaxRate(t *testing.T) {
	_, err := Load(writeConfig(t, "tax_rate: 1.5"))
	assert.Error(t, err)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
