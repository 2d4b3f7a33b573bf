package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DefaultPageSize:      100,
		MaxPageSize:          1000,
		CacheTTL:             30 * time.Minute,
		CacheComputeTimeout:  time.Minute,
		CacheBackend:         CacheBackendMemory,
		CacheCapacity:        10,
		StatsArchiveInterval: 10 * time.Minute,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "redis backend", mutate: func(c *Config) { c.CacheBackend = CacheBackendRedis; c.CacheCapacity = 0 }},
		{name: "default above max", mutate: func(c *Config) { c.DefaultPageSize = 2000 }, wantErr: true},
		{name: "zero default", mutate: func(c *Config) { c.DefaultPageSize = 0 }, wantErr: true},
		{name: "zero max", mutate: func(c *Config) { c.MaxPageSize = 0 }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.CacheTTL = 0 }, wantErr: true},
		{name: "zero compute timeout", mutate: func(c *Config) { c.CacheComputeTimeout = 0 }, wantErr: true},
		{name: "zero archive interval", mutate: func(c *Config) { c.StatsArchiveInterval = 0 }, wantErr: true},
		{name: "negative archive interval", mutate: func(c *Config) { c.StatsArchiveInterval = -time.Second }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.CacheBackend = "memcached" }, wantErr: true},
		{name: "memory without capacity", mutate: func(c *Config) { c.CacheCapacity = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateClampsRetryAttempts(t *testing.T) {
	cfg := validConfig()
	cfg.DBRetryAttempts = 0

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.DBRetryAttempts)
}

func TestNewConfigReadsToml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	toml := []byte(`
ServicePort = 9090
MaxPageSize = 500
DefaultPageSize = 50
CacheTTL = "5m"
StatsUser = "toml-user"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "test.toml"), toml, 0o644))

	t.Chdir(dir)
	t.Setenv("CONFIG_NAME", "test")
	t.Setenv("STATS_USER", "")
	t.Setenv("STATS_PASSWORD", "segredo")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_BACKEND", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, 50, cfg.DefaultPageSize)
	assert.Equal(t, 500, cfg.MaxPageSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, CacheBackendMemory, cfg.CacheBackend)
	assert.Equal(t, "toml-user", cfg.StatsUser)
	assert.Equal(t, "segredo", cfg.StatsPassword)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "Erro Interno Inesperado.", cfg.ErrorMessageInternal)
}
