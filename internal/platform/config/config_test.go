package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKOFFICE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 8*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.Lockout.Attempts)
	assert.Equal(t, 5, cfg.Backend.BreakerThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Console.SessionIdleTTL)
	assert.Equal(t, 10, cfg.Console.TransactionsPageSize)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Audit.DatabaseURL)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backoffice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
backend:
  base_url: "https://api.example.com/"
  timeout: 5s
console:
  search_page_size: 25
`), 0o600))
	t.Setenv("BACKOFFICE_CONFIG", path)
	t.Setenv("BACKOFFICE_ADDR", ":7070")
	t.Setenv("TRANSACTIONS_PAGE_SIZE", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr, "env wins over the file")
	assert.Equal(t, "https://api.example.com/", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 25, cfg.Console.SearchPageSize)
	assert.Equal(t, 50, cfg.Console.TransactionsPageSize)
	assert.Equal(t, 10, cfg.Console.UnassignedPageSize, "untouched fields keep defaults")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "TOKEN_TTL", val: "forever"},
		{name: "zero page size", key: "SEARCH_PAGE_SIZE", val: "0"},
		{name: "non numeric buffer", key: "AUDIT_ASYNC_BUFFER", val: "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BACKOFFICE_CONFIG", "")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("BACKOFFICE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestFromEnvFallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CONSOLE_SESSION_IDLE_TTL", "nope")

	cfg := FromEnv()

	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 30*time.Minute, cfg.Console.SessionIdleTTL)
}
