package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile_SourcesAndFormats(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads JSON", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{
			"server_url": "http://www.example:9000/api",
			"online_check_interval": "10s",
			"request_timeout": 2000000000,
			"store": "redis",
			"redis_addr": "cache:6379",
			"redis_db": 3
		}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "http://www.example:9000/api", cfg.ServerURL)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, StoreRedis, cfg.StoreKind)
		assert.Equal(t, "cache:6379", cfg.RedisAddr)
		assert.Equal(t, 3, cfg.RedisDB)
	})

	t.Run("loads YAML", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yml", "store: file\nstore_path: ./session.json\nlog_format: json\nonline_check_interval: 1m\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, StoreFile, cfg.StoreKind)
		assert.Equal(t, "./session.json", cfg.StorePath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	})

	t.Run("absent keys keep previous values", func(t *testing.T) {
		path := writeTempFile(t, "partial.json", `{"log_level":"debug"}`)
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "http://localhost:8101/api", cfg.ServerURL)
		assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerURL: "http://defaults:1234", OnlineCheckInterval: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerURL)
		assert.Equal(t, 42*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTempFile(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
