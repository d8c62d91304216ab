package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3333", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "release", cfg.Gin.Mode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TODOS_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("TODOS_SERVER_SHUTDOWNTIMEOUT", "3s")
	t.Setenv("TODOS_STORE_DRIVER", "SQLite")
	t.Setenv("TODOS_LOG_LEVEL", "debug")
	t.Setenv("TODOS_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)

	logger := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"TODOS_STORE_DRIVER": "postgres",
		"TODOS_LOG_LEVEL":    "loud",
		"TODOS_LOG_FORMAT":   "xml",
		"TODOS_GIN_MODE":     "prod",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nTODOS_TEST_NEW=\"from-file\"\nTODOS_TEST_SET=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("TODOS_TEST_SET", "from-env")
	t.Setenv("TODOS_TEST_NEW", "")
	require.NoError(t, os.Unsetenv("TODOS_TEST_NEW"))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-file", os.Getenv("TODOS_TEST_NEW"))
	assert.Equal(t, "from-env", os.Getenv("TODOS_TEST_SET"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
