package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolated runs Load from an empty directory with a usable JWT secret.
func isolated(t *testing.T) {
	t.Helper()
	isolated(t)
	t.Setenv("JWT_SECRET", "k7f2-test-signing-key")
}

func TestLoad_Defaults(t *testing.T) {
	isolated(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, "Europe/Kyiv", cfg.Timezone)
	assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_FromEnv(t *testing.T) {
	isolated(t)
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_RejectsS3WithoutBucket(t *testing.T) {
	isolated(t)
	t.Setenv("STORAGE_DRIVER", "s3")

	_, err := Load()
	assert.ErrorContains(t, err, "S3_BUCKET")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	isolated(t)
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := Load()
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestLoad_RejectsUnknownTimezone(t *testing.T) {
	isolated(t)
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.ErrorContains(t, err, "TIMEZONE")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET is required")
}

func TestLoad_RejectsPlaceholderJWTSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "changeme")

	_, err := Load()
	assert.ErrorContains(t, err, "placeholder")
}

// chdir stands in for testing.T.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
