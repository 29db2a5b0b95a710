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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "jam"
password = "secret"
dbname = "jams"

[bandicon]
url = "http://bandicon.local"

[schedule]
atomic_submission = true

[rate_limit]
enabled = true
trusted_proxies = ["10.0.0.0/8"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.Bandicon.Timeout)
	assert.True(t, cfg.Schedule.AtomicSubmission)
	assert.NotEmpty(t, cfg.Schedule.Title)
	assert.Equal(t, 600, cfg.RateLimit.IdleTTL)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.RateLimit.TrustedProxies)
	assert.Equal(t, "host=localhost port=5432 user=jam password=secret dbname=jams sslmode=disable", cfg.Database.DSN())
}

func TestLoad_RequiresBandiconURL(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "jams"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "bandicon.url")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
