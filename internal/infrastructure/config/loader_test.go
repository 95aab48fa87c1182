package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFrom_DefaultsAndUnits(t *testing.T) {
	dir := writeConfig(t, "test", `
database:
  driver: sqlite
  database: ledger.db
ledger:
  timezone: Asia/Tehran
`)

	cfg, err := LoadConfigFrom(Test, []string{dir})
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, time.Second, cfg.Database.RetryDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Ledger.RetryInitialInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Ledger.RetryMaxInterval)
	assert.Equal(t, 30*time.Second, cfg.Cache.SummaryTTL)
	assert.Equal(t, "default", cfg.Ledger.DefaultTenant)
	assert.Equal(t, 10000, cfg.Ledger.ExportLimit)
	assert.Empty(t, cfg.Cache.RedisAddr)

	loc, err := cfg.Ledger.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tehran", loc.String())
}

func TestLoadConfigFrom_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "test", `
database:
  driver: postgres
  host: localhost
  password: from-file
cache:
  summaryTtl: 10
`)

	t.Setenv("LEDGER_DB_HOST", "db.internal")
	t.Setenv("LEDGER_DB_PASSWORD", "0123")
	t.Setenv("LEDGER_REDIS_ADDR", "redis:6379")
	t.Setenv("LEDGER_CACHE_SUMMARY_TTL_SECONDS", "45")
	t.Setenv("LEDGER_DEFAULT_TENANT", "agency-7")

	cfg, err := LoadConfigFrom(Test, []string{dir})
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "0123", cfg.Database.Password)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 45*time.Second, cfg.Cache.SummaryTTL)
	assert.Equal(t, "agency-7", cfg.Ledger.DefaultTenant)
}

func TestLoadConfigFrom_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"unknown driver", "database:\n  driver: oracle\n"},
		{"empty tenant", "ledger:\n  defaultTenant: \" \"\n"},
		{"negative retries", "ledger:\n  maxRetries: -1\n"},
		{"unknown timezone", "ledger:\n  timezone: Mars/Olympus\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfigFrom(Test, []string{writeConfig(t, "test", tc.body)})
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	_, err := LoadConfigFrom(Production, []string{t.TempDir()})
	assert.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("LEDGER_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("LEDGER_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LEDGER_DOTENV_PROBE=agency-9\n"), 0o600))

	saved := DotEnvPaths
	t.Cleanup(func() { DotEnvPaths = saved })
	t.Setenv("LEDGER_DOTENV_PROBE", "")
	require.NoError(t, os.Unsetenv("LEDGER_DOTENV_PROBE"))

	DotEnvPaths = []string{filepath.Join(dir, "missing.env"), envFile}
	path, err := loadDotEnv()
	require.NoError(t, err)
	assert.Equal(t, envFile, path)
	assert.Equal(t, "agency-9", os.Getenv("LEDGER_DOTENV_PROBE"))

	DotEnvPaths = []string{filepath.Join(dir, "missing.env")}
	path, err = loadDotEnv()
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestShippedConfigsLeaveCategoryPairingOff(t *testing.T) {
	t.Setenv("LEDGER_ENFORCE_CATEGORY_PAIRING", "")

	for _, env := range []string{Development, Production, Test} {
		t.Run(env, func(t *testing.T) {
			cfg, err := LoadConfigFrom(env, []string{"../../../configs"})
			require.NoError(t, err)
			assert.False(t, cfg.Ledger.EnforceCategoryPairing)
		})
	}
}
