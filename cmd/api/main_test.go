package main

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveConfig() *config.Config {
	cfg := &config.Config{Environment: config.Development}
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Database.Driver = "sqlite"
	cfg.Database.Database = "ledger.db"
	cfg.Database.QueryTimeout = 5 * time.Second
	cfg.Logger.Level = "info"
	return cfg
}

func TestCheckServeConfig(t *testing.T) {
	warnings, err := checkServeConfig(serveConfig())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	cfg := serveConfig()
	cfg.Database.Driver = "postgres"
	_, err = checkServeConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
	assert.Contains(t, err.Error(), "database.username")

	cfg = serveConfig()
	cfg.Environment = "staging"
	_, err = checkServeConfig(cfg)
	assert.Error(t, err)

	cfg = serveConfig()
	cfg.Environment = config.Production
	warnings, err = checkServeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"sqlite serializes every write across tenants"}, warnings)
}
