package database

import (
	"testing"
	"time"

	appconfig "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func validPostgresConfig() *Config {
	return &Config{
		Driver:       DriverPostgres,
		Host:         "localhost",
		Port:         5432,
		Username:     "ledger",
		Password:     "secret",
		Database:     "ledger",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		QueryTimeout: time.Second,
		LogLevel:     "warn",
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid postgres", func(c *Config) {}, ""},
		{"valid mysql without ssl mode", func(c *Config) { c.Driver = DriverMySQL; c.SSLMode = "" }, ""},
		{"missing host", func(c *Config) { c.Host = "" }, "host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"unknown driver", func(c *Config) { c.Driver = "oracle" }, "unsupported database driver"},
		{"zero pool", func(c *Config) { c.MaxOpenConns = 0 }, "max open connections"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"sqlite needs only a path", func(c *Config) {
			*c = Config{Driver: DriverSQLite, Database: "ledger.db", MaxOpenConns: 1, MaxIdleConns: 1, QueryTimeout: time.Second, LogLevel: "silent"}
		}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validPostgresConfig()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	c := validPostgresConfig()
	assert.Equal(t, "host=localhost port=5432 user=ledger password=secret dbname=ledger sslmode=disable TimeZone=UTC", c.DSN())

	c.Driver = DriverMySQL
	c.Port = 3306
	assert.Equal(t, "ledger:secret@tcp(localhost:3306)/ledger?charset=utf8mb4&parseTime=True&loc=UTC", c.DSN())

	sqliteConfig := NewSQLiteTestConfig("abc")
	assert.Equal(t, "file:abc?mode=memory&cache=shared&_busy_timeout=5000", sqliteConfig.DSN())
	assert.True(t, sqliteConfig.IsInMemory())
	assert.False(t, c.IsInMemory())
}

func TestFromAppConfig(t *testing.T) {
	c := FromAppConfig(appconfig.DatabaseConfig{
		Driver:        DriverPostgres,
		Host:          "db",
		Port:          "6543",
		Username:      "u",
		Database:      "d",
		SSLMode:       "require",
		MaxOpenConns:  4,
		MaxIdleConns:  2,
		QueryTimeout:  3 * time.Second,
		RetryAttempts: 2,
		RetryDelay:    time.Second,
		LogLevel:      "error",
	})

	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, "require", c.SSLMode)
	assert.Equal(t, 3*time.Second, c.QueryTimeout)
	assert.NoError(t, c.Validate())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("-1"))
	assert.Equal(t, 0, ParsePort("65536"))
}
