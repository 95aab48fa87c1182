package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environments
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "LEDGER"

// ConfigPaths are searched in order for <environment>.yaml
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths are tried in order; the first readable file wins
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// defaults apply to keys the yaml file leaves out. Durations are plain unit
// counts here, scaled by durationUnits after decoding.
var defaults = map[string]any{
	"server.host":              "0.0.0.0",
	"server.port":              8080,
	"server.readTimeout":       15,
	"server.writeTimeout":      30,
	"server.idleTimeout":       60,
	"server.readHeaderTimeout": 10,
	"server.shutdownTimeout":   10,
	"server.allowedOrigins":    []string{"*"},

	"database.driver":          "postgres",
	"database.port":            "5432",
	"database.sslMode":         "disable",
	"database.maxOpenConns":    50,
	"database.maxIdleConns":    25,
	"database.connMaxLifetime": 30,
	"database.connMaxIdleTime": 15,
	"database.queryTimeout":    5,
	"database.retryAttempts":   3,
	"database.retryDelay":      1,
	"database.logLevel":        "warn",
	"database.autoMigrate":     true,

	"logger.level":      "info",
	"logger.format":     "json",
	"logger.output":     "stdout",
	"logger.callerInfo": true,

	"ledger.defaultTenant":          "default",
	"ledger.timezone":               "UTC",
	"ledger.enforceCategoryPairing": false,
	"ledger.queueSize":              100,
	"ledger.maxRetries":             5,
	"ledger.retryInitialInterval":   20,
	"ledger.retryMaxInterval":       500,
	"ledger.retryJitter":            0.3,
	"ledger.exportLimit":            10000,

	"cache.redisAddr":  "",
	"cache.redisDb":    0,
	"cache.summaryTtl": 30,
	"cache.keyPrefix":  "ledger:summary:",
}

// envOverrides maps the documented environment variables onto config keys.
// Anything else still resolves through viper's LEDGER_<SECTION>_<KEY> binding.
var envOverrides = map[string]string{
	"LEDGER_DB_DRIVER":                    "database.driver",
	"LEDGER_DB_HOST":                      "database.host",
	"LEDGER_DB_PORT":                      "database.port",
	"LEDGER_DB_USERNAME":                  "database.username",
	"LEDGER_DB_PASSWORD":                  "database.password",
	"LEDGER_DB_NAME":                      "database.database",
	"LEDGER_DB_SSL_MODE":                  "database.sslMode",
	"LEDGER_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
	"LEDGER_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
	"LEDGER_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
	"LEDGER_DB_CONN_MAX_LIFETIME_MINUTES": "database.connMaxLifetime",
	"LEDGER_SERVER_HOST":                  "server.host",
	"LEDGER_SERVER_PORT":                  "server.port",
	"LEDGER_LOGGER_LEVEL":                 "logger.level",
	"LEDGER_DEFAULT_TENANT":               "ledger.defaultTenant",
	"LEDGER_TIMEZONE":                     "ledger.timezone",
	"LEDGER_ENFORCE_CATEGORY_PAIRING":     "ledger.enforceCategoryPairing",
	"LEDGER_MAX_RETRIES":                  "ledger.maxRetries",
	"LEDGER_QUEUE_SIZE":                   "ledger.queueSize",
	"LEDGER_REDIS_ADDR":                   "cache.redisAddr",
	"LEDGER_REDIS_PASSWORD":               "cache.redisPassword",
	"LEDGER_CACHE_SUMMARY_TTL_SECONDS":    "cache.summaryTtl",
}

// durationUnits gives the unit each duration field is written in
func durationUnits(c *Config) map[*time.Duration]time.Duration {
	return map[*time.Duration]time.Duration{
		&c.Server.ReadTimeout:          time.Second,
		&c.Server.WriteTimeout:         time.Second,
		&c.Server.IdleTimeout:          time.Second,
		&c.Server.ReadHeaderTimeout:    time.Second,
		&c.Server.ShutdownTimeout:      time.Second,
		&c.Database.ConnMaxLifetime:    time.Minute,
		&c.Database.ConnMaxIdleTime:    time.Minute,
		&c.Database.QueryTimeout:       time.Second,
		&c.Database.RetryDelay:         time.Second,
		&c.Ledger.RetryInitialInterval: time.Millisecond,
		&c.Ledger.RetryMaxInterval:     time.Millisecond,
		&c.Cache.SummaryTTL:            time.Second,
	}
}

// LoadConfig loads .env if one is found, then the yaml of the LEDGER_ENV environment
func LoadConfig() (*Config, error) {
	if path, err := loadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: .env not loaded:", err)
	} else if path != "" {
		fmt.Fprintln(os.Stderr, "loaded environment from", path)
	}
	return LoadConfigFrom(getEnvironment(), ConfigPaths)
}

// LoadConfigFrom reads <env>.yaml from the first of paths that has it, then layers
// defaults underneath and environment overrides on top
func LoadConfigFrom(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s config: %w", env, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	applyEnvOverrides(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode %s config: %w", env, err)
	}
	cfg.Environment = env

	for field, unit := range durationUnits(cfg) {
		*field *= unit
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv returns the path it loaded, or "" when no candidate exists
func loadDotEnv() (string, error) {
	var errs []error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		return path, nil
	}
	return "", errors.Join(errs...)
}

func getEnvironment() string {
	if env := strings.TrimSpace(os.Getenv(EnvPrefix + "_ENV")); env != "" {
		return strings.ToLower(env)
	}
	return Development
}

// applyEnvOverrides sets every documented override that is present and non-empty.
// Duration overrides arrive as strings and are converted to unit counts first.
func applyEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if n, err := strconv.Atoi(value); err == nil && isDurationKey(key) {
			v.Set(key, n)
			continue
		}
		v.Set(key, value)
	}
}

func isDurationKey(key string) bool {
	return slices.Contains([]string{"cache.summaryTtl", "database.queryTimeout", "database.connMaxLifetime"}, key)
}

// validate rejects settings the application cannot start with
func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if strings.TrimSpace(c.Ledger.DefaultTenant) == "" {
		return errors.New("ledger.defaultTenant cannot be empty")
	}
	if c.Ledger.MaxRetries < 0 {
		return fmt.Errorf("ledger.maxRetries must be non-negative, got: %d", c.Ledger.MaxRetries)
	}
	if _, err := c.Ledger.Location(); err != nil {
		return fmt.Errorf("invalid ledger.timezone %q: %w", c.Ledger.Timezone, err)
	}
	return nil
}
