package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Cache       CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, mysql or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // file path for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// LedgerConfig contains posting engine and query settings
type LedgerConfig struct {
	DefaultTenant          string        `mapstructure:"defaultTenant"`
	Tenants                []string      `mapstructure:"tenants"`
	Timezone               string        `mapstructure:"timezone"`
	EnforceCategoryPairing bool          `mapstructure:"enforceCategoryPairing"`
	QueueSize              int           `mapstructure:"queueSize"`
	MaxRetries             int           `mapstructure:"maxRetries"`
	RetryInitialInterval   time.Duration `mapstructure:"retryInitialInterval"` // milliseconds
	RetryMaxInterval       time.Duration `mapstructure:"retryMaxInterval"`     // milliseconds
	RetryJitter            float64       `mapstructure:"retryJitter"`
	ExportLimit            int           `mapstructure:"exportLimit"`
}

// CacheConfig contains the optional summary cache settings
type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redisAddr"` // empty disables the cache
	RedisPassword string        `mapstructure:"redisPassword"`
	RedisDB       int           `mapstructure:"redisDb"`
	SummaryTTL    time.Duration `mapstructure:"summaryTtl"` // seconds
	KeyPrefix     string        `mapstructure:"keyPrefix"`
}

// Location resolves the configured ledger time zone, falling back to UTC
func (c LedgerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
