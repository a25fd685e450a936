package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	Tracing     TracingConfig     `mapstructure:"tracing"`
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
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver           string        `mapstructure:"driver"`
	Host             string        `mapstructure:"host"`
	Port             string        `mapstructure:"port"`
	Username         string        `mapstructure:"username"`
	Password         string        `mapstructure:"password"`
	Database         string        `mapstructure:"database"`
	SSLMode          string        `mapstructure:"sslMode"`
	Path             string        `mapstructure:"path"`
	MaxOpenConns     int           `mapstructure:"maxOpenConns"`
	MaxIdleConns     int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime  time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime  time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	AcquireTimeoutMs int64         `mapstructure:"acquireTimeoutMs"`
	SlowQueryMs      int64         `mapstructure:"slowQueryMs"`
	LogLevel         string        `mapstructure:"logLevel"`
	RetryAttempts    int           `mapstructure:"retryAttempts"`
	RetryDelay       time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TransactionConfig contains unit of work settings
type TransactionConfig struct {
	// Isolation is one of default, read_committed, repeatable_read, serializable
	Isolation string `mapstructure:"isolation"`
}

// LedgerConfig contains business settings of the ledger
type LedgerConfig struct {
	BlockedDestinations []string            `mapstructure:"blockedDestinations"`
	SeedAccounts        []SeedAccountConfig `mapstructure:"seedAccounts"`
}

// SeedAccountConfig is an account created at startup if missing
type SeedAccountConfig struct {
	ID      string `mapstructure:"id"`
	Balance int64  `mapstructure:"balance"`
}

// TracingConfig contains OpenTelemetry export settings
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"serviceName"`
	Endpoint    string  `mapstructure:"endpoint"` // OTLP gRPC collector, host:port
	SampleRate  float64 `mapstructure:"sampleRate"`
}
