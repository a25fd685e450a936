package database

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

// NewConfigFromApp adapts the application configuration to database configuration.
// Zero values in conf keep the defaults.
func NewConfigFromApp(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	db := conf.Database

	if db.Driver != "" {
		dbConf.Driver = db.Driver
	}
	dbConf.Host = db.Host
	if port := ParsePort(db.Port); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = db.Username
	dbConf.Password = db.Password
	dbConf.Database = db.Database
	dbConf.Path = db.Path

	if db.SSLMode != "" {
		dbConf.SSLMode = db.SSLMode
	}
	if db.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = db.MaxOpenConns
	}
	if db.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = db.MaxIdleConns
	}
	if db.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = db.ConnMaxLifetime
	}
	if db.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = db.ConnMaxIdleTime
	}
	if db.AcquireTimeoutMs > 0 {
		dbConf.AcquireTimeout = time.Duration(db.AcquireTimeoutMs) * time.Millisecond
	}
	if db.SlowQueryMs > 0 {
		dbConf.SlowThreshold = time.Duration(db.SlowQueryMs) * time.Millisecond
	}
	if db.LogLevel != "" {
		dbConf.LogLevel = db.LogLevel
	}
	if db.RetryAttempts > 0 {
		dbConf.RetryAttempts = db.RetryAttempts
	}
	if db.RetryDelay > 0 {
		dbConf.RetryDelay = db.RetryDelay
	}

	return dbConf
}

// ParsePort converts a port string to an int, 0 when it is not a valid port
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}

// ParseIsolation maps a configured isolation name to a level
func ParseIsolation(name string) (persistence.IsolationLevel, error) {
	switch name {
	case "", "default":
		return persistence.IsolationDefault, nil
	case "read_committed":
		return persistence.IsolationReadCommitted, nil
	case "repeatable_read":
		return persistence.IsolationRepeatableRead, nil
	case "serializable":
		return persistence.IsolationSerializable, nil
	default:
		return persistence.IsolationDefault, fmt.Errorf("unknown isolation level: %s", name)
	}
}
