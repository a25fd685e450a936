package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

var testDBSeq atomic.Uint64

// TestDB is a migrated in-memory sqlite database opened through Manager
type TestDB struct {
	Manager *Manager
	Config  *Config
}

// NewTestDB opens a private in-memory database for t. With maxOpenConns set to
// 1 every unit of work runs on the same physical connection.
func NewTestDB(t *testing.T, logger coreport.Logger, maxOpenConns int) *TestDB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.Path = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBSeq.Add(1))
	config.MaxOpenConns = maxOpenConns
	config.MaxIdleConns = maxOpenConns
	config.ConnMaxLifetime = 0
	config.ConnMaxIdleTime = 0
	config.AcquireTimeout = 500 * time.Millisecond
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	manager := NewManager(config, logger, timeprovider.NewRealTimeProvider())
	if err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database: %v", err)
		}
	})

	if err := manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{Manager: manager, Config: config}
}

// CreateTestAccount inserts an account bypassing the repository
func (d *TestDB) CreateTestAccount(t *testing.T, id string, balance int64) {
	t.Helper()

	account := model.AccountFromEntity(&entity.Account{ID: id, Balance: balance})
	if err := d.Manager.DB().Create(&account).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}
}

// Balance reads the committed balance of id bypassing the repository
func (d *TestDB) Balance(t *testing.T, id string) (int64, bool) {
	t.Helper()

	var account model.Account
	err := d.Manager.DB().Where("account_id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false
	}
	if err != nil {
		t.Fatalf("Failed to read test account: %v", err)
	}
	return account.Balance, true
}
