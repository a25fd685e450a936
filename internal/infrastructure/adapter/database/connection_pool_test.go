package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	mockpersistence "github.com/amirhossein-jamali/account-ledger/mocks/port/persistence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockProvider(t *testing.T, maxOpen int, timeout time.Duration) (*ConnectionProvider, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(maxOpen)

	return NewConnectionProvider(db, timeout, logger.NewNoopLogger()), mock
}

func TestConnectionProvider_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("Hands out distinct checkout ids", func(t *testing.T) {
		provider, _ := newMockProvider(t, 2, time.Second)

		first, err := provider.Acquire(ctx)
		require.NoError(t, err)
		second, err := provider.Acquire(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
		assert.True(t, first.AutoCommit())
		require.NoError(t, provider.Release(ctx, first))
		require.NoError(t, provider.Release(ctx, second))
	})

	t.Run("Exhausted pool times out as Unavailable", func(t *testing.T) {
		provider, _ := newMockProvider(t, 1, 50*time.Millisecond)

		held, err := provider.Acquire(ctx)
		require.NoError(t, err)
		defer func() { _ = provider.Release(ctx, held) }()

		conn, err := provider.Acquire(ctx)

		assert.Nil(t, conn)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, errs.IsUnavailableError(NewErrorClassifier().Classify(err, "begin", "")))
	})

	t.Run("A released connection can be checked out again", func(t *testing.T) {
		provider, _ := newMockProvider(t, 1, 50*time.Millisecond)

		conn, err := provider.Acquire(ctx)
		require.NoError(t, err)
		require.NoError(t, provider.Release(ctx, conn))

		again, err := provider.Acquire(ctx)
		require.NoError(t, err)
		assert.NoError(t, provider.Release(ctx, again))
	})

	t.Run("Foreign connections are refused on release", func(t *testing.T) {
		provider, _ := newMockProvider(t, 1, time.Second)

		err := provider.Release(ctx, mockpersistence.NewMockConnection(t))

		assert.Error(t, err)
	})
}

func TestPooledConnection_Transaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabling auto-commit begins and commit ends the transaction", func(t *testing.T) {
		provider, mock := newMockProvider(t, 1, time.Second)
		mock.ExpectBegin()
		mock.ExpectCommit()

		conn, err := provider.Acquire(ctx)
		require.NoError(t, err)

		require.NoError(t, conn.SetAutoCommit(ctx, false))
		assert.False(t, conn.AutoCommit())
		require.NoError(t, conn.SetAutoCommit(ctx, false), "already in a transaction")

		require.NoError(t, conn.Commit(ctx))
		assert.True(t, conn.AutoCommit())
		require.NoError(t, provider.Release(ctx, conn))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Enabling auto-commit commits the open transaction", func(t *testing.T) {
		provider, mock := newMockProvider(t, 1, time.Second)
		mock.ExpectBegin()
		mock.ExpectCommit()

		conn, err := provider.Acquire(ctx)
		require.NoError(t, err)
		require.NoError(t, conn.SetAutoCommit(ctx, false))

		require.NoError(t, conn.SetAutoCommit(ctx, true))

		assert.True(t, conn.AutoCommit())
		require.NoError(t, provider.Release(ctx, conn))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure is returned raw", func(t *testing.T) {
		provider, mock := newMockProvider(t, 1, time.Second)
		boom := errors.New("connection reset")
		mock.ExpectBegin().WillReturnError(boom)

		conn, err := provider.Acquire(ctx)
		require.NoError(t, err)

		err = conn.SetAutoCommit(ctx, false)

		assert.ErrorIs(t, err, boom)
		assert.True(t, conn.AutoCommit())
		require.NoError(t, provider.Release(ctx, conn))
	})

	t.Run("Rollback without a transaction is a no-op", func(t *testing.T) {
		provider, mock := newMockProvider(t, 1, time.Second)

		conn, err := provider.Acquire(ctx)
		require.NoError(t, err)

		assert.NoError(t, conn.Rollback(ctx))
		assert.Error(t, conn.Commit(ctx))
		require.NoError(t, provider.Release(ctx, conn))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed commit discards the transaction", func(t *testing.T) {
		provider, mock := newMockProvider(t, 1, time.Second)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		conn, err := provider.Acquire(ctx)
		require.NoError(t, err)
		require.NoError(t, conn.SetAutoCommit(ctx, false))

		assert.Error(t, conn.Commit(ctx))
		assert.True(t, conn.AutoCommit())
		assert.NoError(t, conn.Rollback(ctx))
		require.NoError(t, provider.Release(ctx, conn))
	})

	t.Run("Release rolls back a transaction left open", func(t *testing.T) {
		provider, mock := newMockProvider(t, 1, time.Second)
		mock.ExpectBegin()
		mock.ExpectRollback()

		conn, err := provider.Acquire(ctx)
		require.NoError(t, err)
		conn.SetIsolation(persistence.IsolationDefault)
		require.NoError(t, conn.SetAutoCommit(ctx, false))

		require.NoError(t, provider.Release(ctx, conn))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLIsolation(t *testing.T) {
	assert.Equal(t, "Default", sqlIsolation(persistence.IsolationDefault).String())
	assert.Equal(t, "Read Committed", sqlIsolation(persistence.IsolationReadCommitted).String())
	assert.Equal(t, "Repeatable Read", sqlIsolation(persistence.IsolationRepeatableRead).String())
	assert.Equal(t, "Serializable", sqlIsolation(persistence.IsolationSerializable).String())
}

func TestConnectionPoolMonitor(t *testing.T) {
	provider, _ := newMockProvider(t, 4, time.Second)
	reg := prometheus.NewPedanticRegistry()
	monitor := NewConnectionPoolMonitor(provider.db, logger.NewNoopLogger(), reg)

	conn, err := provider.Acquire(context.Background())
	require.NoError(t, err)
	defer func() { _ = provider.Release(context.Background(), conn) }()

	monitor.collectMetrics()

	metrics := monitor.GetMetrics()
	assert.Equal(t, 1, metrics.InUse)
	assert.Equal(t, 4, metrics.MaxOpenConnections)
	assert.Equal(t, float64(1), testutil.ToFloat64(monitor.inUse))
	assert.Equal(t, float64(1), testutil.ToFloat64(monitor.open))

	monitor.Stop()
	monitor.Stop()
}

func TestConnectionPoolMonitor_Start(t *testing.T) {
	t.Run("Non-positive interval falls back to the default", func(t *testing.T) {
		provider, _ := newMockProvider(t, 4, time.Second)
		monitor := NewConnectionPoolMonitor(provider.db, logger.NewNoopLogger(), prometheus.NewPedanticRegistry())
		defer monitor.Stop()

		assert.NotPanics(t, func() { monitor.Start(0) })
		assert.NotPanics(t, func() { monitor.Start(-time.Second) })

		assert.Equal(t, 4, monitor.GetMetrics().MaxOpenConnections)
	})

	t.Run("Manager starts monitoring once", func(t *testing.T) {
		testDB := NewTestDB(t, logger.NewNoopLogger(), 1)
		reg := prometheus.NewPedanticRegistry()

		assert.NotPanics(t, func() {
			testDB.Manager.StartMonitoring(reg, time.Hour)
			testDB.Manager.StartMonitoring(reg, time.Hour)
		})

		require.NotNil(t, testDB.Manager.connectionMonitor)
		assert.Equal(t, 1, testDB.Manager.connectionMonitor.GetMetrics().MaxOpenConnections)
	})

	t.Run("Manager ignores monitoring before connect", func(t *testing.T) {
		manager := NewManager(DefaultConfig(), logger.NewNoopLogger(), nil)

		assert.NotPanics(t, func() { manager.StartMonitoring(prometheus.NewPedanticRegistry(), time.Hour) })
		assert.Nil(t, manager.connectionMonitor)
	})
}
