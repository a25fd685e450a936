package unitofwork

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	mockcore "github.com/amirhossein-jamali/account-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/account-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newFixedClock(t *testing.T) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(0).Maybe()
	return clock
}

// beginOpen wires the expectations of a successful Begin and returns the open context
func beginOpen(
	t *testing.T,
	provider *mockpersistence.MockConnectionProvider,
	conn *mockpersistence.MockConnection,
) *Context {
	t.Helper()
	conn.EXPECT().ID().Return(uint64(7)).Maybe()
	provider.EXPECT().Acquire(mock.Anything).Return(conn, nil).Once()
	conn.EXPECT().SetIsolation(persistence.IsolationDefault).Return().Once()
	conn.EXPECT().SetAutoCommit(mock.Anything, false).Return(nil).Once()

	tx, err := Begin(context.Background(), provider, errs.NewClassifier(nil), newQuietLogger(t), persistence.IsolationDefault)
	require.NoError(t, err)
	return tx
}

func TestBegin(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquires and disables auto-commit", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)

		tx := beginOpen(t, provider, conn)

		assert.Equal(t, StateOpen, tx.State())
		assert.True(t, tx.Active())
		assert.Same(t, conn, tx.Connection())
	})

	t.Run("Applies isolation before disabling auto-commit", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		conn.EXPECT().ID().Return(uint64(1)).Maybe()

		var order []string
		provider.EXPECT().Acquire(mock.Anything).Return(conn, nil).Once()
		conn.EXPECT().SetIsolation(persistence.IsolationSerializable).Run(func(persistence.IsolationLevel) {
			order = append(order, "isolation")
		}).Return().Once()
		conn.EXPECT().SetAutoCommit(mock.Anything, false).Run(func(context.Context, bool) {
			order = append(order, "autocommit")
		}).Return(nil).Once()

		tx, err := Begin(ctx, provider, errs.NewClassifier(nil), newQuietLogger(t), persistence.IsolationSerializable)

		require.NoError(t, err)
		assert.Equal(t, persistence.IsolationSerializable, tx.Isolation())
		assert.Equal(t, []string{"isolation", "autocommit"}, order)
	})

	t.Run("Acquire failure is classified", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		provider.EXPECT().Acquire(mock.Anything).Return(nil, context.DeadlineExceeded).Once()

		tx, err := Begin(ctx, provider, errs.NewClassifier(nil), newQuietLogger(t), persistence.IsolationDefault)

		assert.Nil(t, tx)
		assert.Equal(t, errs.KindUnavailable, errs.KindOf(err))
	})

	t.Run("Begin failure releases the connection", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		conn.EXPECT().ID().Return(uint64(3)).Maybe()

		beginErr := errors.New("cannot begin")
		provider.EXPECT().Acquire(mock.Anything).Return(conn, nil).Once()
		conn.EXPECT().SetIsolation(mock.Anything).Return().Once()
		conn.EXPECT().SetAutoCommit(mock.Anything, false).Return(beginErr).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		tx, err := Begin(ctx, provider, errs.NewClassifier(nil), newQuietLogger(t), persistence.IsolationDefault)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, beginErr)
		assert.Equal(t, errs.KindUnknown, errs.KindOf(err))
	})
}

func TestContext_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit once", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Commit(mock.Anything).Return(nil).Once()

		require.NoError(t, tx.Commit(ctx))
		assert.Equal(t, StateCommitted, tx.State())
		assert.False(t, tx.Active())
	})

	t.Run("Commit twice is an error", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Commit(mock.Anything).Return(nil).Once()

		require.NoError(t, tx.Commit(ctx))
		err := tx.Commit(ctx)

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionState)
		assert.Equal(t, StateCommitted, tx.State())
	})

	t.Run("Commit after rollback is an error", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		require.NoError(t, tx.Rollback(ctx))

		assert.ErrorIs(t, tx.Commit(ctx), errs.ErrInvalidTransactionState)
		assert.Equal(t, StateRolledBack, tx.State())
	})

	t.Run("Failed commit leaves the context rolled back", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Commit(mock.Anything).Return(context.DeadlineExceeded).Once()

		err := tx.Commit(ctx)

		assert.Equal(t, errs.KindUnavailable, errs.KindOf(err))
		assert.Equal(t, StateRolledBack, tx.State())
		// a cleanup rollback after the failed commit is a no-op
		assert.NoError(t, tx.Rollback(ctx))
	})
}

func TestContext_Rollback(t *testing.T) {
	ctx := context.Background()

	t.Run("Rollback is idempotent", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		require.NoError(t, tx.Rollback(ctx))
		require.NoError(t, tx.Rollback(ctx))

		assert.Equal(t, StateRolledBack, tx.State())
	})

	t.Run("Rollback after commit is an error", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Commit(mock.Anything).Return(nil).Once()

		require.NoError(t, tx.Commit(ctx))

		assert.ErrorIs(t, tx.Rollback(ctx), errs.ErrInvalidTransactionState)
	})

	t.Run("Failed rollback still moves forward", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		rbErr := errors.New("connection reset")
		conn.EXPECT().Rollback(mock.Anything).Return(rbErr).Once()

		err := tx.Rollback(ctx)

		assert.ErrorIs(t, err, rbErr)
		assert.Equal(t, StateRolledBack, tx.State())
	})
}

func TestContext_End(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores auto-commit and releases once", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
		conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(nil).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, tx.End(ctx))

		assert.Equal(t, StateClosed, tx.State())
	})

	t.Run("End twice is an error", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(nil).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		require.NoError(t, tx.Rollback(ctx))
		require.NoError(t, tx.End(ctx))

		assert.ErrorIs(t, tx.End(ctx), errs.ErrInvalidTransactionState)
	})

	t.Run("Ending an open context rolls back first", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(nil).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		require.NoError(t, tx.End(ctx))

		conn.AssertNotCalled(t, "Commit", mock.Anything)
		assert.Equal(t, StateClosed, tx.State())
	})

	t.Run("Release happens even if auto-commit cannot be restored", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		restoreErr := errors.New("broken pipe")
		conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
		conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(restoreErr).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		require.NoError(t, tx.Commit(ctx))
		err := tx.End(ctx)

		assert.ErrorIs(t, err, restoreErr)
		assert.Equal(t, StateClosed, tx.State())
	})

	t.Run("Failed rollback leaves auto-commit off and still releases", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Rollback(mock.Anything).Return(errors.New("connection reset")).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		require.Error(t, tx.Rollback(ctx))
		require.NoError(t, tx.End(ctx))

		conn.AssertNotCalled(t, "SetAutoCommit", mock.Anything, true)
		assert.Equal(t, StateClosed, tx.State())
	})

	t.Run("Failed rollback while ending an open context", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		rbErr := errors.New("connection reset")
		conn.EXPECT().Rollback(mock.Anything).Return(rbErr).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		err := tx.End(ctx)

		assert.ErrorIs(t, err, rbErr)
		conn.AssertNotCalled(t, "SetAutoCommit", mock.Anything, true)
		conn.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Statements are refused after end", func(t *testing.T) {
		provider := mockpersistence.NewMockConnectionProvider(t)
		conn := mockpersistence.NewMockConnection(t)
		tx := beginOpen(t, provider, conn)
		conn.EXPECT().Commit(mock.Anything).Return(nil).Once()
		conn.EXPECT().SetAutoCommit(mock.Anything, true).Return(nil).Once()
		provider.EXPECT().Release(mock.Anything, conn).Return(nil).Once()

		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, tx.End(ctx))

		assert.ErrorIs(t, tx.Commit(ctx), errs.ErrInvalidTransactionState)
		assert.ErrorIs(t, tx.Rollback(ctx), errs.ErrInvalidTransactionState)
	})
}
