package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
	mockcore "github.com/amirhossein-jamali/account-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/account-ledger/mocks/port/persistence"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type repoFixture struct {
	repo     *AccountRepository
	executor *mockpersistence.MockStatementExecutor
	conn     *mockpersistence.MockConnection
	logger   *mockcore.MockLogger
}

// newRepoFixture wires the repository to a real coordinator over a mocked
// connection, so the statement closures run exactly as in production
func newRepoFixture(t *testing.T) *repoFixture {
	t.Helper()

	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(0).Maybe()

	conn := mockpersistence.NewMockConnection(t)
	conn.EXPECT().ID().Return(uint64(1)).Maybe()
	conn.EXPECT().SetIsolation(mock.Anything).Return().Maybe()
	conn.EXPECT().SetAutoCommit(mock.Anything, mock.Anything).Return(nil).Maybe()
	conn.EXPECT().Commit(mock.Anything).Return(nil).Maybe()
	conn.EXPECT().Rollback(mock.Anything).Return(nil).Maybe()

	provider := mockpersistence.NewMockConnectionProvider(t)
	provider.EXPECT().Acquire(mock.Anything).Return(conn, nil).Maybe()
	provider.EXPECT().Release(mock.Anything, conn).Return(nil).Maybe()

	classifier := database.NewErrorClassifier()
	coordinator := unitofwork.NewCoordinator(provider, classifier, logger, clock)
	executor := mockpersistence.NewMockStatementExecutor(t)

	return &repoFixture{
		repo:     NewAccountRepository(coordinator, executor, classifier, logger),
		executor: executor,
		conn:     conn,
		logger:   logger,
	}
}

func TestAccountRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored record", func(t *testing.T) {
		f := newRepoFixture(t)
		f.executor.EXPECT().Exec(mock.Anything, f.conn, insertAccountSQL, "A", int64(10000)).Return(1, nil).Once()

		stored, err := f.repo.Create(ctx, unitofwork.Standalone(), &entity.Account{ID: "A", Balance: 10000})

		require.NoError(t, err)
		assert.Equal(t, &entity.Account{ID: "A", Balance: 10000}, stored)
		f.conn.AssertCalled(t, "Commit", mock.Anything)
	})

	tests := []struct {
		name   string
		raw    error
		kind   errs.Kind
		vendor string
	}{
		{"pgx unique violation", &pgconn.PgError{Code: "23505"}, errs.KindDuplicateKey, database.VendorPostgres},
		{"lib/pq unique violation", &pq.Error{Code: "23505"}, errs.KindDuplicateKey, database.VendorPostgres},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, errs.KindDuplicateKey, database.VendorMySQL},
		{"pgx undefined table", &pgconn.PgError{Code: "42P01"}, errs.KindInvalidStatement, database.VendorPostgres},
		{"pgx too many connections", &pgconn.PgError{Code: "53300"}, errs.KindUnavailable, database.VendorPostgres},
		{"mysql connection refused", &mysql.MySQLError{Number: 2003}, errs.KindUnavailable, database.VendorMySQL},
		{"unrecognised", errors.New("disk on fire"), errs.KindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRepoFixture(t)
			f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
			f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
			f.executor.EXPECT().Exec(mock.Anything, f.conn, insertAccountSQL, "A", int64(1)).Return(0, tt.raw).Once()

			stored, err := f.repo.Create(ctx, unitofwork.Standalone(), &entity.Account{ID: "A", Balance: 1})

			assert.Nil(t, stored)
			var classified *errs.ClassifiedError
			require.ErrorAs(t, err, &classified)
			assert.Equal(t, tt.kind, classified.Kind())
			assert.Equal(t, opCreate, classified.Operation())
			assert.Equal(t, insertAccountSQL, classified.Statement())
			assert.Equal(t, tt.vendor, classified.VendorCode().Vendor)
			assert.ErrorIs(t, err, tt.raw)
			f.conn.AssertCalled(t, "Rollback", mock.Anything)
			f.conn.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestAccountRepository_FindByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("Maps the row to an account", func(t *testing.T) {
		f := newRepoFixture(t)
		f.executor.EXPECT().Query(mock.Anything, f.conn, mock.Anything, selectAccountSQL, "A").
			RunAndReturn(func(_ context.Context, _ persistence.Connection, dest any, _ string, _ ...any) (int64, error) {
				rows := dest.(*[]model.Account)
				*rows = append(*rows, model.Account{AccountID: "A", Balance: 42})
				return 1, nil
			}).Once()

		account, err := f.repo.FindByKey(ctx, unitofwork.Standalone(), "A")

		require.NoError(t, err)
		assert.Equal(t, &entity.Account{ID: "A", Balance: 42}, account)
	})

	t.Run("No row is NotFound", func(t *testing.T) {
		f := newRepoFixture(t)
		f.executor.EXPECT().Query(mock.Anything, f.conn, mock.Anything, selectAccountSQL, "missing").Return(0, nil).Once()

		account, err := f.repo.FindByKey(ctx, unitofwork.Standalone(), "missing")

		assert.Nil(t, account)
		assert.True(t, errs.IsNotFoundError(err))
		var classified *errs.ClassifiedError
		require.ErrorAs(t, err, &classified)
		assert.Equal(t, opFindByKey, classified.Operation())
	})

	t.Run("Participating lookups never commit", func(t *testing.T) {
		f := newRepoFixture(t)
		f.executor.EXPECT().Query(mock.Anything, f.conn, mock.Anything, selectAccountSQL, "missing").Return(0, nil).Once()

		coordinator := f.repo.runner.(*unitofwork.Coordinator)
		err := coordinator.Run(ctx, func(ctx context.Context, tx *unitofwork.Context) error {
			_, err := f.repo.FindByKey(ctx, unitofwork.Participating(tx), "missing")
			assert.True(t, errs.IsNotFoundError(err))
			assert.True(t, tx.Active())
			return nil
		})

		require.NoError(t, err)
		f.conn.AssertNumberOfCalls(t, "Commit", 1)
		f.conn.AssertNotCalled(t, "Rollback", mock.Anything)
	})
}

func TestAccountRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Update reports rows affected", func(t *testing.T) {
		f := newRepoFixture(t)
		f.executor.EXPECT().Exec(mock.Anything, f.conn, updateAccountSQL, int64(500), "A").Return(1, nil).Once()

		n, err := f.repo.Update(ctx, unitofwork.Standalone(), "A", 500)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("Update of a missing key succeeds with zero rows and a warning", func(t *testing.T) {
		f := newRepoFixture(t)
		f.executor.EXPECT().Exec(mock.Anything, f.conn, updateAccountSQL, int64(500), "missing").Return(0, nil).Once()
		f.logger.EXPECT().Warn("Update matched no account", mock.Anything).Once()

		n, err := f.repo.Update(ctx, unitofwork.Standalone(), "missing", 500)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Delete of a missing key succeeds with zero rows and a warning", func(t *testing.T) {
		f := newRepoFixture(t)
		f.executor.EXPECT().Exec(mock.Anything, f.conn, deleteAccountSQL, "missing").Return(0, nil).Once()
		f.logger.EXPECT().Warn("Delete matched no account", mock.Anything).Once()

		n, err := f.repo.Delete(ctx, unitofwork.Standalone(), "missing")

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Delete failure is classified", func(t *testing.T) {
		f := newRepoFixture(t)
		f.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()
		f.executor.EXPECT().Exec(mock.Anything, f.conn, deleteAccountSQL, "A").
			Return(0, &pgconn.PgError{Code: "08006"}).Once()

		n, err := f.repo.Delete(ctx, unitofwork.Standalone(), "A")

		assert.Zero(t, n)
		assert.True(t, errs.IsUnavailableError(err))
	})
}
