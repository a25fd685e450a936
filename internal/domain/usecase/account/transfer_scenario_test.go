package account_test

import (
	"context"
	"sync"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	mu       sync.Mutex
	acquired int
	released int
	outcomes map[unitofwork.Outcome]int
}

func (o *countingObserver) Acquired() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.acquired++
}

func (o *countingObserver) AcquireFailed(errs.Kind) {}

func (o *countingObserver) Released() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.released++
}

func (o *countingObserver) Finished(outcome unitofwork.Outcome, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes[outcome]++
}

func newLedger(t *testing.T, maxOpenConns int) (*account.Service, *database.TestDB, *countingObserver) {
	t.Helper()

	log := logger.NewNoopLogger()
	testDB := database.NewTestDB(t, log, maxOpenConns)
	manager := testDB.Manager

	observer := &countingObserver{outcomes: map[unitofwork.Outcome]int{}}
	coordinator := unitofwork.NewCoordinator(
		manager.Provider(),
		manager.Classifier(),
		log,
		timeprovider.NewRealTimeProvider(),
		unitofwork.WithObserver(observer),
	)
	repo := repository.NewAccountRepository(coordinator, manager.Executor(), manager.Classifier(), log)
	return account.NewService(repo, coordinator, log), testDB, observer
}

func TestTransfer_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful transfer commits both balances", func(t *testing.T) {
		service, testDB, observer := newLedger(t, 1)
		testDB.CreateTestAccount(t, "A", 10000)
		testDB.CreateTestAccount(t, "B", 0)

		err := service.Transfer(ctx, "A", "B", 3000)

		require.NoError(t, err)
		a, _ := testDB.Balance(t, "A")
		b, _ := testDB.Balance(t, "B")
		assert.Equal(t, int64(7000), a)
		assert.Equal(t, int64(3000), b)
		assert.Equal(t, 1, observer.outcomes[unitofwork.OutcomeCommitted])
		assert.Equal(t, observer.acquired, observer.released)
	})

	t.Run("Transfer to ex leaves both balances untouched", func(t *testing.T) {
		service, testDB, observer := newLedger(t, 1)
		testDB.CreateTestAccount(t, "A", 10000)
		testDB.CreateTestAccount(t, "ex", 0)

		err := service.Transfer(ctx, "A", "ex", 3000)

		assert.True(t, errs.IsBusinessRuleViolation(err))
		a, _ := testDB.Balance(t, "A")
		ex, _ := testDB.Balance(t, "ex")
		assert.Equal(t, int64(10000), a)
		assert.Equal(t, int64(0), ex)
		assert.Equal(t, 1, observer.outcomes[unitofwork.OutcomeRolledBack])
		assert.Zero(t, observer.outcomes[unitofwork.OutcomeCommitted])
		assert.Equal(t, 1, observer.released)
	})

	t.Run("Standalone operations go through the same pool", func(t *testing.T) {
		service, testDB, observer := newLedger(t, 1)

		_, err := service.CreateAccount(ctx, "A", 50)
		require.NoError(t, err)
		_, err = service.CreateAccount(ctx, "A", 50)
		assert.True(t, errs.IsDuplicateKeyError(err))

		n, err := service.SetBalance(ctx, "A", 75)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = service.DeleteAccount(ctx, "ghost")
		require.NoError(t, err)
		assert.Zero(t, n)

		_, ok := testDB.Balance(t, "A")
		assert.True(t, ok)
		assert.Equal(t, 4, observer.acquired)
		assert.Equal(t, 4, observer.released)
	})

	t.Run("Concurrent transfers serialize on a single connection", func(t *testing.T) {
		service, testDB, observer := newLedger(t, 1)
		testDB.CreateTestAccount(t, "A", 1000)
		testDB.CreateTestAccount(t, "B", 0)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = service.Transfer(ctx, "A", "B", 10)
			}()
		}
		wg.Wait()

		a, _ := testDB.Balance(t, "A")
		b, _ := testDB.Balance(t, "B")
		assert.Equal(t, int64(1000), a+b)
		assert.Equal(t, observer.acquired, observer.released)
	})
}
