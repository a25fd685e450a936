package migration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database/migration"
	mockcore "github.com/amirhossein-jamali/account-ledger/mocks/port/core"
	mockusecase "github.com/amirhossein-jamali/account-ledger/mocks/port/usecase"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedAccounts(t *testing.T) {
	ctx := context.Background()
	classifier := database.NewErrorClassifier()
	notFound := func(id string) error { return classifier.NotFound("findByKey", "SELECT", id) }

	seeds := []migration.SeedAccount{
		{ID: "memberA", Balance: 10000},
		{ID: "memberB", Balance: 10000},
		{ID: "ex", Balance: 0},
	}

	t.Run("Creates only the missing accounts", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		log := mockcore.NewMockLogger(t)

		accounts.EXPECT().GetAccount(mock.Anything, "memberA").Return(&entity.Account{ID: "memberA", Balance: 4}, nil).Once()
		accounts.EXPECT().GetAccount(mock.Anything, "memberB").Return(nil, notFound("memberB")).Once()
		accounts.EXPECT().GetAccount(mock.Anything, "ex").Return(nil, notFound("ex")).Once()
		accounts.EXPECT().CreateAccount(mock.Anything, "memberB", int64(10000)).Return(&entity.Account{ID: "memberB", Balance: 10000}, nil).Once()
		accounts.EXPECT().CreateAccount(mock.Anything, "ex", int64(0)).Return(&entity.Account{ID: "ex"}, nil).Once()
		log.EXPECT().Info("Seed account created", mock.Anything).Twice()

		require.NoError(t, migration.SeedAccounts(ctx, accounts, seeds, log))
	})

	t.Run("A concurrent insert is not an error", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		log := mockcore.NewMockLogger(t)
		duplicate := classifier.Classify(&pgconn.PgError{Code: "23505"}, "create", "INSERT")

		accounts.EXPECT().GetAccount(mock.Anything, "ex").Return(nil, notFound("ex")).Once()
		accounts.EXPECT().CreateAccount(mock.Anything, "ex", int64(0)).Return(nil, duplicate).Once()

		require.NoError(t, migration.SeedAccounts(ctx, accounts, seeds[2:], log))
	})

	t.Run("Lookup failures stop seeding", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		log := mockcore.NewMockLogger(t)
		down := classifier.Classify(&pgconn.PgError{Code: "08006"}, "findByKey", "SELECT")

		accounts.EXPECT().GetAccount(mock.Anything, "memberA").Return(nil, down).Once()

		err := migration.SeedAccounts(ctx, accounts, seeds, log)

		assert.True(t, errs.IsUnavailableError(err))
		assert.Contains(t, err.Error(), "memberA")
	})

	t.Run("Create failures stop seeding", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		log := mockcore.NewMockLogger(t)

		accounts.EXPECT().GetAccount(mock.Anything, "memberA").Return(nil, notFound("memberA")).Once()
		accounts.EXPECT().CreateAccount(mock.Anything, "memberA", int64(10000)).Return(nil, errors.New("boom")).Once()

		assert.EqualError(t, migration.SeedAccounts(ctx, accounts, seeds, log), "seed account memberA: boom")
	})
}
