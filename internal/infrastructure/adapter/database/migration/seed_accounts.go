package migration

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
)

// SeedAccount is an account created at startup when it does not exist yet
type SeedAccount struct {
	ID      string
	Balance int64
}

// SeedAccounts creates the missing seed accounts. Existing accounts keep their balance.
func SeedAccounts(ctx context.Context, accounts usecase.AccountUseCase, seeds []SeedAccount, logger coreport.Logger) error {
	for _, seed := range seeds {
		_, err := accounts.GetAccount(ctx, seed.ID)
		if err == nil {
			continue
		}
		if !errs.IsNotFoundError(err) {
			return fmt.Errorf("seed account %s: %w", seed.ID, err)
		}

		if _, err := accounts.CreateAccount(ctx, seed.ID, seed.Balance); err != nil {
			// another instance may have created it in the meantime
			if errs.IsDuplicateKeyError(err) {
				continue
			}
			return fmt.Errorf("seed account %s: %w", seed.ID, err)
		}

		logger.Info("Seed account created", map[string]any{
			"account_id": seed.ID,
			"balance":    seed.Balance,
		})
	}
	return nil
}
