package usecase

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
)

// AccountUseCase defines the account operations exposed over the API
type AccountUseCase interface {
	// CreateAccount creates a new account with an opening balance
	//
	// Possible errors:
	// - ErrInvalidAccountID, ErrNegativeBalance: if the input is invalid
	// - ClassifiedError(DuplicateKey): if the account already exists
	CreateAccount(ctx context.Context, id string, balance int64) (*entity.Account, error)

	// GetAccount retrieves an account by key
	//
	// Possible errors:
	// - ClassifiedError(NotFound): if no account has this key
	GetAccount(ctx context.Context, id string) (*entity.Account, error)

	// SetBalance overwrites the balance and returns the rows affected.
	// A missing account is not an error; zero rows are reported instead.
	SetBalance(ctx context.Context, id string, balance int64) (int64, error)

	// DeleteAccount removes an account and returns the rows affected.
	// A missing account is not an error; zero rows are reported instead.
	DeleteAccount(ctx context.Context, id string) (int64, error)

	// Transfer moves amount between two accounts in a single unit of work
	//
	// Possible errors:
	// - BusinessRuleError: insufficient funds or a disallowed destination
	// - RollbackError: wraps any failure raised inside the unit of work
	// - ClassifiedError(Unavailable): if no connection could be acquired
	Transfer(ctx context.Context, fromID, toID string, amount int64) error
}
