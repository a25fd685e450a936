package entity

import (
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

// MaxAccountIDLength matches the width of the accounts.account_id column
const MaxAccountIDLength = 64

// Account is a ledger account keyed by a string ID. Balance is kept in minor units.
type Account struct {
	ID      string
	Balance int64
}

// NewAccount creates a validated account with the given opening balance
func NewAccount(id string, balance int64) (*Account, error) {
	account := &Account{ID: id, Balance: balance}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return account, nil
}

// Validate checks the key and the balance
func (a *Account) Validate() error {
	if err := ValidateAccountID(a.ID); err != nil {
		return err
	}
	if a.Balance < 0 {
		return errs.ErrNegativeBalance
	}
	return nil
}

// CanDebit reports whether the balance covers amount
func (a *Account) CanDebit(amount int64) bool {
	return a.Balance >= amount
}

// Debited returns a copy of the account with amount subtracted.
// The receiver is left untouched so a rolled back unit of work leaves no trace in memory either.
func (a *Account) Debited(amount int64) (*Account, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if !a.CanDebit(amount) {
		return nil, errs.ErrInsufficientBalance
	}
	return &Account{ID: a.ID, Balance: a.Balance - amount}, nil
}

// Credited returns a copy of the account with amount added
func (a *Account) Credited(amount int64) (*Account, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if a.Balance > maxBalance-amount {
		return nil, errs.ErrInvalidAmount
	}
	return &Account{ID: a.ID, Balance: a.Balance + amount}, nil
}

const maxBalance = int64(^uint64(0) >> 1)

// ValidateAccountID checks that id fits the key column
func ValidateAccountID(id string) error {
	if id == "" || len(id) > MaxAccountIDLength {
		return errs.ErrInvalidAccountID
	}
	return nil
}
