package repository

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/model"
)

const (
	insertAccountSQL = "INSERT INTO accounts (account_id, balance) VALUES (?, ?)"
	selectAccountSQL = "SELECT account_id, balance FROM accounts WHERE account_id = ?"
	updateAccountSQL = "UPDATE accounts SET balance = ? WHERE account_id = ?"
	deleteAccountSQL = "DELETE FROM accounts WHERE account_id = ?"
)

const (
	opCreate    = "create"
	opFindByKey = "findByKey"
	opUpdate    = "update"
	opDelete    = "delete"
)

// ScopeRunner runs a statement closure in the unit of work a scope selects
type ScopeRunner interface {
	Within(ctx context.Context, scope unitofwork.Scope, work unitofwork.Work) error
}

// AccountRepository stores accounts. Every operation takes a scope: standalone
// operations commit on their own, participating ones leave that to the caller.
type AccountRepository struct {
	runner     ScopeRunner
	executor   persistence.StatementExecutor
	classifier *errs.Classifier
	logger     coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(
	runner ScopeRunner,
	executor persistence.StatementExecutor,
	classifier *errs.Classifier,
	logger coreport.Logger,
) *AccountRepository {
	return &AccountRepository{
		runner:     runner,
		executor:   executor,
		classifier: classifier,
		logger:     logger,
	}
}

// Create inserts account and returns the stored record
func (r *AccountRepository) Create(ctx context.Context, scope unitofwork.Scope, account *entity.Account) (*entity.Account, error) {
	var stored *entity.Account
	err := r.runner.Within(ctx, scope, func(ctx context.Context, tx *unitofwork.Context) error {
		if _, err := r.executor.Exec(ctx, tx.Connection(), insertAccountSQL, account.ID, account.Balance); err != nil {
			return r.fail(err, opCreate, insertAccountSQL, account.ID)
		}
		stored = &entity.Account{ID: account.ID, Balance: account.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Account created", map[string]any{
		"account_id": stored.ID,
		"scope":      scope.Mode().String(),
	})
	return stored, nil
}

// FindByKey loads the account with key id
func (r *AccountRepository) FindByKey(ctx context.Context, scope unitofwork.Scope, id string) (*entity.Account, error) {
	var found *entity.Account
	err := r.runner.Within(ctx, scope, func(ctx context.Context, tx *unitofwork.Context) error {
		var rows []model.Account
		if _, err := r.executor.Query(ctx, tx.Connection(), &rows, selectAccountSQL, id); err != nil {
			return r.fail(err, opFindByKey, selectAccountSQL, id)
		}
		if len(rows) == 0 {
			return r.classifier.NotFound(opFindByKey, selectAccountSQL, id)
		}
		found = rows[0].ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Update sets the balance of account id and returns the rows affected.
// Zero rows is not an error.
func (r *AccountRepository) Update(ctx context.Context, scope unitofwork.Scope, id string, balance int64) (int64, error) {
	var affected int64
	err := r.runner.Within(ctx, scope, func(ctx context.Context, tx *unitofwork.Context) error {
		n, err := r.executor.Exec(ctx, tx.Connection(), updateAccountSQL, balance, id)
		if err != nil {
			return r.fail(err, opUpdate, updateAccountSQL, id)
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if affected == 0 {
		r.logger.Warn("Update matched no account", map[string]any{
			"account_id": id,
			"operation":  opUpdate,
		})
	}
	return affected, nil
}

// Delete removes account id and returns the rows affected.
// Zero rows is not an error.
func (r *AccountRepository) Delete(ctx context.Context, scope unitofwork.Scope, id string) (int64, error) {
	var affected int64
	err := r.runner.Within(ctx, scope, func(ctx context.Context, tx *unitofwork.Context) error {
		n, err := r.executor.Exec(ctx, tx.Connection(), deleteAccountSQL, id)
		if err != nil {
			return r.fail(err, opDelete, deleteAccountSQL, id)
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if affected == 0 {
		r.logger.Warn("Delete matched no account", map[string]any{
			"account_id": id,
			"operation":  opDelete,
		})
	}
	return affected, nil
}

// fail classifies a raw executor error and logs it once
func (r *AccountRepository) fail(raw error, operation, statement, id string) error {
	classified := r.classifier.Classify(raw, operation, statement)
	fields := classified.LogFields()
	fields["account_id"] = id

	switch classified.Kind() {
	case errs.KindDuplicateKey, errs.KindNotFound:
		r.logger.Warn("Account statement rejected", fields)
	default:
		r.logger.Error("Account statement failed", fields)
	}
	return classified
}
