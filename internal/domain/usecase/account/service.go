package account

import (
	"context"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
)

// AccountRepository is the data access the service needs. Every call takes the
// scope it runs in.
type AccountRepository interface {
	Create(ctx context.Context, scope unitofwork.Scope, account *entity.Account) (*entity.Account, error)
	FindByKey(ctx context.Context, scope unitofwork.Scope, id string) (*entity.Account, error)
	Update(ctx context.Context, scope unitofwork.Scope, id string, balance int64) (int64, error)
	Delete(ctx context.Context, scope unitofwork.Scope, id string) (int64, error)
}

// UnitOfWork runs work atomically on one connection
type UnitOfWork interface {
	Run(ctx context.Context, work unitofwork.Work) error
}

// DefaultBlockedDestinations lists accounts that may never receive a transfer
var DefaultBlockedDestinations = []string{"ex"}

// Service implements usecase.AccountUseCase
type Service struct {
	repo      AccountRepository
	uow       UnitOfWork
	validator *TransferValidator
	logger    coreport.Logger
}

// Option configures a Service
type Option func(*Service)

// WithBlockedDestinations replaces DefaultBlockedDestinations
func WithBlockedDestinations(ids ...string) Option {
	return func(s *Service) {
		s.validator = NewTransferValidator(ids)
	}
}

// NewService creates a new account service
func NewService(repo AccountRepository, uow UnitOfWork, logger coreport.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		uow:       uow,
		validator: NewTransferValidator(DefaultBlockedDestinations),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAccount creates a new account with an opening balance
func (s *Service) CreateAccount(ctx context.Context, id string, balance int64) (*entity.Account, error) {
	account, err := entity.NewAccount(id, balance)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, unitofwork.Standalone(), account)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Account created", map[string]any{
		"account_id": stored.ID,
		"balance":    stored.Balance,
	})
	return stored, nil
}

// GetAccount retrieves an account by key
func (s *Service) GetAccount(ctx context.Context, id string) (*entity.Account, error) {
	if err := entity.ValidateAccountID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByKey(ctx, unitofwork.Standalone(), id)
}

// SetBalance overwrites the balance of id
func (s *Service) SetBalance(ctx context.Context, id string, balance int64) (int64, error) {
	if _, err := entity.NewAccount(id, balance); err != nil {
		return 0, err
	}
	return s.repo.Update(ctx, unitofwork.Standalone(), id, balance)
}

// DeleteAccount removes id
func (s *Service) DeleteAccount(ctx context.Context, id string) (int64, error) {
	if err := entity.ValidateAccountID(id); err != nil {
		return 0, err
	}
	return s.repo.Delete(ctx, unitofwork.Standalone(), id)
}
