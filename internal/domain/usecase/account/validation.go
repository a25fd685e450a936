package account

import (
	"github.com/amirhossein-jamali/account-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
)

// Rule names reported in BusinessRuleError
const (
	RuleInsufficientFunds  = "insufficient_funds"
	RuleBlockedDestination = "blocked_destination"
	RuleBalanceOverflow    = "balance_overflow"
)

// TransferValidator checks transfer requests and the accounts they touch
type TransferValidator struct {
	blocked map[string]struct{}
}

// NewTransferValidator creates a validator refusing transfers into blocked
func NewTransferValidator(blocked []string) *TransferValidator {
	set := make(map[string]struct{}, len(blocked))
	for _, id := range blocked {
		set[id] = struct{}{}
	}
	return &TransferValidator{blocked: set}
}

// ValidateRequest checks the input before any connection is taken
func (v *TransferValidator) ValidateRequest(fromID, toID string, amount int64) error {
	if err := entity.ValidateAccountID(fromID); err != nil {
		return err
	}
	if err := entity.ValidateAccountID(toID); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if fromID == toID {
		return errs.ErrSameAccount
	}
	return nil
}

// ValidateDestination refuses accounts that may not receive transfers.
// It runs after the source was debited, inside the unit of work.
func (v *TransferValidator) ValidateDestination(to *entity.Account) error {
	if _, blocked := v.blocked[to.ID]; blocked {
		return errs.NewBusinessRuleError(RuleBlockedDestination, to.ID, errs.ErrDisallowedDestination)
	}
	return nil
}
