package account

import (
	"context"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
)

// Transfer moves amount from fromID to toID in a single unit of work.
// Any failure after the first write rolls the whole transfer back.
func (s *Service) Transfer(ctx context.Context, fromID, toID string, amount int64) error {
	if err := s.validator.ValidateRequest(fromID, toID, amount); err != nil {
		return err
	}

	err := s.uow.Run(ctx, func(ctx context.Context, tx *unitofwork.Context) error {
		return s.transfer(ctx, unitofwork.Participating(tx), fromID, toID, amount)
	})
	if err != nil {
		fields := map[string]any{
			"from_account_id": fromID,
			"to_account_id":   toID,
			"amount":          amount,
			"error":           err.Error(),
			"kind":            errs.KindOf(err).String(),
		}
		if errs.IsBusinessRuleViolation(err) {
			s.logger.Warn("Transfer rejected", fields)
		} else {
			s.logger.Error("Transfer failed", fields)
		}
		return err
	}

	s.logger.Info("Transfer completed", map[string]any{
		"from_account_id": fromID,
		"to_account_id":   toID,
		"amount":          amount,
	})
	return nil
}

func (s *Service) transfer(ctx context.Context, scope unitofwork.Scope, fromID, toID string, amount int64) error {
	from, err := s.repo.FindByKey(ctx, scope, fromID)
	if err != nil {
		return err
	}
	to, err := s.repo.FindByKey(ctx, scope, toID)
	if err != nil {
		return err
	}

	debited, err := from.Debited(amount)
	if err != nil {
		return errs.NewBusinessRuleError(RuleInsufficientFunds, fromID, err)
	}
	if _, err := s.repo.Update(ctx, scope, fromID, debited.Balance); err != nil {
		return err
	}

	if err := s.validator.ValidateDestination(to); err != nil {
		return err
	}

	credited, err := to.Credited(amount)
	if err != nil {
		return errs.NewBusinessRuleError(RuleBalanceOverflow, toID, err)
	}
	_, err = s.repo.Update(ctx, scope, toID, credited.Balance)
	return err
}
