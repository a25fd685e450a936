package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest        = 4000
	CodeInsufficientBalance   = 4001
	CodeInvalidAmount         = 4002
	CodeInvalidAccountID      = 4003
	CodeNegativeBalance       = 4004
	CodeBusinessRuleViolation = 4220
	CodeAccountNotFound       = 4040
	CodeDuplicateAccount      = 4090

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeInvalidStatement = 5001
	CodeUnavailable      = 5030
)

// Base error types
var (
	// ErrInvalidAccountID is returned when an account key is empty or too long
	ErrInvalidAccountID = errors.New("account ID must be 1 to 64 characters")

	// ErrNegativeBalance is returned when an operation would store a negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrInvalidAmount is returned when a transfer amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientBalance is returned when the source account cannot cover a transfer
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDisallowedDestination is returned when the destination account may not receive transfers
	ErrDisallowedDestination = errors.New("destination account is not allowed")

	// ErrSameAccount is returned when source and destination of a transfer are equal
	ErrSameAccount = errors.New("source and destination accounts must differ")

	// ErrInvalidTransactionState is returned when a transaction context is used out of order
	ErrInvalidTransactionState = errors.New("invalid transaction state")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrNegativeBalance):
		return CodeNegativeBalance
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrSameAccount):
		return CodeInvalidRequest
	}

	switch KindOf(err) {
	case KindDuplicateKey:
		return CodeDuplicateAccount
	case KindNotFound:
		return CodeAccountNotFound
	case KindBusinessRuleViolation:
		return CodeBusinessRuleViolation
	case KindUnavailable:
		return CodeUnavailable
	case KindInvalidStatement:
		return CodeInvalidStatement
	default:
		return CodeInternalServer
	}
}

// BusinessRuleError is raised by business logic running inside a unit of work.
// It is never produced by the classifier.
type BusinessRuleError struct {
	Rule      string
	AccountID string
	Err       error
}

// Error implements the error interface for BusinessRuleError
func (e *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule %q violated for account %s: %v", e.Rule, e.AccountID, e.Err)
}

// Unwrap returns the underlying error
func (e *BusinessRuleError) Unwrap() error {
	return e.Err
}

// Kind always reports KindBusinessRuleViolation
func (e *BusinessRuleError) Kind() Kind {
	return KindBusinessRuleViolation
}

// LogFields returns a map of fields for structured logging
func (e *BusinessRuleError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "business_rule",
		"rule":       e.Rule,
		"account_id": e.AccountID,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e),
	}
}

// NewBusinessRuleError creates a business rule violation for the given account
func NewBusinessRuleError(rule, accountID string, err error) error {
	return &BusinessRuleError{
		Rule:      rule,
		AccountID: accountID,
		Err:       err,
	}
}

// RollbackError reports that a unit of work was rolled back and why
type RollbackError struct {
	Cause error
	// RollbackErr is set when the rollback itself failed as well
	RollbackErr error
}

// Error implements the error interface for RollbackError
func (e *RollbackError) Error() string {
	if e.RollbackErr != nil {
		return fmt.Sprintf("unit of work rolled back due to: %v (rollback failed: %v)", e.Cause, e.RollbackErr)
	}
	return fmt.Sprintf("unit of work rolled back due to: %v", e.Cause)
}

// Unwrap exposes the cause and, if present, the rollback failure
func (e *RollbackError) Unwrap() []error {
	if e.RollbackErr != nil {
		return []error{e.Cause, e.RollbackErr}
	}
	return []error{e.Cause}
}

// LogFields returns a map of fields for structured logging
func (e *RollbackError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "rollback",
		"cause":      e.Cause.Error(),
		"kind":       KindOf(e.Cause).String(),
		"error_code": ErrorCode(e.Cause),
	}
	if e.RollbackErr != nil {
		fields["rollback_error"] = e.RollbackErr.Error()
	}
	return fields
}

// IsNotFoundError checks if the error is a NotFound classification
func IsNotFoundError(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsDuplicateKeyError checks if the error is a DuplicateKey classification
func IsDuplicateKeyError(err error) bool {
	return KindOf(err) == KindDuplicateKey
}

// IsUnavailableError checks if the error is an Unavailable classification
func IsUnavailableError(err error) bool {
	return KindOf(err) == KindUnavailable
}

// IsBusinessRuleViolation checks if the error was raised by a business rule
func IsBusinessRuleViolation(err error) bool {
	return KindOf(err) == KindBusinessRuleViolation
}
