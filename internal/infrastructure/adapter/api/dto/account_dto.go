package dto

import "github.com/amirhossein-jamali/account-ledger/internal/domain/entity"

// CreateAccountRequest represents the API request for opening an account
type CreateAccountRequest struct {
	AccountID string `json:"accountId" binding:"required,max=64"`
	Balance   int64  `json:"balance" binding:"min=0"`
}

// SetBalanceRequest represents the API request for overwriting a balance
type SetBalanceRequest struct {
	Balance int64 `json:"balance" binding:"min=0"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	AccountID string `json:"accountId"`
	Balance   int64  `json:"balance"`
}

// RowsAffectedResponse reports how many accounts a write touched
type RowsAffectedResponse struct {
	AccountID    string `json:"accountId"`
	RowsAffected int64  `json:"rowsAffected"`
}

// NewAccountResponse maps an entity to its API form
func NewAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{AccountID: a.ID, Balance: a.Balance}
}
