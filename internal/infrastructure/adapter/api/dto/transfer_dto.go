package dto

// TransferRequest represents the API request for moving money between accounts
type TransferRequest struct {
	FromAccountID string `json:"fromAccountId" binding:"required"`
	ToAccountID   string `json:"toAccountId" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// TransferResponse represents the API response for a completed transfer
type TransferResponse struct {
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}
