package handler

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account HTTP requests. Failures are attached to the
// gin context and rendered by middleware.ErrorHandler.
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	account, err := h.accounts.CreateAccount(c.Request.Context(), req.AccountID, req.Balance)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// GetAccount handles GET /accounts/:accountId
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accounts.GetAccount(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// SetBalance handles PUT /accounts/:accountId/balance
func (h *AccountHandler) SetBalance(c *gin.Context) {
	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	id := c.Param("accountId")
	n, err := h.accounts.SetBalance(c.Request.Context(), id, req.Balance)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if n == 0 {
		h.logger.Warn("Balance update matched no account", map[string]any{"account_id": id})
	}

	c.JSON(http.StatusOK, dto.RowsAffectedResponse{AccountID: id, RowsAffected: n})
}

// DeleteAccount handles DELETE /accounts/:accountId
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id := c.Param("accountId")
	n, err := h.accounts.DeleteAccount(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.RowsAffectedResponse{AccountID: id, RowsAffected: n})
}
