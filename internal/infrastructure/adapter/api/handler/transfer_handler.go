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

// TransferHandler handles transfer HTTP requests
type TransferHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Transfer handles POST /transfers
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid transfer request format", map[string]any{
			"error": err.Error(),
		})
		_ = c.Error(fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	if err := h.accounts.Transfer(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Status:        "completed",
	})
}
