package middleware

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders the last error a handler
// attached with c.Error
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)
		fields := map[string]any{
			"error":  err.Error(),
			"kind":   domainerr.KindOf(err).String(),
			"status": status,
			"path":   c.Request.URL.Path,
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Warn("Request rejected", fields)
		}

		c.AbortWithStatusJSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Kind:    domainerr.KindOf(err).String(),
			Message: messageFor(err, status),
		})
	}
}

// StatusFor maps an error to its HTTP status
func StatusFor(err error) int {
	switch domainerr.KindOf(err) {
	case domainerr.KindDuplicateKey:
		return http.StatusConflict
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindBusinessRuleViolation:
		return http.StatusUnprocessableEntity
	case domainerr.KindUnavailable:
		return http.StatusServiceUnavailable
	case domainerr.KindInvalidStatement:
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidAccountID),
		errors.Is(err, domainerr.ErrNegativeBalance),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrSameAccount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor keeps statement text and driver messages out of responses
func messageFor(err error, status int) string {
	var rule *domainerr.BusinessRuleError
	switch {
	case errors.As(err, &rule):
		return rule.Err.Error()
	case status == http.StatusConflict:
		return "Account already exists"
	case status == http.StatusNotFound:
		return "Account not found"
	case status == http.StatusServiceUnavailable:
		return "Service temporarily unavailable"
	case status == http.StatusBadRequest:
		return err.Error()
	default:
		return "Internal server error"
	}
}
