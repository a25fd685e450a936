package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	transferHandler *handler.TransferHandler,
	metrics http.Handler,
) {
	accounts := router.Group("/accounts")
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("/:accountId", accountHandler.GetAccount)
		accounts.PUT("/:accountId/balance", accountHandler.SetBalance)
		accounts.DELETE("/:accountId", accountHandler.DeleteAccount)
	}

	router.POST("/transfers", transferHandler.Transfer)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Logger wraps ErrorHandler so it sees the rendered status
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
}
