package routes

import (
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler of the service
type Handlers struct {
	Transactions *handler.TransactionHandler
	Balances     *handler.BalanceHandler
	Events       *handler.EventHandler
	Health       *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, defaultTenant string) {
	router.GET("/health", h.Health.Health)

	ledger := router.Group("/api/v1/ledger", middleware.Tenant(defaultTenant))
	{
		transactions := ledger.Group("/transactions")
		transactions.POST("", h.Transactions.CreateTransaction)
		transactions.GET("", h.Transactions.ListTransactions)
		transactions.GET("/export", h.Transactions.ExportTransactions)
		transactions.GET("/:id", h.Transactions.GetTransaction)
		transactions.POST("/:id/cancel", h.Transactions.CancelTransaction)

		ledger.GET("/balance", h.Balances.GetBalance)
		ledger.GET("/summary", h.Balances.GetSummary)
		ledger.GET("/statistics", h.Balances.GetStatistics)

		events := ledger.Group("/events")
		events.POST("/appointment-payments", h.Events.AppointmentPayment)
		events.POST("/invoice-payments", h.Events.InvoicePayment)
		events.POST("/receipt-payments", h.Events.ReceiptPayment)
		events.POST("/reversals", h.Events.Reversal)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
