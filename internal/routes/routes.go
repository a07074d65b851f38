// Package routes defines the API routing configuration.
// It wires repositories, services and handlers and applies the
// authentication middleware per route group.
package routes

import (
	"custodia/internal/config"
	"custodia/internal/handlers"
	"custodia/internal/middleware"
	"custodia/internal/repositories"
	"custodia/internal/services/auth"
	"custodia/internal/services/customer"
	"custodia/internal/services/transaction"
	"custodia/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	ledgerRepo := repositories.NewLedgerRepository(repositories.DB)
	customerRepo := repositories.NewCustomerRepository(repositories.DB)
	auditRepo := repositories.NewAuditLogRepository(repositories.DB)

	var walletCache wallet.Cache
	var invalidator transaction.CacheInvalidator
	if repositories.WalletCache != nil {
		walletCache = repositories.WalletCache
		invalidator = repositories.WalletCache
	}

	authService := auth.NewService(customerRepo)
	customerService := customer.NewService(customerRepo)
	walletService := wallet.NewService(ledgerRepo, customerRepo, walletCache)
	transactionService := transaction.NewService(
		ledgerRepo,
		walletService,
		transaction.NewAuditRecorder(auditRepo),
		invalidator,
		config.GetDecimalEnv("APPROVAL_THRESHOLD", transaction.DefaultApprovalThreshold),
	)

	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	walletHandler := handlers.NewWalletHandler(walletService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	api := app.Group("/api/v1")

	// Public endpoints
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/refresh", authHandler.Refresh)

	// Authenticated endpoints
	authed := api.Group("", middleware.Auth())

	authed.Get("/customers/me", customerHandler.Me)
	authed.Get("/customers", customerHandler.List)

	authed.Post("/wallets", walletHandler.Create)
	authed.Get("/wallets", walletHandler.List)
	authed.Get("/wallets/:walletId", walletHandler.Get)
	authed.Put("/wallets/:walletId/settings", walletHandler.UpdateSettings)

	authed.Post("/transactions/deposit", transactionHandler.Deposit)
	authed.Post("/transactions/withdraw", transactionHandler.Withdraw)
	authed.Get("/transactions", transactionHandler.List)
	authed.Get("/transactions/:transactionId", transactionHandler.Get)
	authed.Post("/transactions/:transactionId/approve", middleware.RequireEmployee(), transactionHandler.Approve)
}
