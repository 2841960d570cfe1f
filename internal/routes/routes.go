// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"xpressairtime/internal/handlers"
	"xpressairtime/internal/middleware"
	"xpressairtime/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies carries everything the router needs. All fields are required.
type Dependencies struct {
	Auth     *middleware.AuthMiddleware
	Users    *handlers.UserHandler
	Wallets  *handlers.WalletHandler
	Airtime  *handlers.AirtimeHandler
	Health   *handlers.HealthHandler
	Gatherer prometheus.Gatherer
}

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", deps.Health.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	// Public endpoints
	userRoutes := api.Group("/user")
	userRoutes.Post("/", deps.Users.CreateAccount)
	userRoutes.Post("/login", deps.Users.Login)

	setupWalletRoutes(userRoutes, deps)
	setupAirtimeRoutes(api, deps)
}

func setupWalletRoutes(router fiber.Router, deps Dependencies) {
	router.Post("/fundWallet", deps.Auth.Handler, middleware.RequireRole(models.RoleUser), deps.Wallets.FundWallet)
	router.Get("/wallet", deps.Auth.Handler, deps.Wallets.GetWallet)
	router.Get("/wallet/transactions", deps.Auth.Handler, deps.Wallets.GetTransactions)
}

func setupAirtimeRoutes(router fiber.Router, deps Dependencies) {
	airtime := router.Group("/airtime", deps.Auth.Handler)
	airtime.Post("/purchase", deps.Airtime.Purchase)
}
