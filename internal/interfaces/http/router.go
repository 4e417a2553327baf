package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shophub/shophub-api/internal/application/auth"
	"github.com/shophub/shophub-api/internal/application/order"
	"github.com/shophub/shophub-api/internal/application/payment"
	"github.com/shophub/shophub-api/internal/application/usecase"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	CreateOrder *order.CreateOrderUseCase
	OrderUC     *order.UseCase
	PaymentUC   *payment.UseCase
	StatsUC     *usecase.StatsUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catalog reads (public), mutations (admin)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/similar", productHandler.Similar)
	products.Post("/", AuthMiddleware(deps.JWTSecret), RequireAdmin(), productHandler.Create)
	products.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireAdmin(), productHandler.Update)
	products.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireAdmin(), productHandler.Delete)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Put("/:id/status", RequireAdmin(), orderHandler.UpdateStatus)

	// Payments (route names follow the storefront's checkout flow)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	protected.Post("/create-order", paymentHandler.CreateIntent)
	protected.Post("/verify-payment", paymentHandler.Verify)

	// Stats (admin)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", RequireAdmin(), statsHandler.Dashboard)
}
