package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shophub/shophub-api/internal/application/auth"
	"github.com/shophub/shophub-api/internal/application/order"
	"github.com/shophub/shophub-api/internal/application/payment"
	"github.com/shophub/shophub-api/internal/application/usecase"
	"github.com/shophub/shophub-api/internal/infrastructure/email"
	infrapdf "github.com/shophub/shophub-api/internal/infrastructure/pdf"
	"github.com/shophub/shophub-api/internal/infrastructure/postgres"
	"github.com/shophub/shophub-api/internal/infrastructure/razorpay"
	httpRouter "github.com/shophub/shophub-api/internal/interfaces/http"
	"github.com/shophub/shophub-api/pkg/config"
	"github.com/shophub/shophub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	gateway := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	if !gateway.Configured() {
		log.Warn().Msg("payment gateway credentials missing, payment endpoints will return 503")
	}
	mailer := email.NewMailer(cfg.SMTP, log)
	receipts := infrapdf.NewReceiptGenerator()

	// Mock payment references are only honored outside production.
	allowMockPayments := cfg.App.Env != "production"

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	productUC := usecase.NewProductUseCase(productRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)
	paymentUC := payment.NewUseCase(gateway)
	createOrderUC := order.NewCreateOrderUseCase(productRepo, orderRepo, gateway, mailer, allowMockPayments, log)
	orderUC := order.NewUseCase(orderRepo, receipts)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ShopHub API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CreateOrder: createOrderUC,
		OrderUC:     orderUC,
		PaymentUC:   paymentUC,
		StatsUC:     statsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
