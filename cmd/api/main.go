package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/catalog"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/config"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/handler"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/router"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/service"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/logger"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/payment"
	"github.com/beforeigox/beforeigo-marketing-v2/pkg/utils"
)

func main() {
	// Load .env
	if err := config.LoadEnvFile(); err != nil {
		log.Fatal("Error loading .env file: ", err)
	}

	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	// Price allow-list
	prices, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		zlog.Fatal("Failed to load catalog", zap.Error(err))
	}

	zlog.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("catalog_version", prices.Version()),
		zap.Int("catalog_items", len(prices.Items())),
		zap.Bool("stripe_configured", cfg.Stripe.SecretKey != ""),
		zap.Duration("stripe_timeout", cfg.Stripe.Timeout),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)
	if cfg.Stripe.SecretKey == "" {
		zlog.Warn("STRIPE_SECRET_KEY is not set; checkout requests will fail")
	}

	// Stripe service
	stripeService := payment.NewStripeService(payment.Options{
		SecretKey: cfg.Stripe.SecretKey,
		APIURL:    cfg.Stripe.APIURL,
		Timeout:   cfg.Stripe.Timeout,
		Logger:    zlog,
	})

	validator := utils.NewValidator(prices)

	// Services
	checkoutService := service.NewCheckoutService(
		stripeService,
		validator,
		cfg.Checkout.SuccessURL,
		cfg.Checkout.CancelURL,
		zlog.Named("checkout"),
	)
	storyService := service.NewStoryService(service.UnavailableStoryStore{})

	// Handlers
	app := router.New(router.Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Catalog:  handler.NewCatalogHandler(prices),
		Account:  handler.NewAccountHandler(service.UnavailableAccountStore{}, validator),
		Story:    handler.NewStoryHandler(storyService, validator),
	}, router.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitMax:   cfg.RateLimit.Max,
		RateLimitRange: cfg.RateLimit.Window,
		Logger:         zlog,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
