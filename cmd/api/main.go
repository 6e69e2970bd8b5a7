package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	analyticsapp "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/analytics"
	catalogapp "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/catalog"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/notification"
	orderapp "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/order"
	paymentapp "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/application/payment"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/config"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/infrastructure/email"
	ginserver "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/infrastructure/http/gin"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/infrastructure/notify"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/infrastructure/payment/razorpay"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/infrastructure/persistence/postgres"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/interfaces/http/handler"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/interfaces/http/middleware"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/interfaces/http/router"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zl, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("build logger failed: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		zl.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		zl.Fatal("ensure schema failed", zap.Error(err))
	}

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	mailer := email.FromConfig(cfg.Email)
	if mailer == nil {
		zl.Warn("email delivery not configured, order notifications disabled")
	}
	notifier := notification.NewService(orderRepo, mailer, zl)

	dispatcher := notify.NewDispatcher(notifier, cfg.Notify.Workers, cfg.Notify.QueueSize, zl)
	dispatcher.Start()
	defer dispatcher.Stop()

	gateway := razorpay.New(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	catalogSvc := catalogapp.NewService(productRepo)
	orderSvc := orderapp.NewService(orderRepo, dispatcher, zl)
	paymentSvc := paymentapp.NewService(productRepo, gateway, cfg.Razorpay.KeyID, zl)
	analyticsSvc := analyticsapp.NewService(analyticsRepo)

	engine := ginserver.NewEngine()
	engine.Use(middleware.RequestID())
	router.RegisterRoutes(engine, router.Handlers{
		Menu:    handler.NewMenuHandler(catalogSvc, zl),
		Order:   handler.NewOrderHandler(orderSvc, zl),
		Payment: handler.NewPaymentHandler(paymentSvc, zl),
		Admin:   handler.NewAdminHandler(orderSvc, analyticsSvc, zl),
	}, cfg.Admin.Key)

	server := ginserver.NewServer(cfg.Server, engine)
	zl.Info("server starting", zap.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		zl.Fatal("server run failed", zap.Error(err))
	}
}
