package main

import (
	"context"
	"log"

	"checkout-service/config"
	"checkout-service/controllers"
	"checkout-service/database"
	"checkout-service/events"
	"checkout-service/logger"
	"checkout-service/models"
	"checkout-service/repository"
	"checkout-service/routes"
	"checkout-service/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("[CheckoutService] Failed to load config: ", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	zlog := logger.Log

	db, err := database.ConnectPostgres(cfg, zlog, &models.Order{}, &models.Product{})
	if err != nil {
		zlog.Fatal("Failed to connect to DB", zap.Error(err))
	}
	defer database.Close(db)

	if !cfg.RazorpayConfigured() {
		zlog.Warn("Razorpay keys not set; checkout requests will fail with a configuration error")
	}

	// Optional catalog cache.
	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			zlog.Warn("Redis unavailable, catalog cache disabled", zap.Error(err))
			cache = nil
		}
	}

	// Optional SNS fan-out of paid-order events.
	var eventPublisher events.Publisher
	if cfg.OrderSNSTopicARN != "" {
		awsCfg, err := events.LoadAWSConfig(context.Background())
		if err != nil {
			zlog.Warn("AWS config load failed, order events disabled", zap.Error(err))
		} else {
			eventPublisher = events.NewSNSClient(awsCfg)
		}
	}

	orderRepo := repository.NewGormOrderRepository(db)
	productRepo := repository.NewGormProductRepository(db)

	gateway := services.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.MinOrderAmountPaise, zlog)
	notifier := services.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, zlog)
	checkoutSvc := services.NewCheckoutService(gateway, orderRepo, notifier, eventPublisher, cfg, zlog)
	catalogSvc := services.NewCatalogService(productRepo, cache, cfg.CatalogCacheTTL, zlog)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.Register(r,
		&controllers.CheckoutController{Checkout: checkoutSvc, Logger: zlog},
		&controllers.OrderController{Orders: orderRepo, Logger: zlog},
		&controllers.ProductController{Catalog: catalogSvc, Logger: zlog},
		cfg.AllowedOrigins,
		cfg.AdminJWTSecret,
	)

	zlog.Info("checkout service running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
