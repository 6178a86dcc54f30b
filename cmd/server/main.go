package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/checkout/usecase"
	"storefront/internal/client"
	"storefront/internal/commons"
	"storefront/internal/config"
	"storefront/internal/idempotency"
	"storefront/internal/infrastructure/database"
	"storefront/internal/infrastructure/logger"
	"storefront/internal/infrastructure/metrics"
	"storefront/internal/infrastructure/redis"
	"storefront/internal/infrastructure/schema"
	"storefront/internal/invoice"
	"storefront/internal/messaging/kafka"
	"storefront/internal/messaging/noop"
	"storefront/internal/payment"
	"storefront/internal/product"
	"storefront/internal/server"

	"go.uber.org/zap"
)

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Open(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.CreateSchema {
		if err := schema.Create(context.Background(), db); err != nil {
			zapLogger.Fatal("creating schema", zap.Error(err))
		}
		zapLogger.Info("schema ready")
	}

	m := metrics.New(cfg.Metrics.Namespace)

	var publisher usecase.EventPublisher = noop.Publisher{}
	if cfg.Kafka.Enabled() {
		kafkaPublisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrdersTopic, zapLogger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		zapLogger.Info("publishing order events", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrdersTopic))
	}

	clientModule := client.NewModule(db, zapLogger)
	catalogModule := catalog.NewModule(db)
	productModule := product.NewModule(db, catalogModule.Facade, zapLogger)
	paymentModule := payment.NewModule(db, cfg.Payment, zapLogger)
	invoiceModule := invoice.NewModule(db, zapLogger)
	checkoutModule := checkout.NewModule(db, cfg.Checkout, usecase.Collaborators{
		Clients:  clientModule.Facade,
		Stock:    productModule.Facade,
		Catalog:  catalogModule.Facade,
		Payments: paymentModule.Facade,
		Invoices: invoiceModule.Facade,
	}, publisher, m, zapLogger)

	routes := server.Routes{
		Clients:    clientModule.Controller,
		Products:   productModule.Controller,
		Invoices:   invoiceModule.Controller,
		Checkout:   checkoutModule.Controller,
		DB:         db,
		Metrics:    m.Handler(),
		Instrument: m.Middleware,
	}

	if cfg.Redis.Enabled() {
		rdb, err := redis.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			zapLogger.Fatal("connecting to redis", zap.Error(err))
		}
		defer rdb.Close()
		routes.Idempotency = idempotency.Middleware(idempotency.NewRedisStore(rdb), cfg.Idempotency.TTL, zapLogger)
		zapLogger.Info("idempotency keys enabled", zap.Duration("ttl", cfg.Idempotency.TTL))
	}

	srv := server.New(cfg.Server.Port, server.NewRouter(routes, zapLogger), zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
