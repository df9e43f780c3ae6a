package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/1000011-67/Earthly-Liquids/internal/app/catalog"
	"github.com/1000011-67/Earthly-Liquids/internal/app/orders"
	"github.com/1000011-67/Earthly-Liquids/internal/config"
	"github.com/1000011-67/Earthly-Liquids/internal/handler/http/api"
	"github.com/1000011-67/Earthly-Liquids/internal/infrastructure/database"
	"github.com/1000011-67/Earthly-Liquids/internal/infrastructure/payment"
	postgres_order_repo "github.com/1000011-67/Earthly-Liquids/internal/repository/order_repo/postgres"
	postgres_product_repo "github.com/1000011-67/Earthly-Liquids/internal/repository/product_repo/postgres"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	appLogger, err := zapConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create zap logger: %v\n", err)
		os.Exit(1)
	}

	appLogger.Info("Earthly Liquids API starting...")

	if cfg.UsingDemoCredentials() {
		appLogger.Warn("Razorpay credentials not configured, using placeholder test credentials; gateway calls will be rejected by Razorpay")
	}

	appLogger.Info("Waiting for database to be available...")
	dbConfig := database.DBConfig{
		Host:     cfg.DBConfig.DBHost,
		Port:     cfg.DBConfig.DBPort,
		User:     cfg.DBConfig.DBUser,
		Password: cfg.DBConfig.DBPassword,
		DBName:   cfg.DBConfig.DBName,
		SSLMode:  cfg.DBConfig.DBSSLMode,
	}

	var db *sql.DB
	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = database.NewPostgresDB(dbConfig)
		if err == nil {
			appLogger.Info("Successfully connected to PostgreSQL database!")
			break
		}
		appLogger.Warn(fmt.Sprintf("Failed to connect to database (attempt %d/%d): %v. Retrying in %s...",
			i+1, maxRetries, err, retryDelay))
		time.Sleep(retryDelay)
	}

	if db == nil {
		appLogger.Fatal("Could not connect to database after multiple retries. Exiting.", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("Error closing database connection", zap.Error(err))
		}
	}()

	appLogger.Info("Running database migrations...")
	m, err := migrate.New(cfg.MigrationsPath, "postgres://"+cfg.GetDBMigrationConnectionString())
	if err != nil {
		appLogger.Fatal("Failed to create migrate instance", zap.Error(err))
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		appLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	appLogger.Info("Database migrations applied successfully!")

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret,
		appLogger.With(zap.String("component", "RazorpayGateway")))

	productRepository := postgres_product_repo.NewProductRepository(db,
		appLogger.With(zap.String("component", "ProductRepository")))
	orderRepository := postgres_order_repo.NewOrderRepository(db,
		appLogger.With(zap.String("component", "OrderRepository")))

	catalogService := catalog.NewCatalogService(productRepository,
		appLogger.With(zap.String("component", "CatalogService")))
	orderService := orders.NewOrderService(orderRepository, gateway,
		appLogger.With(zap.String("component", "OrderService")))

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err = catalogService.Seed(seedCtx)
	cancelSeed()
	if err != nil {
		appLogger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	router := api.NewRouter(catalogService, orderService, appLogger)

	serverAddr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		appLogger.Info("Earthly Liquids API listening", zap.String("address", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-sigChan

	appLogger.Info("Shutting down Earthly Liquids API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Graceful shutdown failed", zap.Error(err))
	}

	appLogger.Info("Earthly Liquids API stopped.")
}
