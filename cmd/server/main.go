package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	_ "github.com/tropicaldog17/stockfolio/docs"
	"github.com/tropicaldog17/stockfolio/internal/config"
	"github.com/tropicaldog17/stockfolio/internal/db"
	"github.com/tropicaldog17/stockfolio/internal/handlers"
	"github.com/tropicaldog17/stockfolio/internal/logger"
	"github.com/tropicaldog17/stockfolio/internal/models"
	"github.com/tropicaldog17/stockfolio/internal/repositories"
	"github.com/tropicaldog17/stockfolio/internal/scheduler"
	"github.com/tropicaldog17/stockfolio/internal/services"
)

const version = "1.0.0"

// @title Stockfolio API
// @version 1.0
// @description Daily price ingestion and portfolio return calculation.
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		stdlog.Fatal("Failed to build logger:", err)
	}
	defer log.Sync()

	// Database connection
	dbConfig := db.NewConfig()
	database, err := db.Connect(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		log.Fatal("Database health check failed", zap.Error(err))
	}
	log.Info("Database connection established", zap.String("driver", dbConfig.Driver))

	// production postgres schemas come from the migrations module
	if dbConfig.Driver == db.DriverSQLite || !cfg.IsProduction() {
		if err := database.Migrate(models.All()...); err != nil {
			log.Fatal("Auto-migration failed", zap.Error(err))
		}
	}

	if cfg.Polygon.APIKey == "" {
		log.Warn("POLYGON_API_KEY is not set; ingestion requests will be rejected upstream")
	}

	// Repositories
	stockRepo := repositories.NewStockRepository(database)
	priceRepo := repositories.NewPriceBarRepository(database)
	customerRepo := repositories.NewCustomerRepository(database)

	// Services
	provider := services.NewPolygonProvider(cfg.Polygon)
	ingestionService := services.NewIngestionService(stockRepo, priceRepo, provider, cfg.Ingest.LookbackDays, log.Named("ingestion"))
	calculator := services.NewReturnCalculator(priceRepo, log.Named("returns"))
	portfolioService := services.NewPortfolioService(customerRepo, calculator)
	customerService := services.NewCustomerService(customerRepo)
	stockService := services.NewStockService(stockRepo, priceRepo)

	// Router
	router := mux.NewRouter()
	router.Use(handlers.LoggingMiddleware(log.Named("http")))
	handlers.RegisterRoutes(router, &handlers.Handlers{
		Stocks:    handlers.NewStockHandler(ingestionService, stockService, log.Named("stocks")),
		Portfolio: handlers.NewPortfolioHandler(portfolioService),
		Customers: handlers.NewCustomerHandler(customerService),
		Health:    handlers.NewHealthHandler(database, version),
	})
	if cfg.EnableSwagger {
		handlers.RegisterSwagger(router)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Scheduled refresh of the default universe
	if cfg.Ingest.Cron != "" {
		runner := scheduler.New(log.Named("cron"), ctx)
		if _, err := runner.AddIngestion(cfg.Ingest.Cron, ingestionService); err != nil {
			log.Fatal("Invalid INGEST_CRON", zap.String("spec", cfg.Ingest.Cron), zap.Error(err))
		}
		runner.Start()
		defer runner.Stop()
	}

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handlers.CORSMiddleware(cfg.AllowedOrigins)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
