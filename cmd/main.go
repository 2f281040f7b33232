package main

import (
	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcHandler "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/observability"
	"catalog_service/internal/repository"
	"catalog_service/internal/seed"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// listen opens every server socket; tests replace it to observe binding.
var listen = net.Listen

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Catalog Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connection established.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = db.EnsureSchema(ctx, database)
	if err == nil {
		productRepo := repository.NewPostgresProductRepository(database, logger)
		err = run(ctx, cfg, logger, database, productRepo, os.Stdout, os.Args[1:])
	}
	stop()

	if closeErr := database.Close(); closeErr != nil {
		logger.Errorf("Error closing database connection: %v", closeErr)
	} else {
		logger.Info("Database connection closed.")
	}
	if err != nil {
		logger.Fatalf("Catalog Service failed: %v", err)
	}
	logger.Info("Catalog Service shut down gracefully.")
}

// run loads the sample data, then serves HTTP and gRPC until ctx is done.
// No socket is opened before seeding succeeds; a seeding error is returned as is.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, database delivery.Pinger,
	productRepo domain.ProductRepository, stdout io.Writer, args []string) error {
	// --- Sample Data ---
	if cfg.SeedSampleData {
		loader := seed.NewSampleDataLoader(productRepo, logger, stdout)
		if err := loader.Run(args...); err != nil {
			return fmt.Errorf("failed to load sample data: %w", err)
		}
		observability.RecordSampleProductsLoaded(len(seed.SampleProducts()))
	} else {
		logger.Info("Sample data loading disabled (SEED_SAMPLE_DATA=false)")
	}

	// --- Dependency Injection ---
	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(delivery.RequestLogger(logger))
	router.Use(observability.Middleware())

	if err := delivery.RegisterServiceRoutes(router, database); err != nil {
		return err
	}
	router.GET("/metrics", observability.Handler())
	productHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	// --- Listeners ---
	grpcLis, err := listen("tcp", cfg.GrpcPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port %s: %w", cfg.GrpcPort, err)
	}
	httpLis, err := listen("tcp", cfg.HTTPPort)
	if err != nil {
		grpcLis.Close()
		return fmt.Errorf("failed to listen on HTTP port %s: %w", cfg.HTTPPort, err)
	}

	healthServer := grpcHandler.NewHealthServer(logger)
	srv := &http.Server{Handler: router}

	serveErr := make(chan error, 2)
	go func() { serveErr <- healthServer.Serve(grpcLis) }()
	go func() {
		logger.Infof("Starting server on %s", httpLis.Addr())
		if err := srv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()
	healthServer.MarkServing()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Warn("Shutdown signal received...")
	case runErr = <-serveErr:
		logger.Errorf("Server stopped unexpectedly: %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server forced to shut down: %v", err)
	}
	healthServer.Stop()
	return runErr
}
