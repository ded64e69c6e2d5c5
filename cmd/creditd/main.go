package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crednova/credit-approval-service/internal/application/usecase"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	"github.com/crednova/credit-approval-service/internal/domain/service"
	"github.com/crednova/credit-approval-service/internal/infrastructure/cache"
	"github.com/crednova/credit-approval-service/internal/infrastructure/config"
	"github.com/crednova/credit-approval-service/internal/infrastructure/messaging"
	pgrepo "github.com/crednova/credit-approval-service/internal/infrastructure/persistence/postgres"
	"github.com/crednova/credit-approval-service/internal/presentation/rest"
	"github.com/crednova/credit-approval-service/pkg/auth"
	pkgkafka "github.com/crednova/credit-approval-service/pkg/kafka"
	"github.com/crednova/credit-approval-service/pkg/observability"
	pkgpostgres "github.com/crednova/credit-approval-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  "json",
		Service: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting credit-approval-service",
		"http_port", cfg.HTTPPort,
		"metrics_port", cfg.MetricsPort,
	)

	// Metrics exporter and its dedicated listener.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.MetricsPort,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		AppName:  cfg.ServiceName,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if err := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	// Infrastructure adapters.
	customerRepo := pgrepo.NewCustomerRepo(pool)
	loanRepo := pgrepo.NewLoanRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	var installmentCache port.InstallmentCache
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisInstallmentCache(cfg.Redis.Addr, logger)
		defer redisCache.Close()
		installmentCache = redisCache
		logger.Info("installment cache enabled", "addr", cfg.Redis.Addr)
	}

	// Domain services and use cases.
	aggregator := service.NewHistoryAggregator()
	scorer := service.NewScoringEngine()
	slab := service.NewSlabPolicy()
	clock := usecase.Clock(time.Now)

	registerUC := usecase.NewRegisterCustomerUseCase(customerRepo, publisher, logger, clock)
	eligibilityUC := usecase.NewCheckEligibilityUseCase(customerRepo, loanRepo, aggregator, scorer, slab, publisher, logger, clock)
	createLoanUC := usecase.NewCreateLoanUseCase(customerRepo, loanRepo, aggregator, scorer, slab, publisher, logger, clock)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo, customerRepo)
	listLoansUC := usecase.NewListCustomerLoansUseCase(customerRepo, loanRepo, clock)
	installmentUC := usecase.NewComputeInstallmentUseCase(installmentCache, logger)

	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.JWTSecret,
		Issuer: os.Getenv("JWT_ISSUER"),
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// HTTP surface.
	health := rest.NewHealthHandler(cfg.ServiceName, map[string]rest.ReadinessCheck{
		"postgres": func(ctx context.Context) error {
			return pkgpostgres.HealthCheck(ctx, pool)
		},
	}, logger)

	handler := rest.NewHandler(registerUC, eligibilityUC, createLoanUC, getLoanUC, listLoansUC, installmentUC, logger)
	router := handler.Router(health, jwtSvc)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", "error", err)
	}

	logger.Info("credit-approval-service stopped")
}
