package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/unitofwork"
	"github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/tracing"
	timeProvider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const poolMonitorInterval = 15 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(core.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	isolation, err := database.ParseIsolation(cfg.Transaction.Isolation)
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	tp := timeProvider.NewRealTimeProvider()

	tracerProvider, err := tracing.NewTracerProvider(context.Background(), cfg.Tracing, cfg.Environment)
	if err != nil {
		appLogger.Error("Failed to initialize tracing", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			appLogger.Error("Failed to flush traces", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	dbManager := database.NewManager(database.NewConfigFromApp(cfg), appLogger, tp)
	if err := dbManager.Connect(context.Background()); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.MigrationManager().MigrateAll(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	dbManager.StartMonitoring(registry, poolMonitorInterval)

	coordinator := unitofwork.NewCoordinator(
		dbManager.Provider(),
		dbManager.Classifier(),
		appLogger,
		tp,
		unitofwork.WithObserver(database.NewPrometheusObserver(registry)),
		unitofwork.WithIsolation(isolation),
		unitofwork.WithTracer(tracerProvider.Tracer(unitofwork.TracerName)),
	)

	accountRepo := repository.NewAccountRepository(coordinator, dbManager.Executor(), dbManager.Classifier(), appLogger)
	accountService := account.NewService(
		accountRepo,
		coordinator,
		appLogger,
		account.WithBlockedDestinations(cfg.Ledger.BlockedDestinations...),
	)

	seeds := make([]migration.SeedAccount, 0, len(cfg.Ledger.SeedAccounts))
	for _, s := range cfg.Ledger.SeedAccounts {
		seeds = append(seeds, migration.SeedAccount{ID: s.ID, Balance: s.Balance})
	}
	if err := migration.SeedAccounts(context.Background(), accountService, seeds, appLogger); err != nil {
		appLogger.Error("Failed to seed accounts", map[string]any{
			"error": err.Error(),
		})
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(
		router,
		handler.NewAccountHandler(accountService, appLogger),
		handler.NewTransferHandler(accountService, appLogger),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":      cfg.Server.Port,
			"env":       cfg.Environment,
			"driver":    cfg.Database.Driver,
			"isolation": isolation.String(),
			"tracing":   tracerProvider.Enabled(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// In-flight units of work finish before the pool is closed by the deferred Close
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path (or AL_DB_PATH environment variable)")
		}
	case database.DriverPostgres, "":
		required := []struct{ name, value string }{
			{"database.host (or AL_DB_HOST environment variable)", cfg.Database.Host},
			{"database.username (or AL_DB_USERNAME environment variable)", cfg.Database.Username},
			{"database.password (or AL_DB_PASSWORD environment variable)", cfg.Database.Password},
			{"database.database (or AL_DB_NAME environment variable)", cfg.Database.Database},
		}
		for _, r := range required {
			if r.value == "" {
				missingConfigs = append(missingConfigs, r.name)
			}
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be one of: %s, %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != database.DriverSQLite &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is meant for development and tests")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
