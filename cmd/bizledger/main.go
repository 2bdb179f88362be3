package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/handlers"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/SscSPs/bizledger/internal/notify"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/SscSPs/bizledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizledger/internal/repositories/memory"
	"github.com/SscSPs/bizledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Bizledger API
// @version 1.0
// @description Per-business bookkeeping ledger: sales, purchases, expenses and client projects.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repos  portsrepo.RepositoryProvider
		health handlers.HealthDependencies
	)
	if cfg.DatabaseURL != "" {
		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)

		repos = pgsql.NewRepositoryProvider(dbPool)
		health.DB = dbPool
	} else {
		logger.Warn("PGSQL_URL not set, using in-memory repository")
		repos = portsrepo.RepositoryProvider{LedgerRepo: memory.NewLedgerRepository()}
	}

	sinks := notify.Multi{notify.LogNotifier{}}
	posthogNotifier, err := notify.NewPosthogNotifier(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	if err != nil {
		logger.Error("Failed to initialize posthog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if posthogNotifier != nil {
		sinks = append(sinks, posthogNotifier)
	}
	defer func() {
		if err := posthogNotifier.Close(); err != nil {
			logger.Error("Failed to close posthog client", slog.String("error", err.Error()))
		}
	}()

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		redisClient := redis.NewClient(opts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("Failed to close redis client", slog.String("error", err.Error()))
			}
		}()
		sinks = append(sinks, notify.NewRedisNotifier(redisClient, cfg.RedisEventsChannel))
		health.Redis = redisClient
		logger.Info("Publishing ledger events to redis", slog.String("channel", cfg.RedisEventsChannel))
	}

	dispatcher := notify.NewDispatcher(sinks, cfg.NotifyBuffer)

	serviceContainer := services.NewServiceContainer(cfg, repos, dispatcher)
	if err := serviceContainer.Ledger.Restore(ctx); err != nil {
		logger.Error("Failed to restore ledger state", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Ledger state restored")

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(cfg, serviceContainer, health, logger),
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn("Pending ledger events were not delivered", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

func newRouter(cfg *config.Config, svc *portssvc.ServiceContainer, health handlers.HealthDependencies, logger *slog.Logger) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, svc, health); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	return r
}
