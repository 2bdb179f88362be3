package handlers

import (
	"log/slog"

	"github.com/SscSPs/bizledger/cmd/docs"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health HealthDependencies,
) error {
	h := &healthHandler{deps: health}
	r.GET("/health", h.health)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)}
	if cfg.RateLimit != "" {
		lim, err := middleware.NewMemoryRateLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		handlers = append(handlers, middleware.RateLimit(lim))
	} else {
		slog.Warn("Rate limiting disabled")
	}

	v1 := r.Group("/api/v1", handlers...)
	RegisterLedgerRoutes(v1, services.Ledger, cfg.HistoryDefaultLimit)
	return nil
}

// RegisterLedgerRoutes mounts every ledger endpoint on rg. Authentication is
// expected to be applied to rg by the caller.
func RegisterLedgerRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvcFacade, historyDefaultLimit int) {
	registerValidators()

	businesses := registerBusinessRoutes(rg, svc)
	registerTransactionRoutes(rg, businesses, svc, historyDefaultLimit)
	registerProjectRoutes(rg, businesses, svc)
	registerAdminRoutes(rg, svc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
