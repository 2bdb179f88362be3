package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bizledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const healthCheckTimeout = 2 * time.Second

// DBPinger is satisfied by *pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// RedisPinger is satisfied by *redis.Client.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// HealthDependencies lists the backends reported by /health. Nil entries are
// reported as disabled.
type HealthDependencies struct {
	DB    DBPinger
	Redis RedisPinger
}

type healthHandler struct {
	deps HealthDependencies
}

// health godoc
// @Summary Health check
// @Description Reports the state of the database and redis connections
// @Tags health
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *healthHandler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	status := http.StatusOK
	body := gin.H{"status": "ok", "database": "disabled", "redis": "disabled"}

	if h.deps.DB != nil {
		if err := h.deps.DB.Ping(ctx); err != nil {
			logger.Error("Database health check failed", slog.String("error", err.Error()))
			body["database"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			body["database"] = "up"
		}
	}
	if h.deps.Redis != nil {
		if err := h.deps.Redis.Ping(ctx).Err(); err != nil {
			// redis only carries notifications, the ledger keeps serving without it
			logger.Warn("Redis health check failed", slog.String("error", err.Error()))
			body["redis"] = "down"
		} else {
			body["redis"] = "up"
		}
	}

	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}
