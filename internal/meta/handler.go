package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 5 * time.Second

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler serves service metadata (health, loaded boards)
type Handler struct {
	cfg    *config.Config
	db     HealthChecker
	boards *board.Registry
}

func NewHandler(cfg *config.Config, db HealthChecker, boards *board.Registry) *Handler {
	return &Handler{
		cfg:    cfg,
		db:     db,
		boards: boards,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"error":  err.Error(),
				},
			},
		})
		return
	}

	keys := make([]string, 0)
	for _, b := range h.boards.All() {
		keys = append(keys, b.Key)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"database": gin.H{
				"status":     "up",
				"latency_ms": time.Since(start).Milliseconds(),
			},
			"boards": keys,
		},
	})
}
