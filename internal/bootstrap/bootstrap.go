package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles common server setup that can be reused across projects
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
// This is reusable across different projects
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	// Essential middleware (common for all projects)
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))
	engine.Use(middleware.LoggerMiddleware())

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(sharedError.RouteNotFound.Status, sharedError.RouteNotFound)
	})

	return engine
}

// recoveryHandler turns a panic into the generic error response
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	slog.Error("Panic Recovered",
		"error", fmt.Sprint(recovered),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(sharedError.InternalServerError.Status, sharedError.InternalServerError)
}
