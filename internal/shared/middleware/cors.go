package middleware

import (
	"slices"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}

	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}

	// edit-session tokens travel in the Authorization header
	if !slices.Contains(corsConfig.AllowHeaders, "*") && !slices.Contains(corsConfig.AllowHeaders, AuthorizationHeader) {
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, AuthorizationHeader)
	}

	return cors.New(corsConfig)
}
