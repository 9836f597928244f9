package testutil

import (
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
)

// NewTestConfig creates a configuration that needs no environment variables.
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "tutor-board-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Host:          "localhost",
			Port:          1521,
			Service:       "test",
			User:          "test",
			Password:      "test",
			IsAutoMigrate: false,
		},
		JWT: config.JWTConfig{
			Secret:          "test-jwt-secret-key-must-be-at-least-32-characters-long",
			EditTokenExpiry: 30 * time.Minute,
			AdminExpiry:     12 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
		},
		Mail: config.MailConfig{
			FromName:    "과외 게시판",
			FromAddress: "no-reply@example.com",
			SiteURL:     "https://tutor-board.test",
		},
		Housekeeping: config.HousekeepingConfig{
			Enabled:   false,
			Interval:  time.Hour,
			Retention: 90 * 24 * time.Hour,
			Workers:   1,
		},
	}
}
