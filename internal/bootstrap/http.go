package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/config"
)

const maxHeaderBytes = 1 << 20

// Server owns the http.Server lifecycle for the board API.
type Server struct {
	cfg    *config.Config
	server *http.Server
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// Start blocks until the server stops. A graceful shutdown returns nil.
func (s *Server) Start() error {
	slog.Info("서버 시작 중",
		"addr", s.server.Addr,
		"env", s.cfg.App.Env,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.cfg.Server.WriteTimeout,
	)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	started := time.Now()
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	slog.Info("HTTP 서버 종료", "elapsed", time.Since(started).String())
	return nil
}
