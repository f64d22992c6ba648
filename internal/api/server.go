// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/webtoon/internal/core/chapter"
	"github.com/taibuivan/webtoon/internal/core/comic"
	"github.com/taibuivan/webtoon/internal/core/stats"
	"github.com/taibuivan/webtoon/internal/platform/apperr"
	"github.com/taibuivan/webtoon/internal/platform/config"
	"github.com/taibuivan/webtoon/internal/platform/constants"
	"github.com/taibuivan/webtoon/internal/platform/middleware"
	"github.com/taibuivan/webtoon/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Comic handles the comic collection.
	Comic *comic.Handler

	// Chapter handles the chapter collection and per-comic chapter lists.
	Chapter *chapter.Handler

	// Stats serves catalogue counts.
	Stats *stats.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter's eviction loop stops when ctx is done.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(limiter.Handler)
	r.Use(chimw.CleanPath)

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.JSON(writer, http.StatusMethodNotAllowed, respond.ErrorEnvelope{
			Error: "Method not allowed",
			Code:  "METHOD_NOT_ALLOWED",
		})
	})

	// # Infrastructure Endpoints
	r.Get("/", root)
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		h.Comic.RegisterRoutes(api)
		h.Chapter.RegisterRoutes(api)
		h.Stats.RegisterRoutes(api)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.GlobalRequestTimeout + constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
