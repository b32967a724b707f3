// Copyright (c) 2026 Newsdesk. All rights reserved.
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

	"github.com/taibuivan/newsdesk/internal/core/article"
	"github.com/taibuivan/newsdesk/internal/core/comment"
	"github.com/taibuivan/newsdesk/internal/core/topic"
	"github.com/taibuivan/newsdesk/internal/core/user"
	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/config"
	"github.com/taibuivan/newsdesk/internal/platform/constants"
	"github.com/taibuivan/newsdesk/internal/platform/middleware"
	"github.com/taibuivan/newsdesk/internal/platform/respond"
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
	// Liveness is the /health handler; it returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; it returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Metrics serves the Prometheus exposition. Nil disables /metrics.
	Metrics http.Handler

	Topic   *topic.Handler
	Article *article.Handler
	Comment *comment.Handler
	User    *user.Handler
}

// Options carries the optional cross-cutting collaborators of the router.
type Options struct {
	// Observer receives per-request metrics. Nil disables request metrics.
	Observer middleware.RequestObserver

	// Limiter throttles clients by IP. Nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, opts Options, h Handlers) *Server {
	r := NewRouter(cfg, log, opts, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree without binding it to a listener.
func NewRouter(cfg *config.Config, log *slog.Logger, opts Options, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	if opts.Observer != nil {
		r.Use(middleware.Metrics(opts.Observer))
	}
	r.Use(middleware.PanicRecovery())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware)
	}
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Unknown paths and unsupported methods share one response.
	r.NotFound(pathNotFound)
	r.MethodNotAllowed(pathNotFound)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/", describeEndpoints)

		api.Route("/topics", h.Topic.RegisterRoutes)
		api.Route("/users", h.User.RegisterRoutes)
		api.Route("/comments", h.Comment.RegisterRoutes)
		api.Route("/articles", func(articles chi.Router) {
			h.Article.RegisterRoutes(articles)
			h.Comment.RegisterArticleRoutes(articles)
		})
	})

	return r
}

func pathNotFound(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.ErrPathNotFound)
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
