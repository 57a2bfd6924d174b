// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Route Map:

  - /api/v1/*         anonymous read surface (published content only)
  - /api/v1/auth/*    session endpoints
  - /api/v1/admin/*   management surface, editor role or above
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/argusintel/argus/internal/content/faq"
	"github.com/argusintel/argus/internal/content/offering"
	"github.com/argusintel/argus/internal/content/page"
	"github.com/argusintel/argus/internal/content/resource"
	"github.com/argusintel/argus/internal/content/setting"
	"github.com/argusintel/argus/internal/content/solution"
	"github.com/argusintel/argus/internal/content/team"
	"github.com/argusintel/argus/internal/media"
	"github.com/argusintel/argus/internal/platform/config"
	"github.com/argusintel/argus/internal/platform/constants"
	"github.com/argusintel/argus/internal/platform/middleware"
	"github.com/argusintel/argus/internal/platform/sec"
	"github.com/argusintel/argus/internal/users/auth"
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
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles session endpoints and staff account management.
	Auth *auth.Handler

	// Offering manages the service catalogue.
	Offering *offering.Handler

	// Solution manages industry and use-case solution pages.
	Solution *solution.Handler

	// Resource manages the resource library (docs, customer stories, grants).
	Resource *resource.Handler

	// FAQ manages the question list and its ordering.
	FAQ *faq.Handler

	// Team manages the people shown on the about page.
	Team *team.Handler

	// Page manages composed home/about page content.
	Page *page.Handler

	// Setting manages sitewide key-value settings.
	Setting *setting.Handler

	// Media manages the uploaded asset library.
	Media *media.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)

		// Anonymous read surface: published content only.
		api.Route("/services", h.Offering.RegisterPublicRoutes)
		api.Route("/solutions", h.Solution.RegisterPublicRoutes)
		api.Route("/resources", h.Resource.RegisterPublicRoutes)
		api.Route("/faqs", h.FAQ.RegisterPublicRoutes)
		api.Route("/team", h.Team.RegisterPublicRoutes)
		api.Route("/pages", h.Page.RegisterPublicRoutes)
		api.Route("/settings", h.Setting.RegisterPublicRoutes)

		// Management surface: editors and above, with the account and
		// settings sections restricted to admins.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireRole(sec.RoleEditor))

			admin.Route("/services", h.Offering.RegisterAdminRoutes)
			admin.Route("/solutions", h.Solution.RegisterAdminRoutes)
			admin.Route("/resources", h.Resource.RegisterAdminRoutes)
			admin.Route("/faqs", h.FAQ.RegisterAdminRoutes)
			admin.Route("/team", h.Team.RegisterAdminRoutes)
			admin.Route("/pages", h.Page.RegisterAdminRoutes)
			admin.Route("/media", h.Media.RegisterAdminRoutes)

			admin.Group(func(adminOnly chi.Router) {
				adminOnly.Use(middleware.RequireRole(sec.RoleAdmin))
				adminOnly.Route("/users", h.Auth.RegisterAdminRoutes)
				adminOnly.Route("/settings", h.Setting.RegisterAdminRoutes)
			})
		})
	})

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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
