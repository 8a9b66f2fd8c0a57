// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package api provides the portal's admin HTTP surface.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"

	"github.com/retr0h/docport/internal/authtoken"
	"github.com/retr0h/docport/internal/config"
	"github.com/retr0h/docport/internal/document/store"
	"github.com/retr0h/docport/internal/identity"
)

// Server is the admin API server.
type Server struct {
	// Echo is exposed for route registration and tests.
	Echo *echo.Echo

	logger      *slog.Logger
	appConfig   config.Config
	customRoles map[string][]string
	tokens      TokenValidator

	store   store.Store
	statsFn func() identity.Stats
}

// Option configures a Server.
type Option func(*Server)

// WithDocumentStore sets the document store backing /documents routes.
func WithDocumentStore(s store.Store) Option {
	return func(srv *Server) {
		srv.store = s
	}
}

// WithCacheStats sets the identity cache stats source for /cache/stats.
func WithCacheStats(fn func() identity.Stats) Option {
	return func(srv *Server) {
		srv.statsFn = fn
	}
}

// WithMetricsRegistry mounts a Prometheus registry on /metrics.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(srv *Server) {
		srv.Echo.GET("/metrics", echo.WrapHandler(
			promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		))
	}
}

// New initialize a new Server and configure an Echo server.
func New(
	appConfig config.Config,
	logger *slog.Logger,
	opts ...Option,
) *Server {
	e := echo.New()
	e.HideBanner = true

	// Initialize CORS configuration
	corsConfig := middleware.CORSConfig{}

	allowOrigins := appConfig.API.Security.CORS.AllowOrigins
	if len(allowOrigins) > 0 {
		corsConfig.AllowOrigins = allowOrigins
	}

	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(corsConfig))

	s := &Server{
		Echo:        e,
		logger:      logger,
		appConfig:   appConfig,
		customRoles: appConfig.API.Security.Roles,
		tokens:      authtoken.New(logger),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerRoutes()

	return s
}

// registerRoutes mounts the portal's admin routes.
func (s *Server) registerRoutes() {
	s.Echo.GET("/health", s.getHealth)

	if s.statsFn != nil {
		s.Echo.GET(
			"/cache/stats",
			s.getCacheStats,
			s.requirePermission(authtoken.PermCacheRead),
		)
	}

	if s.store != nil {
		s.Echo.GET(
			"/documents",
			s.listDocuments,
			s.requirePermission(authtoken.PermDocumentRead),
		)
		s.Echo.GET(
			"/documents/:id",
			s.getDocument,
			s.requirePermission(authtoken.PermDocumentRead),
		)
		s.Echo.DELETE(
			"/documents/:id",
			s.deleteDocument,
			s.requirePermission(authtoken.PermDocumentWrite),
		)
	}
}

// Start starts the Echo server with the configured port.
func (s *Server) Start() {
	go func() {
		s.logger.Info("starting server")
		listenAddr := fmt.Sprintf(":%d", s.appConfig.API.Port)
		if err := s.Echo.Start(listenAddr); err != nil && err != http.ErrServerClosed {
			s.logger.Error(
				"failed to start server",
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Stop gracefully shuts down the Echo server.
func (s *Server) Stop(
	ctx context.Context,
) {
	s.logger.Info("stopping server")

	if err := s.Echo.Shutdown(ctx); err != nil {
		s.logger.Error(
			"server shutdown failed",
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.Info("server stopped gracefully")
	}
}
