// Copyright 2026 FinSolve Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/finsolve/finsight/access"
	"github.com/finsolve/finsight/core"
	"github.com/finsolve/finsight/ingestion"
	"github.com/finsolve/finsight/query"
)

// Server wires the HTTP surface to the access registry, query engine,
// and ingestion pipeline.
type Server struct {
	echo     *echo.Echo
	registry *access.Registry
	engine   *query.Engine
	pipeline *ingestion.Pipeline
	logger   *slog.Logger
}

// New creates the HTTP server and registers all routes.
func New(registry *access.Registry, engine *query.Engine, pipeline *ingestion.Pipeline) *Server {
	s := &Server{
		registry: registry,
		engine:   engine,
		pipeline: pipeline,
		logger:   slog.Default().With("component", "http-server"),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = s.errorHandler

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	authed := e.Group("", s.basicAuth())
	authed.GET("/login", s.login)
	authed.POST("/chat", s.chat)
	authed.POST("/upload-docs", s.uploadDocs)
	authed.GET("/roles", s.roles)
	authed.POST("/create-user", s.createUser)
	authed.POST("/create-role", s.createRole)

	s.echo = e
	return s
}

// Start begins serving on the given address, blocking until shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting HTTP server", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// errorHandler renders every error as structured JSON, mapping the core
// error taxonomy onto HTTP status codes.
func (s *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := err.Error()

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if httpErr.Message != nil {
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}
		}
	case errors.Is(err, core.ErrUnauthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, core.ErrForbidden):
		code = http.StatusForbidden
		msg = "Not allowed"
	case errors.Is(err, core.ErrUnsupportedFileType):
		code = http.StatusBadRequest
		msg = "Unsupported file type"
	case errors.Is(err, core.ErrUserExists):
		code = http.StatusConflict
		msg = "User already exists"
	case errors.Is(err, core.ErrDeadlineExceeded):
		code = http.StatusGatewayTimeout
	case errors.Is(err, core.ErrUpstreamService):
		code = http.StatusBadGateway
	case errors.Is(err, query.ErrEmptyQuery):
		code = http.StatusBadRequest
	case errors.Is(err, ingestion.ErrDepartmentRequired):
		code = http.StatusBadRequest
	}

	req := c.Request()
	s.logger.Warn("request failed",
		"status", code, "method", req.Method, "path", req.URL.Path, "err", err)

	if !c.Response().Committed {
		_ = c.JSON(code, map[string]any{"error": msg})
	}
}
