// Package server exposes the application service over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Kyle5427/web-data-management-system/internal/app"
	"github.com/Kyle5427/web-data-management-system/internal/config"
	"github.com/Kyle5427/web-data-management-system/internal/errors"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	app          *app.Service
	sessionStore *sessions.CookieStore
	healthChecks []HealthChecker
}

func NewServer(cfg *config.Config, svc *app.Service, healthChecks ...HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlationMiddleware())
	e.Use(errors.Middleware())

	// The cookie carries only the opaque session token; identity lives in
	// the server-side session store. MaxAge 0 yields a browser-session
	// cookie, matching the no-expiry default.
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          svc,
		sessionStore: sessionStore,
		healthChecks: healthChecks,
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
