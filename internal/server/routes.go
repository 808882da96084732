package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")

	// Auth routes
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)
	api.GET("/user", s.handleCurrentUser)

	// Product routes; the service applies the auth gate to each call
	api.GET("/products", s.handleListProducts)
	api.POST("/products", s.handleCreateProduct)
	api.GET("/products/:id", s.handleGetProduct)
	api.PUT("/products/:id", s.handleUpdateProduct)
	api.DELETE("/products/:id", s.handleDeleteProduct)
}
