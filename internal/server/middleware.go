package server

import (
	"github.com/Kyle5427/web-data-management-system/internal/correlation"
	"github.com/labstack/echo/v4"
)

// correlationMiddleware assigns each request a correlation ID, propagated
// through the request context into log records and echoed back to the client.
func correlationMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := correlation.NewID()
			ctx := correlation.WithID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}
