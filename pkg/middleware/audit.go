package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vivere-estoque/pkg/contextkeys"
)

// AuditContext stores the affected route and the request correlation id
// in the request context, where the audit service picks them up when a
// mutation is recorded. Must run after the RequestID middleware.
func AuditContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, contextkeys.RotaKey, c.Request().Method+" "+c.Request().URL.Path)

			cid := c.Request().Header.Get(echo.HeaderXRequestID)
			if cid == "" {
				cid = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			if cid == "" {
				cid = uuid.NewString()
			}
			ctx = context.WithValue(ctx, contextkeys.CorrelationIDKey, cid)

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
