package echohttp

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// requestLogger emits one log line per handled request, carrying the same
// request id the client receives in the X-Request-Id response header.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			slog.Info("handled request",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"route", ctx.Path(),
				"status", ctx.Response().Status,
				"requestId", requestID(ctx),
				"duration", time.Since(start))
			return err
		}
	}
}

func requestID(ctx echo.Context) string {
	return ctx.Response().Header().Get(echo.HeaderXRequestID)
}
