package echohttp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/orghub/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func registerMiddlewares(e *echo.Echo, cfg *config.Config) {
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	// assign the request id before anything that logs
	e.Use(middleware.RequestID())

	if cfg.Server.RequestTimeout > 0 {
		e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
			Timeout: cfg.Server.RequestTimeout,
		}))
	}

	e.Use(requestLogger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler(e)
}

// errorHandler is the central error sink. Controllers return plain errors
// and the handler renders them into a json body exactly once, so handler
// code never writes error responses itself.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		slog.Error("request failed",
			"err", err,
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"requestId", requestID(ctx))

		if ctx.Response().Committed {
			return
		}

		httpErr, ok := err.(*echo.HTTPError)
		if !ok {
			httpErr = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		} else if inner, ok := httpErr.Internal.(*echo.HTTPError); ok {
			httpErr = inner
		}

		body := httpErr.Message
		switch m := httpErr.Message.(type) {
		case string:
			if e.Debug {
				body = echo.Map{"message": m, "error": err.Error()}
			} else {
				body = echo.Map{"message": m}
			}
		case json.Marshaler:
			// the type renders itself
		case error:
			body = echo.Map{"message": m.Error()}
		}

		if ctx.Request().Method == http.MethodHead {
			ctx.NoContent(httpErr.Code) // nolint: errcheck
		} else {
			ctx.JSON(httpErr.Code, body) // nolint: errcheck
		}
	}
}

// Server builds a preconfigured echo instance. The allowed cross-origin
// callers and the per-request deadline come from the server configuration.
func Server(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.Logger.SetLevel(99)
	e.HideBanner = true
	registerMiddlewares(e, cfg)
	return e
}
