package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver records request metrics. It receives the route template so
// path parameters do not explode label cardinality.
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
}

// requestLogger logs and measures every request after the handler ran.
func requestLogger(logger *slog.Logger, observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			elapsed := time.Since(start)
			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			if observer != nil {
				observer.ObserveHTTPRequest(c.Request().Method, route, status, elapsed)
			}

			args := []any{
				"method", c.Request().Method,
				"route", route,
				"status", status,
				"duration_ms", elapsed.Milliseconds(),
				"remote_addr", c.RealIP(),
			}
			if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
				args = append(args, "request_id", rid)
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(c.Request().Context(), level, "http_request", args...)
			return nil
		}
	}
}
