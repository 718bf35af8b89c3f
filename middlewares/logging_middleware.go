package middlewares

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

var quietPaths = map[string]bool{
	"/api/v1/health/": true,
	"/metrics/":       true,
}

// logger logs every handled request. Failed requests are logged with the status the
// error handler will render, server errors on error level.
func logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			now := time.Now()

			err := next(ctx)

			req := ctx.Request()
			if quietPaths[req.URL.Path] {
				return err
			}

			status := ctx.Response().Status
			level := slog.LevelInfo
			attrs := []any{"method", req.Method, "url", req.URL, "duration", time.Since(now)}
			if userID := req.Header.Get(UserIDHeader); userID != "" {
				attrs = append(attrs, "userID", userID)
			}
			if err != nil {
				httpErr := ToHTTPError(err)
				status = httpErr.Code
				attrs = append(attrs, "err", err)
				if status >= 500 {
					level = slog.LevelError
				} else {
					level = slog.LevelWarn
				}
			}
			attrs = append(attrs, "status", status)

			slog.Log(req.Context(), level, "handled request", attrs...)
			return err
		}
	}
}
