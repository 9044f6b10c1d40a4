package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-list-api.com/todo-list-api/internal/limiter"
)

// RateLimiter allows limit requests per client IP in each window. When the
// store is unreachable the request goes through.
func RateLimiter(store limiter.Store, limit int, window time.Duration, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			ok, err := store.Allow(c.Request().Context(), key, limit, window)
			if err != nil {
				log.Warn("rate limiter unavailable", zap.String("client", key), zap.Error(err))
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
