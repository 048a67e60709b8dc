package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	"servicehub.com/servicehub/internal/logging"
)

// RedisRateLimiter is a fixed-window per-IP limiter with its counters in
// Redis, so the limit holds across instances. On Redis failure the request
// is let through: limiting is protection, not a correctness requirement.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP()

			count, err := client.Do(ctx, client.B().Incr().Key(key).Build()).AsInt64()
			if err != nil {
				logging.Logger.WithError(err).Warn("rate limiter redis incr failed")
				return next(c)
			}

			if count == 1 {
				if err := client.Do(ctx,
					client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build(),
				).Error(); err != nil {
					logging.Logger.WithError(err).Warn("rate limiter redis expire failed")
				}
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
