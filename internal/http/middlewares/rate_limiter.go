package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter is the in-process fallback limiter, used when no Redis
// address is configured. Fixed window per client IP.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type counter struct {
		count   int
		started time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*counter)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			ip := c.RealIP()

			mu.Lock()
			w, ok := clients[ip]
			if !ok || now.Sub(w.started) > window {
				w = &counter{started: now}
				clients[ip] = w
			}

			if w.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.count++
			mu.Unlock()

			return next(c)
		}
	}
}
