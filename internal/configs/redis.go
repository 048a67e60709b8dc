package config

import (
	"github.com/redis/rueidis"
)

// NewRedisClient connects to Redis for the distributed rate limiter. An
// empty address means Redis is not configured and the caller should fall
// back to the in-process limiter.
func NewRedisClient(addr string) (rueidis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	return rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{addr},
	})
}
