// Package limiter counts requests per key in fixed windows. The in-memory
// store serves a single process; the Redis store lets replicas share one
// budget.
package limiter

import (
	"context"
	"time"
)

type Store interface {
	// Allow records one hit for key and reports whether it is within limit
	// for the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
