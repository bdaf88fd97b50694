package cache

import (
	"context"
	"time"
)

// Cache stores serialized calculation results keyed by request payload.
// A miss is reported as ok=false, not as an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
