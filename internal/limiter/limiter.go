package limiter

import "context"

// Limiter decides whether one more attempt identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
