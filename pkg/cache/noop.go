package cache

import (
	"context"
	"time"
)

// NoopCache satisfies Cache without storing anything. Used by the seed
// CLI and tests, where a cache layer adds nothing.
type NoopCache struct{}

var _ Cache = NoopCache{}

func (NoopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (NoopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (NoopCache) Ping(ctx context.Context) error {
	return nil
}
