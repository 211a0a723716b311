package repository

import "context"

// CacheRepository memoizes serialized calculation results by key. A miss and
// a backend failure look the same to Get; callers recompute either way.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (string, bool) { return "", false }
func (NoopCache) Set(context.Context, string, string) error  { return nil }
