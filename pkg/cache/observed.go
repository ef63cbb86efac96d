package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/graphsketch/pkg/observability"
)

// Observed wraps c and reports every lookup and write to the registered
// cache hooks. The hook's kind label is the key prefix before the first ':'.
func Observed(c Cache) Cache {
	return observed{c}
}

type observed struct{ Cache }

func kindOf(key string) string {
	kind, _, ok := strings.Cut(key, ":")
	if !ok {
		return "other"
	}
	return kind
}

func (o observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := o.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, kindOf(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, kindOf(key))
		}
	}
	return data, hit, err
}

func (o observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := o.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, kindOf(key), len(data))
	}
	return err
}
