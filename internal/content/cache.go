// AngelaMos | 2026
// cache.go

package content

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cricketacademy/academy-api/internal/core"
)

const (
	homepageKey = "content:homepage"
	homepageTTL = 10 * time.Minute
)

// Cache holds the assembled homepage. Any content write invalidates it.
type Cache interface {
	Get(ctx context.Context) (*HomepageResponse, error)
	Put(ctx context.Context, page *HomepageResponse) error
	Invalidate(ctx context.Context) error
}

type redisCache struct {
	c redis.Cmdable
}

func NewRedisCache(c redis.Cmdable) Cache {
	return &redisCache{c: c}
}

func (r *redisCache) Get(ctx context.Context) (*HomepageResponse, error) {
	var page HomepageResponse
	if err := core.GetJSON(ctx, r.c, homepageKey, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *redisCache) Put(ctx context.Context, page *HomepageResponse) error {
	return core.SetJSON(ctx, r.c, homepageKey, page, homepageTTL)
}

func (r *redisCache) Invalidate(ctx context.Context) error {
	if err := r.c.Del(ctx, homepageKey).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", homepageKey, err)
	}
	return nil
}

type noCache struct{}

func (noCache) Get(context.Context) (*HomepageResponse, error) {
	return nil, core.ErrNotFound
}

func (noCache) Put(context.Context, *HomepageResponse) error { return nil }

func (noCache) Invalidate(context.Context) error { return nil }
