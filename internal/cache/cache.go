package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fetscr/internal/config"
	"fetscr/internal/search"
)

const (
	pageKeyFmt = "search:%s:%d"
	pageTTL    = 15 * time.Minute
)

// PageCache is a best-effort redis cache for provider pages. Every
// redis failure is treated as a miss; the aggregator never depends on
// the cache being reachable.
type PageCache struct {
	rdb *redis.Client
}

// NewPageCache returns nil when no redis address is configured, which
// disables caching entirely.
func NewPageCache(cfg *config.Config) *PageCache {
	if cfg.Redis.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return &PageCache{rdb: rdb}
}

func (c *PageCache) Get(ctx context.Context, query string, start int) (*search.Page, bool) {
	raw, err := c.rdb.Get(ctx, pageKey(query, start)).Result()
	if err != nil {
		return nil, false
	}
	var page search.Page
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (c *PageCache) Set(ctx context.Context, query string, start int, page *search.Page) {
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, pageKey(query, start), raw, pageTTL).Err()
}

func pageKey(query string, start int) string {
	return fmt.Sprintf(pageKeyFmt, query, start)
}
