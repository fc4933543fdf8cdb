package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const catalogTTL = 5 * time.Minute

// Catalog is a read-through cache for the rarely-changing catalog
// listings. A nil *Catalog is valid and caches nothing.
type Catalog struct {
	rdb *redis.Client
}

// NewCatalog returns nil when no redis URL is configured.
func NewCatalog(redisURL string) *Catalog {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, catalog cache disabled: %v", err)
		return nil
	}

	return &Catalog{rdb: redis.NewClient(opts)}
}

func (c *Catalog) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Catalog) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, catalogTTL).Err(); err != nil {
		log.Printf("catalog cache set failed: %v", err)
	}
}
