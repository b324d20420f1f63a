// README: Redis read-through cache for geocoding lookups.
package geo

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("geo cache get %s: %v", key, err)
		return nil, false
	}
	return v, true
}

func (c *Cache) Set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("geo cache set %s: %v", key, err)
	}
}
