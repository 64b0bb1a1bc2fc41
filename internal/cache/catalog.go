package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/atelierserenite/wellness-api/internal/models"
)

const (
	catalogKey = "catalog:services"
	catalogTTL = 5 * time.Minute
)

// NewRedis returns nil when no address is configured; callers treat a nil
// client as cache-off.
func NewRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

// Catalog caches the public service listing. A cache failure is never an
// error for the caller; the read falls through to the database.
type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(rdb *redis.Client) *Catalog {
	return &Catalog{rdb: rdb}
}

func (c *Catalog) Get(ctx context.Context) ([]models.Service, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("catalog cache read:", err)
		}
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *Catalog) Set(ctx context.Context, services []models.Service) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		log.Println("catalog cache write:", err)
	}
}

// Invalidate is called after any service write so the storefront never
// shows a stale catalog for more than one request.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		log.Println("catalog cache invalidate:", err)
	}
}
