package material

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/concretemix/smartmix/internal/domain"
)

// priceCache is an in-memory LRU cache for current material prices with
// time-based expiration. Ingestion invalidates entries explicitly, the TTL
// bounds staleness if an invalidation is ever missed.
type priceCache struct {
	lru *expirable.LRU[int64, *domain.MaterialPrice]

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats exposes cache effectiveness counters.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

func newPriceCache(size int, ttl time.Duration) *priceCache {
	return &priceCache{
		lru: expirable.NewLRU[int64, *domain.MaterialPrice](size, nil, ttl),
	}
}

func (c *priceCache) Get(materialID int64) (*domain.MaterialPrice, bool) {
	price, found := c.lru.Get(materialID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return price, true
}

func (c *priceCache) Set(materialID int64, price *domain.MaterialPrice) {
	c.lru.Add(materialID, price)
}

// Invalidate drops the cached price for one material. Called whenever a new
// current price lands for it.
func (c *priceCache) Invalidate(materialID int64) {
	c.lru.Remove(materialID)
}

func (c *priceCache) Clear() {
	c.lru.Purge()
}

func (c *priceCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
