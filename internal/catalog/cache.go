// Package catalog caches card metadata lookups in front of a CardRepository.
package catalog

import (
	"context"
	"time"

	"card-trading/internal/model"
	"card-trading/internal/repository"

	lru "github.com/hashicorp/golang-lru"
)

var _ repository.CardRepository = (*CachedRepository)(nil)

type cachedCard struct {
	card      model.Card
	timestamp time.Time
}

// CachedRepository is a read-through LRU with a per-entry expiry.
// Misses are not cached so newly imported cards show up immediately.
type CachedRepository struct {
	next   repository.CardRepository
	cache  *lru.Cache
	expiry time.Duration
	now    func() time.Time
}

func NewCachedRepository(next repository.CardRepository, size int, expiry time.Duration) (*CachedRepository, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedRepository{
		next:   next,
		cache:  cache,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

func (c *CachedRepository) GetByExternalID(ctx context.Context, externalID string) (*model.Card, error) {
	if cached, ok := c.cache.Get(externalID); ok {
		entry := cached.(cachedCard)
		if c.expiry <= 0 || c.now().Sub(entry.timestamp) < c.expiry {
			card := entry.card
			return &card, nil
		}
		c.cache.Remove(externalID)
	}

	card, err := c.next.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	c.cache.Add(externalID, cachedCard{card: *card, timestamp: c.now()})
	return card, nil
}

// Purge drops every cached entry.
func (c *CachedRepository) Purge() {
	c.cache.Purge()
}
