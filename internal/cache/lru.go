package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/farecast/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

type lruEntry struct {
	quote     domain.Quote
	expiresAt time.Time
}

// MemoryCache keeps the most recent quotes in process.
type MemoryCache struct {
	entries *lru.Cache[string, lruEntry]
	now     func() time.Time
}

func NewMemoryCache(size int) (*MemoryCache, error) {
	entries, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &MemoryCache{entries: entries, now: time.Now}, nil
}

func (c *MemoryCache) GetQuote(_ context.Context, key string) (*domain.Quote, error) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, nil
	}
	if !c.now().Before(entry.expiresAt) {
		c.entries.Remove(key)
		return nil, nil
	}
	quote := entry.quote
	return &quote, nil
}

func (c *MemoryCache) SetQuote(_ context.Context, key string, quote *domain.Quote, ttl time.Duration) error {
	if ttl <= 0 || quote == nil {
		return nil
	}
	c.entries.Add(key, lruEntry{quote: *quote, expiresAt: c.now().Add(ttl)})
	return nil
}

func (c *MemoryCache) Len() int {
	return c.entries.Len()
}
