package cache

import (
	"context"
	"time"

	"github.com/Domenick1991/farecast/internal/domain"
)

type QuoteCache interface {
	GetQuote(ctx context.Context, key string) (*domain.Quote, error)
	SetQuote(ctx context.Context, key string, quote *domain.Quote, ttl time.Duration) error
}

// Tiered reads caches in order and back-fills the faster ones on a hit further down.
// A failing level is skipped so a cache outage never blocks a quote.
type Tiered struct {
	levels []QuoteCache
	now    func() time.Time
}

func NewTiered(levels ...QuoteCache) *Tiered {
	t := &Tiered{now: time.Now}
	for _, l := range levels {
		if l != nil {
			t.levels = append(t.levels, l)
		}
	}
	return t
}

func (t *Tiered) GetQuote(ctx context.Context, key string) (*domain.Quote, error) {
	var lastErr error
	for i, level := range t.levels {
		quote, err := level.GetQuote(ctx, key)
		if err != nil {
			lastErr = err
			continue
		}
		if quote == nil {
			continue
		}
		if ttl := quote.ExpiresAt.Sub(t.now()); ttl > 0 {
			for _, upper := range t.levels[:i] {
				_ = upper.SetQuote(ctx, key, quote, ttl)
			}
		}
		return quote, nil
	}
	return nil, lastErr
}

// WithClock replaces the clock used to turn a quote's expiry into a back-fill TTL.
func (t *Tiered) WithClock(now func() time.Time) *Tiered {
	t.now = now
	return t
}

func (t *Tiered) SetQuote(ctx context.Context, key string, quote *domain.Quote, ttl time.Duration) error {
	var lastErr error
	for _, level := range t.levels {
		if err := level.SetQuote(ctx, key, quote, ttl); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

var (
	_ QuoteCache = (*MemoryCache)(nil)
	_ QuoteCache = (*RedisCache)(nil)
	_ QuoteCache = (*Tiered)(nil)
)
