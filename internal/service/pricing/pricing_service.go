package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/farecast/internal/cache"
	"github.com/Domenick1991/farecast/internal/currency"
	"github.com/Domenick1991/farecast/internal/domain"
	"github.com/Domenick1991/farecast/internal/features"
	"github.com/Domenick1991/farecast/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PricingUseCase interface {
	Quote(ctx context.Context, req domain.BookingRequest) (*domain.Quote, error)
	// Ready reports whether the model artifacts could be loaded.
	Ready() error
	// Today is the current calendar date in the pricing timezone.
	Today() time.Time
	ModelType() string
}

type ArtifactLoader interface {
	Load() (*model.Artifacts, error)
}

type PricingService struct {
	loader   ArtifactLoader
	cache    cache.QuoteCache
	cacheTTL time.Duration
	location *time.Location
	now      func() time.Time
	newID    func() string
	log      *zap.Logger
}

type PricingServiceOption func(*PricingService)

func WithCache(c cache.QuoteCache, ttl time.Duration) PricingServiceOption {
	return func(s *PricingService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithLocation(loc *time.Location) PricingServiceOption {
	return func(s *PricingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithClock(now func() time.Time) PricingServiceOption {
	return func(s *PricingService) {
		s.now = now
	}
}

func WithLogger(log *zap.Logger) PricingServiceOption {
	return func(s *PricingService) {
		s.log = log
	}
}

func NewPricingService(loader ArtifactLoader, opts ...PricingServiceOption) *PricingService {
	service := &PricingService{
		loader:   loader,
		location: time.Local,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *PricingService) Quote(ctx context.Context, req domain.BookingRequest) (*domain.Quote, error) {
	now := s.now().In(s.location)
	if err := req.Validate(now); err != nil {
		return nil, err
	}

	key := cacheKey(req, now)
	if s.cache != nil {
		cached, err := s.cache.GetQuote(ctx, key)
		if err != nil {
			s.log.Warn("quote cache read failed", zap.String("key", key), zap.Error(err))
		} else if cached != nil {
			s.log.Debug("quote served from cache", zap.String("quote_id", cached.ID))
			return cached, nil
		}
	}

	artifacts, err := s.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load model artifacts: %w", err)
	}

	row, err := features.Encode(req, now, artifacts.Schema)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	price, err := artifacts.Model.Predict(row.Values)
	if err != nil {
		return nil, fmt.Errorf("predict price: %w", err)
	}

	quote := &domain.Quote{
		ID:            s.newID(),
		Request:       req,
		PriceINR:      price,
		PriceIDR:      currency.ToIDR(price),
		DaysLeft:      row.Derived.DaysLeft,
		Seasonality:   row.Derived.Seasonality,
		BookingWindow: string(row.Derived.BookingWindow),
		Route:         row.Derived.Route,
		ModelType:     artifacts.Model.Kind(),
		QuotedOn:      domain.DateOf(now),
		ExpiresAt:     s.expiry(now),
	}

	s.log.Info("quote computed",
		zap.String("quote_id", quote.ID),
		zap.String("route", quote.Route),
		zap.String("airline", string(req.Airline)),
		zap.Int("days_left", quote.DaysLeft),
		zap.Int("seasonality_score", quote.Seasonality),
		zap.Float64("price_inr", quote.PriceINR),
	)

	if s.cache != nil {
		if err := s.cache.SetQuote(ctx, key, quote, quote.ExpiresAt.Sub(now)); err != nil {
			s.log.Warn("quote cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return quote, nil
}

func (s *PricingService) Ready() error {
	_, err := s.loader.Load()
	return err
}

func (s *PricingService) Today() time.Time {
	return domain.DateOf(s.now().In(s.location))
}

func (s *PricingService) ModelType() string {
	artifacts, err := s.loader.Load()
	if err != nil {
		return ""
	}
	return artifacts.Model.Kind()
}

// expiry caps the cache TTL at the next local midnight, when days-left changes.
func (s *PricingService) expiry(now time.Time) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	if s.cacheTTL > 0 {
		if until := now.Add(s.cacheTTL); until.Before(midnight) {
			return until
		}
	}
	return midnight
}

func cacheKey(req domain.BookingRequest, now time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d|%s",
		domain.DateOf(now).Format(time.DateOnly),
		req.Airline,
		req.Origin,
		req.Destination,
		req.Class,
		req.Stops,
		domain.DateOf(req.DepartureDate).Format(time.DateOnly),
	)
}

var _ PricingUseCase = (*PricingService)(nil)
