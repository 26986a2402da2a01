package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/farecast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuoteCache struct {
	mock.Mock
}

func (m *MockQuoteCache) GetQuote(ctx context.Context, key string) (*domain.Quote, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteCache) SetQuote(ctx context.Context, key string, quote *domain.Quote, ttl time.Duration) error {
	args := m.Called(ctx, key, quote, ttl)
	return args.Error(0)
}

func TestTiered_BackfillsUpperLevel(t *testing.T) {
	ctx := context.Background()
	l1, err := NewMemoryCache(4)
	require.NoError(t, err)
	l2 := &MockQuoteCache{}

	quote := &domain.Quote{ID: "q", ExpiresAt: time.Now().Add(time.Hour)}
	l2.On("GetQuote", ctx, "k").Return(quote, nil).Once()

	tiered := NewTiered(l1, l2)
	got, err := tiered.GetQuote(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, quote, got)

	cached, _ := l1.GetQuote(ctx, "k")
	require.NotNil(t, cached)
	assert.Equal(t, "q", cached.ID)

	// second read is served by l1 alone
	_, err = tiered.GetQuote(ctx, "k")
	require.NoError(t, err)
	l2.AssertExpectations(t)
}

func TestTiered_SkipsFailingLevel(t *testing.T) {
	ctx := context.Background()
	broken := &MockQuoteCache{}
	healthy := &MockQuoteCache{}

	quote := &domain.Quote{ID: "q", ExpiresAt: time.Now().Add(time.Hour)}
	broken.On("GetQuote", ctx, "k").Return(nil, errors.New("connection refused"))
	healthy.On("GetQuote", ctx, "k").Return(quote, nil)
	broken.On("SetQuote", ctx, "k", quote, mock.AnythingOfType("time.Duration")).Return(errors.New("connection refused"))

	got, err := NewTiered(broken, healthy).GetQuote(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, quote, got)
}

func TestTiered_MissReportsLastError(t *testing.T) {
	ctx := context.Background()
	broken := &MockQuoteCache{}
	broken.On("GetQuote", ctx, "k").Return(nil, errors.New("timeout"))

	got, err := NewTiered(nil, broken).GetQuote(ctx, "k")
	assert.Nil(t, got)
	assert.EqualError(t, err, "timeout")
}

func TestTiered_SetWritesAllLevels(t *testing.T) {
	ctx := context.Background()
	a := &MockQuoteCache{}
	b := &MockQuoteCache{}
	quote := &domain.Quote{ID: "q"}
	a.On("SetQuote", ctx, "k", quote, time.Minute).Return(nil).Once()
	b.On("SetQuote", ctx, "k", quote, time.Minute).Return(errors.New("down")).Once()

	err := NewTiered(a, b).SetQuote(ctx, "k", quote, time.Minute)
	assert.EqualError(t, err, "down")
	a.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestTiered_BackfillTTLFollowsClock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.October, 15, 20, 0, 0, 0, time.UTC)
	upper := &MockQuoteCache{}
	lower := &MockQuoteCache{}

	quote := &domain.Quote{ID: "q", ExpiresAt: now.Add(4 * time.Hour)}
	upper.On("GetQuote", ctx, "k").Return(nil, nil).Once()
	lower.On("GetQuote", ctx, "k").Return(quote, nil).Once()
	upper.On("SetQuote", ctx, "k", quote, 4*time.Hour).Return(nil).Once()

	tiered := NewTiered(upper, lower).WithClock(func() time.Time { return now })
	got, err := tiered.GetQuote(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, quote, got)
	upper.AssertExpectations(t)
	lower.AssertExpectations(t)
}

func TestTiered_SkipsBackfillOfExpiredQuote(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.October, 16, 0, 0, 1, 0, time.UTC)
	upper := &MockQuoteCache{}
	lower := &MockQuoteCache{}

	quote := &domain.Quote{ID: "q", ExpiresAt: now.Add(-time.Second)}
	upper.On("GetQuote", ctx, "k").Return(nil, nil).Once()
	lower.On("GetQuote", ctx, "k").Return(quote, nil).Once()

	_, err := NewTiered(upper, lower).WithClock(func() time.Time { return now }).GetQuote(ctx, "k")
	require.NoError(t, err)
	upper.AssertNotCalled(t, "SetQuote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
