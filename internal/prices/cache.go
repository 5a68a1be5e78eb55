package prices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"samko/internal/model"

	"go.uber.org/zap"
)

const fallbackMessage = "Using fallback data due to API unavailability"

// Cache reuses the last computed quotes for window and never fails its caller.
//
// Concurrent refreshes may both recompute; the last Store wins, which is fine
// because quoting has no side effects.
type Cache struct {
	quoter  Quoter
	backend Backend
	window  time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithQuoter replaces the Simulator.
func WithQuoter(q Quoter) Option {
	return func(c *Cache) { c.quoter = q }
}

// WithBackend sets where the last snapshot is kept.
func WithBackend(b Backend) Option {
	return func(c *Cache) { c.backend = b }
}

// WithWindow sets how long a snapshot is served from cache.
func WithWindow(d time.Duration) Option {
	return func(c *Cache) { c.window = d }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger sets the logger for refresh failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// NewCache defaults to the Simulator, an in-process backend and DefaultWindow.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		quoter:  NewSimulator(),
		backend: NewMemoryBackend(),
		window:  DefaultWindow,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns cached quotes while they are younger than the window, fresh
// quotes otherwise, and the baseline table if computing them failed.
func (c *Cache) Get(ctx context.Context) Result {
	now := c.now()

	snap, err := c.backend.Load(ctx)
	if err != nil {
		c.logger.Warn("Price cache read failed", zap.Error(err))
	}
	if snap != nil && now.Sub(snap.FetchedAt) < c.window {
		return Result{Prices: snap.Prices, Source: SourceCache, LastUpdated: snap.FetchedAt}
	}

	quotes, err := c.compute(ctx, now)
	if err != nil {
		c.logger.Error("Price computation failed, serving fallback", zap.Error(err))
		return Result{
			Prices:      Baseline(now),
			Source:      SourceFallback,
			LastUpdated: now,
			Err:         fmt.Sprintf("%s: %v", fallbackMessage, err),
		}
	}

	if err := c.backend.Store(ctx, Snapshot{Prices: quotes, FetchedAt: now}); err != nil {
		c.logger.Warn("Price cache write failed", zap.Error(err))
	}
	return Result{Prices: quotes, Source: SourceAPI, LastUpdated: now}
}

func (c *Cache) compute(ctx context.Context, now time.Time) (quotes []model.OilPrice, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("quoter panicked: %v", r)
		}
	}()

	quotes, err = c.quoter.Quote(ctx, Baseline(now), now)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, errors.New("quoter returned no prices")
	}
	return quotes, nil
}
