package prices

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"samko/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is advanced by hand
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type failingQuoter struct{ calls int }

func (q *failingQuoter) Quote(ctx context.Context, base []model.OilPrice, now time.Time) ([]model.OilPrice, error) {
	q.calls++
	return nil, errors.New("upstream unavailable")
}

type panickingQuoter struct{}

func (panickingQuoter) Quote(ctx context.Context, base []model.OilPrice, now time.Time) ([]model.OilPrice, error) {
	panic("boom")
}

// countingQuoter wraps the simulator with a jitter that changes every call
type countingQuoter struct {
	calls int
	sim   *Simulator
}

func newCountingQuoter() *countingQuoter {
	q := &countingQuoter{}
	q.sim = &Simulator{rand: func() float64 { return float64(q.calls%10) / 10 }}
	return q
}

func (q *countingQuoter) Quote(ctx context.Context, base []model.OilPrice, now time.Time) ([]model.OilPrice, error) {
	q.calls++
	return q.sim.Quote(ctx, base, now)
}

func priceValues(ps []model.OilPrice) []float64 {
	out := make([]float64, 0, len(ps)*3)
	for _, p := range ps {
		out = append(out, p.Price, p.Change, p.ChangePercent)
	}
	return out
}

func TestCache_ServesFromCacheWithinWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)}
	q := newCountingQuoter()
	c := NewCache(WithQuoter(q), WithClock(clock.Now))
	ctx := context.Background()

	first := c.Get(ctx)
	assert.Equal(t, SourceAPI, first.Source)
	assert.Empty(t, first.Err)
	require.Len(t, first.Prices, 5)

	clock.Advance(4*time.Minute + 59*time.Second)
	second := c.Get(ctx)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, priceValues(first.Prices), priceValues(second.Prices))
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
	assert.Equal(t, 1, q.calls)

	clock.Advance(time.Second)
	third := c.Get(ctx)
	assert.Equal(t, SourceAPI, third.Source)
	assert.Equal(t, 2, q.calls)
	assert.Equal(t, clock.Now(), third.LastUpdated)
}

func TestCache_FallbackOnFailure(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)}
	q := &failingQuoter{}
	c := NewCache(WithQuoter(q), WithClock(clock.Now))

	res := c.Get(context.Background())
	assert.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.Err, "upstream unavailable")
	assert.Equal(t, Baseline(clock.Now()), res.Prices)

	// Failures are not cached; the next call tries again
	res = c.Get(context.Background())
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, 2, q.calls)
}

func TestCache_RecoversFromPanic(t *testing.T) {
	c := NewCache(WithQuoter(panickingQuoter{}))

	res := c.Get(context.Background())
	assert.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.Err, "boom")
	assert.Len(t, res.Prices, 5)
}

func TestCache_CancelledContextFallsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewCache().Get(ctx)
	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Err)
}

func TestCache_RedisBackend(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	clock := &fakeClock{t: time.Now()}
	q := newCountingQuoter()
	c := NewCache(WithQuoter(q), WithClock(clock.Now), WithBackend(NewRedisBackend(rdb, DefaultWindow)))
	ctx := context.Background()

	first := c.Get(ctx)
	require.Equal(t, SourceAPI, first.Source)
	assert.True(t, mr.Exists(redisKey))
	assert.Equal(t, DefaultWindow, mr.TTL(redisKey))

	// A second cache on the same Redis sees the snapshot
	other := NewCache(WithQuoter(&failingQuoter{}), WithClock(clock.Now), WithBackend(NewRedisBackend(rdb, DefaultWindow)))
	shared := other.Get(ctx)
	assert.Equal(t, SourceCache, shared.Source)
	assert.Equal(t, priceValues(first.Prices), priceValues(shared.Prices))

	// Expire the key in Redis
	mr.FastForward(DefaultWindow)
	clock.Advance(DefaultWindow)
	assert.False(t, mr.Exists(redisKey))

	fresh := c.Get(ctx)
	assert.Equal(t, SourceAPI, fresh.Source)
	assert.Equal(t, 2, q.calls)
}

func TestCache_RedisDownStillServesQuotes(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	c := NewCache(WithBackend(NewRedisBackend(rdb, DefaultWindow)))
	res := c.Get(context.Background())
	assert.Equal(t, SourceAPI, res.Source)
	assert.Len(t, res.Prices, 5)
}

func TestSimulator_StaysWithinBounds(t *testing.T) {
	ctx := context.Background()
	for _, r := range []float64{0, 0.5, 0.999} {
		sim := &Simulator{rand: func() float64 { return r }}
		for minute := 0; minute < 24*60; minute += 7 {
			now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(minute) * time.Minute)
			base := Baseline(now)

			quotes, err := sim.Quote(ctx, base, now)
			require.NoError(t, err)
			require.Len(t, quotes, len(base))

			for i, q := range quotes {
				limit := base[i].Price*MaxVariation + 0.005
				assert.LessOrEqual(t, math.Abs(q.Price-base[i].Price), limit, "%s at minute %d", q.Code, minute)
				assert.Equal(t, base[i].Code, q.Code)
				assert.Equal(t, now, q.LastUpdated)
			}
		}
	}
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "+0.85", FormatChange(0.85))
	assert.Equal(t, "-0.05", FormatChange(-0.05))
	assert.Equal(t, "+0.00", FormatChange(0))
	assert.Equal(t, "-1.72%", FormatPercentChange(-1.72))
	assert.Equal(t, "up", Trend(0.1))
	assert.Equal(t, "down", Trend(-0.1))
	assert.Equal(t, "neutral", Trend(0))
}
