package prices

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"samko/internal/model"

	"github.com/redis/go-redis/v9"
)

// Snapshot is one computed set of quotes and when it was computed.
type Snapshot struct {
	Prices    []model.OilPrice `json:"prices"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// Backend holds the most recent Snapshot. Load returns nil, nil when empty.
type Backend interface {
	Load(ctx context.Context) (*Snapshot, error)
	Store(ctx context.Context, snap Snapshot) error
}

type memoryBackend struct {
	mu   sync.Mutex
	snap *Snapshot
}

// NewMemoryBackend keeps the snapshot in process.
func NewMemoryBackend() Backend {
	return &memoryBackend{}
}

func (b *memoryBackend) Load(ctx context.Context) (*Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.snap == nil {
		return nil, nil
	}
	out := Snapshot{Prices: append([]model.OilPrice{}, b.snap.Prices...), FetchedAt: b.snap.FetchedAt}
	return &out, nil
}

func (b *memoryBackend) Store(ctx context.Context, snap Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	snap.Prices = append([]model.OilPrice{}, snap.Prices...)
	b.snap = &snap
	return nil
}

// RedisBackend shares the snapshot between processes. Keys expire after ttl.
type RedisBackend struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

const redisKey = "prices:latest"

func NewRedisBackend(rdb *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{rdb: rdb, key: redisKey, ttl: ttl}
}

func (b *RedisBackend) Load(ctx context.Context) (*Snapshot, error) {
	val, err := b.rdb.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (b *RedisBackend) Store(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return b.rdb.Set(ctx, b.key, data, b.ttl).Err()
}
