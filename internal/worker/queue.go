package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const importQueueKey = "queue:import"

// ErrQueueFull is returned by MemoryQueue when its buffer is exhausted.
var ErrQueueFull = errors.New("import queue is full")

// ImportJob asks the worker to turn an external article into a draft post.
type ImportJob struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Category   string    `json:"category,omitempty"`
	Author     string    `json:"author,omitempty"`
	AuthorRole string    `json:"authorRole,omitempty"`
}

// NewImportJob creates a job with a fresh id.
func NewImportJob(rawURL string) ImportJob {
	return ImportJob{ID: uuid.New(), URL: rawURL}
}

// Queue carries import jobs from the API (or CLI) to the worker.
type Queue interface {
	Push(ctx context.Context, job ImportJob) error
	// Pop blocks until a job arrives or ctx is done.
	Pop(ctx context.Context) (ImportJob, error)
}

// RedisQueue lets `samko import` hand jobs to a running server.
type RedisQueue struct {
	rdb *redis.Client
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb}
}

func (q *RedisQueue) Push(ctx context.Context, job ImportJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, importQueueKey, data).Err()
}

func (q *RedisQueue) Pop(ctx context.Context) (ImportJob, error) {
	// 0 means wait forever until an item arrives
	result, err := q.rdb.BRPop(ctx, 0, importQueueKey).Result()
	if err != nil {
		return ImportJob{}, err
	}

	var job ImportJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return ImportJob{}, fmt.Errorf("decode import job: %w", err)
	}
	return job, nil
}

// MemoryQueue is used when no Redis is configured. Jobs die with the process.
type MemoryQueue struct {
	jobs chan ImportJob
}

func NewMemoryQueue(size int) *MemoryQueue {
	return &MemoryQueue{jobs: make(chan ImportJob, size)}
}

func (q *MemoryQueue) Push(ctx context.Context, job ImportJob) error {
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *MemoryQueue) Pop(ctx context.Context) (ImportJob, error) {
	select {
	case job := <-q.jobs:
		return job, nil
	case <-ctx.Done():
		return ImportJob{}, ctx.Err()
	}
}
