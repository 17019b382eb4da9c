package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain/repository"
)

// memoryEntry wraps the cached payload with its expiration time
type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memoryRepository - in-process LRU store for single-instance deployments and tests.
// Expired entries are dropped lazily on read, there is no sweep.
type memoryRepository struct {
	lru    *lru.Cache[string, memoryEntry]
	logger *zap.Logger
	now    func() time.Time
}

func NewMemoryRepository(size int, logger *zap.Logger) (repository.CacheRepository, error) {
	return newMemoryRepository(size, logger, time.Now)
}

func newMemoryRepository(size int, logger *zap.Logger, now func() time.Time) (*memoryRepository, error) {
	c, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}
	return &memoryRepository{lru: c, logger: logger, now: now}, nil
}

func (r *memoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := r.lru.Get(key)
	if !ok {
		return nil, nil
	}
	if !r.now().Before(entry.expiresAt) {
		r.lru.Remove(key)
		return nil, nil
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return entry.data, nil
}

func (r *memoryRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	buf := make([]byte, len(value))
	copy(buf, value)

	r.lru.Add(key, memoryEntry{
		data:      buf,
		expiresAt: r.now().Add(ttl),
	})
	return nil
}

func (r *memoryRepository) Ping(context.Context) error {
	return nil
}
