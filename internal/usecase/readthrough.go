package usecase

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain/repository"
	"github.com/trees-microservice/internal/pkg/cachekey"
	"github.com/trees-microservice/internal/pkg/metrics"
)

// Имена кэшируемых операций
const (
	OpSearchTrees = "search_trees"
	OpListSpecies = "list_species"
	OpTreesCount  = "trees_count"
)

// ReadThrough - кэш с чтением через хранилище.
// Ошибки кэша не ломают запрос: операция выполняется напрямую.
type ReadThrough struct {
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func NewReadThrough(cacheRepo repository.CacheRepository, logger *zap.Logger) *ReadThrough {
	return &ReadThrough{
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// cached возвращает результат op из кэша или вызывает load и сохраняет успешный результат на op.TTL
func cached[T any](
	ctx context.Context,
	rt *ReadThrough,
	op cachekey.Operation,
	args []any,
	kwargs map[string]any,
	load func(context.Context) (T, error),
) (T, error) {
	if rt == nil || rt.cacheRepo == nil {
		return load(ctx)
	}

	key, err := cachekey.Derive(op.Name, args, kwargs)
	if err != nil {
		rt.logger.Warn("Failed to derive cache key", zap.String("operation", op.Name), zap.Error(err))
		metrics.IncCache(op.Name, metrics.OutcomeError)
		return load(ctx)
	}

	data, err := rt.cacheRepo.Get(ctx, key)
	switch {
	case err != nil:
		rt.logger.Warn("Cache get failed, loading directly",
			zap.String("operation", op.Name),
			zap.String("key", key),
			zap.Error(err))
		metrics.IncCache(op.Name, metrics.OutcomeError)
		return load(ctx)

	case data != nil:
		var result T
		if err := json.Unmarshal(data, &result); err != nil {
			rt.logger.Warn("Corrupted cache entry, treating as miss",
				zap.String("operation", op.Name),
				zap.String("key", key),
				zap.Error(err))
			break
		}
		metrics.IncCache(op.Name, metrics.OutcomeHit)
		return result, nil
	}

	metrics.IncCache(op.Name, metrics.OutcomeMiss)

	result, err := load(ctx)
	if err != nil {
		return result, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		rt.logger.Warn("Failed to marshal result for cache", zap.String("operation", op.Name), zap.Error(err))
		return result, nil
	}

	if err := rt.cacheRepo.Set(ctx, key, payload, op.TTL); err != nil {
		rt.logger.Warn("Cache set failed",
			zap.String("operation", op.Name),
			zap.String("key", key),
			zap.Error(err))
	}

	return result, nil
}
