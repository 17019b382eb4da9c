package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain/repository"
	"github.com/trees-microservice/internal/pkg/errors"
)

// HealthUseCase - проверки доступности хранилища и кэша
type HealthUseCase struct {
	treeRepo  repository.TreeRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func NewHealthUseCase(
	treeRepo repository.TreeRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *HealthUseCase {
	return &HealthUseCase{
		treeRepo:  treeRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

func (uc *HealthUseCase) CheckDatabase(ctx context.Context) error {
	if err := uc.treeRepo.Health(ctx); err != nil {
		return errors.ErrStoreUnavailable
	}
	return nil
}

func (uc *HealthUseCase) CheckCache(ctx context.Context) error {
	if err := uc.cacheRepo.Ping(ctx); err != nil {
		uc.logger.Warn("Cache health check failed", zap.Error(err))
		return errors.ErrCacheUnavailable
	}
	return nil
}
