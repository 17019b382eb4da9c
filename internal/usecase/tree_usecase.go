package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain"
	"github.com/trees-microservice/internal/domain/repository"
	"github.com/trees-microservice/internal/pkg/cachekey"
	"github.com/trees-microservice/internal/pkg/validator"
	"github.com/trees-microservice/internal/usecase/dto"
)

const dateLayout = "2006-01-02"

// TreeUseCase - чтение каталога: карточка, список, количество, виды
type TreeUseCase struct {
	treeRepo  repository.TreeRepository
	cache     *ReadThrough
	logger    *zap.Logger
	countOp   cachekey.Operation
	speciesOp cachekey.Operation
}

func NewTreeUseCase(
	treeRepo repository.TreeRepository,
	cache *ReadThrough,
	logger *zap.Logger,
	countTTL, speciesTTL time.Duration,
) *TreeUseCase {
	return &TreeUseCase{
		treeRepo:  treeRepo,
		cache:     cache,
		logger:    logger,
		countOp:   cachekey.Operation{Name: OpTreesCount, TTL: countTTL},
		speciesOp: cachekey.Operation{Name: OpListSpecies, TTL: speciesTTL},
	}
}

// GetByID - полная запись дерева; не кэшируется
func (uc *TreeUseCase) GetByID(ctx context.Context, id int64) (*dto.TreeResponse, error) {
	tree, err := uc.treeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ConvertTree(tree), nil
}

// List - постраничный список с фильтрами и общим количеством по фильтру
func (uc *TreeUseCase) List(ctx context.Context, req dto.ListTreesRequest) (*dto.ListTreesResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	filter := toTreeFilter(req)

	total, err := uc.treeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	trees, err := uc.treeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.TreeListItem, 0, len(trees))
	for _, t := range trees {
		data = append(data, dto.ConvertTreeListItem(t))
	}

	return &dto.ListTreesResponse{
		Metadata: dto.ListMetadata{
			Limit:  filter.Limit,
			Offset: filter.Offset,
			Total:  total,
		},
		Data: data,
	}, nil
}

// Count - общее количество деревьев
func (uc *TreeUseCase) Count(ctx context.Context) (*dto.CountResponse, error) {
	return cached(ctx, uc.cache, uc.countOp, nil, nil,
		func(ctx context.Context) (*dto.CountResponse, error) {
			total, err := uc.treeRepo.Count(ctx, domain.TreeFilter{})
			if err != nil {
				return nil, err
			}
			return &dto.CountResponse{Count: total}, nil
		})
}

// Species - отсортированный список различных видов
func (uc *TreeUseCase) Species(ctx context.Context) (*dto.SpeciesResponse, error) {
	return cached(ctx, uc.cache, uc.speciesOp, nil, nil,
		func(ctx context.Context) (*dto.SpeciesResponse, error) {
			species, err := uc.treeRepo.Species(ctx)
			if err != nil {
				return nil, err
			}
			return &dto.SpeciesResponse{Species: species}, nil
		})
}

// toTreeFilter - запрос уже прошёл валидацию, даты разбираются без ошибок
func toTreeFilter(req dto.ListTreesRequest) domain.TreeFilter {
	filter := domain.TreeFilter{
		Species:      optional(req.Species),
		Genus:        optional(req.Genus),
		CommonName:   optional(req.CommonName),
		Neighborhood: optional(req.Neighborhood),
		MinHeight:    req.MinHeight,
		MaxHeight:    req.MaxHeight,
		Limit:        dto.DefaultListLimit,
	}
	if req.Limit != nil {
		filter.Limit = *req.Limit
	}
	if req.Offset != nil {
		filter.Offset = *req.Offset
	}
	if t, err := time.Parse(dateLayout, req.PlantedAfter); err == nil {
		filter.PlantedAfter = &t
	}
	if t, err := time.Parse(dateLayout, req.PlantedBefore); err == nil {
		filter.PlantedBefore = &t
	}
	return filter
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
