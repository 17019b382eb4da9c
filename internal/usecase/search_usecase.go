package usecase

import (
	"context"
	stderrors "errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain"
	"github.com/trees-microservice/internal/domain/repository"
	"github.com/trees-microservice/internal/pkg/cachekey"
	"github.com/trees-microservice/internal/pkg/errors"
	"github.com/trees-microservice/internal/pkg/utils"
	"github.com/trees-microservice/internal/pkg/validator"
	"github.com/trees-microservice/internal/usecase/dto"
)

// SearchUseCase - пространственный поиск деревьев (bbox, радиус, ближайшие)
type SearchUseCase struct {
	treeRepo repository.TreeRepository
	cache    *ReadThrough
	logger   *zap.Logger
	searchOp cachekey.Operation
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	treeRepo repository.TreeRepository,
	cache *ReadThrough,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		treeRepo: treeRepo,
		cache:    cache,
		logger:   logger,
		searchOp: cachekey.Operation{Name: OpSearchTrees, TTL: cacheTTL},
	}
}

// Search - выбирает режим поиска, валидирует параметры и выполняет запрос через кэш
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchTreesRequest) (*dto.SearchTreesResponse, error) {
	query, err := BuildSpatialQuery(req)
	if err != nil {
		return nil, err
	}

	return cached(ctx, uc.cache, uc.searchOp, nil, req.CacheKwargs(),
		func(ctx context.Context) (*dto.SearchTreesResponse, error) {
			trees, err := uc.treeRepo.Search(ctx, query)
			if err != nil {
				return nil, err
			}

			data := make([]dto.TreeSummaryResponse, 0, len(trees))
			for _, t := range trees {
				data = append(data, dto.ConvertTreeSummary(t))
			}

			uc.logger.Debug("Spatial search executed",
				zap.String("mode", string(query.Mode)),
				zap.Int("results", len(data)))

			return &dto.SearchTreesResponse{Data: data}, nil
		})
}

// BuildSpatialQuery переводит параметры запроса в один режим поиска.
// Приоритет: nearest, затем coordinates+radius, затем bbox. Параметры двух режимов - ошибка.
func BuildSpatialQuery(req dto.SearchTreesRequest) (domain.SpatialQuery, error) {
	if err := validator.Validate(req); err != nil {
		return domain.SpatialQuery{}, err
	}

	switch {
	case req.Nearest != "":
		if req.BBox != "" || req.Coordinates != "" || req.Radius != nil {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgNearestCombined)
		}
		center, err := parseLatLon(req.Nearest)
		if err != nil {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgInvalidNearest)
		}
		if !utils.ValidateCoordinates(center.Lat, center.Lon) {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgCoordinatesRange)
		}

		count := dto.DefaultNearestCount
		if req.Count != nil {
			count = *req.Count
		}
		return domain.NewNearestQuery(center, count), nil

	case req.Coordinates != "" && req.Radius != nil:
		if req.BBox != "" {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgBBoxWithRadius)
		}
		center, err := parseLatLon(req.Coordinates)
		if err != nil {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgInvalidCoordinates)
		}
		radius := *req.Radius
		if math.IsNaN(radius) || math.IsInf(radius, 0) {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgRadiusNotNumeric)
		}
		if radius <= 0 {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgRadiusNotPositive)
		}
		if !utils.ValidateCoordinates(center.Lat, center.Lon) {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgCoordinatesRange)
		}
		return domain.NewRadiusQuery(center, radius, req.EffectiveLimit()), nil

	case req.BBox != "":
		if req.Coordinates != "" || req.Radius != nil {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgBBoxCombined)
		}
		values, err := utils.ParseFloats(req.BBox, 4)
		if stderrors.Is(err, utils.ErrWrongCount) {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgBBoxValueCount)
		}
		if err != nil {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgBBoxNotNumeric)
		}

		box := domain.BoundingBox{MinLon: values[0], MinLat: values[1], MaxLon: values[2], MaxLat: values[3]}
		if !utils.ValidateCoordinates(box.MinLat, box.MinLon) || !utils.ValidateCoordinates(box.MaxLat, box.MaxLon) {
			return domain.SpatialQuery{}, errors.Validation(errors.MsgCoordinatesRange)
		}
		return domain.NewBBoxQuery(box, req.EffectiveLimit()), nil
	}

	return domain.SpatialQuery{}, errors.Validation(errors.MsgNoSearchMode)
}

// parseLatLon разбирает "lat,lon"
func parseLatLon(s string) (domain.Point, error) {
	values, err := utils.ParseFloats(s, 2)
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Point{Lat: values[0], Lon: values[1]}, nil
}
