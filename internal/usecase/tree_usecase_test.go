package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain"
	apperrors "github.com/trees-microservice/internal/pkg/errors"
	"github.com/trees-microservice/internal/usecase"
	"github.com/trees-microservice/internal/usecase/dto"
)

func TestTreeUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("full record with planted date", func(t *testing.T) {
		repo := &MockTreeRepository{}
		uc := usecase.NewTreeUseCase(repo, nil, zap.NewNop(), time.Minute, time.Hour)

		planted := time.Date(1999, 3, 14, 0, 0, 0, 0, time.UTC)
		repo.On("GetByID", mock.Anything, int64(1001)).Return(&domain.Tree{
			ID:          1001,
			GenusName:   ptrString("ACER"),
			Diameter:    ptrFloat64(12.5),
			DatePlanted: &planted,
			Longitude:   -123.1005,
			Latitude:    49.2605,
		}, nil)

		resp, err := uc.GetByID(ctx, 1001)
		require.NoError(t, err)

		require.NotNil(t, resp.DatePlanted)
		assert.Equal(t, "1999-03-14", *resp.DatePlanted)

		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"geometry":{"type":"Point","coordinates":[-123.1005,49.2605]}`)
		assert.Contains(t, string(raw), `"cultivar_name":null`)
	})

	t.Run("missing planted date serializes as null", func(t *testing.T) {
		repo := &MockTreeRepository{}
		uc := usecase.NewTreeUseCase(repo, nil, zap.NewNop(), time.Minute, time.Hour)

		repo.On("GetByID", mock.Anything, int64(1002)).Return(&domain.Tree{ID: 1002}, nil)

		resp, err := uc.GetByID(ctx, 1002)
		require.NoError(t, err)

		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"date_planted":null`)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &MockTreeRepository{}
		uc := usecase.NewTreeUseCase(repo, nil, zap.NewNop(), time.Minute, time.Hour)

		repo.On("GetByID", mock.Anything, int64(999999999)).Return(nil, apperrors.ErrTreeNotFound)

		resp, err := uc.GetByID(ctx, 999999999)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrTreeNotFound)
	})
}

func TestTreeUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and metadata", func(t *testing.T) {
		repo := &MockTreeRepository{}
		uc := usecase.NewTreeUseCase(repo, nil, zap.NewNop(), time.Minute, time.Hour)

		expected := domain.TreeFilter{Limit: 50}
		repo.On("Count", mock.Anything, expected).Return(int64(8), nil)
		repo.On("List", mock.Anything, expected).Return(sampleTrees(), nil)

		resp, err := uc.List(ctx, dto.ListTreesRequest{})
		require.NoError(t, err)

		assert.Equal(t, dto.ListMetadata{Limit: 50, Offset: 0, Total: 8}, resp.Metadata)
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, int64(1001), resp.Data[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("filters are converted", func(t *testing.T) {
		repo := &MockTreeRepository{}
		uc := usecase.NewTreeUseCase(repo, nil, zap.NewNop(), time.Minute, time.Hour)

		matches := mock.MatchedBy(func(f domain.TreeFilter) bool {
			return f.Genus != nil && *f.Genus == "ACER" &&
				f.Species == nil &&
				f.MinHeight != nil && *f.MinHeight == 2 &&
				f.PlantedAfter != nil && f.PlantedAfter.Equal(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) &&
				f.PlantedBefore == nil &&
				f.Limit == 10 && f.Offset == 20
		})
		repo.On("Count", mock.Anything, matches).Return(int64(30), nil)
		repo.On("List", mock.Anything, matches).Return([]*domain.TreeSummary{}, nil)

		resp, err := uc.List(ctx, dto.ListTreesRequest{
			Genus:        "ACER",
			MinHeight:    ptrInt(2),
			PlantedAfter: "2000-01-01",
			Limit:        ptrInt(10),
			Offset:       ptrInt(20),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(30), resp.Metadata.Total)
		assert.NotNil(t, resp.Data)
		repo.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		repo := &MockTreeRepository{}
		uc := usecase.NewTreeUseCase(repo, nil, zap.NewNop(), time.Minute, time.Hour)

		cases := map[string]struct {
			req  dto.ListTreesRequest
			want string
		}{
			"limit above ceiling": {dto.ListTreesRequest{Limit: ptrInt(101)}, "limit must be at most 100"},
			"negative offset":     {dto.ListTreesRequest{Offset: ptrInt(-1)}, "offset must be at least 0"},
			"bad date":            {dto.ListTreesRequest{PlantedBefore: "14/03/1999"}, "planted_before must be a date in YYYY-MM-DD format"},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := uc.List(ctx, tc.req)
				appErr, ok := apperrors.As(err)
				require.True(t, ok)
				assert.Equal(t, tc.want, appErr.Message)
			})
		}

		repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})

	t.Run("store error", func(t *testing.T) {
		repo := &MockTreeRepository{}
		uc := usecase.NewTreeUseCase(repo, nil, zap.NewNop(), time.Minute, time.Hour)

		repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), apperrors.ErrStoreUnavailable)

		_, err := uc.List(ctx, dto.ListTreesRequest{})
		assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestTreeUseCase_CountAndSpeciesAreCached(t *testing.T) {
	ctx := context.Background()
	repo := &MockTreeRepository{}
	uc := usecase.NewTreeUseCase(repo, newMemoryReadThrough(t), zap.NewNop(), time.Minute, time.Hour)

	repo.On("Count", mock.Anything, domain.TreeFilter{}).Return(int64(8), nil).Once()
	repo.On("Species", mock.Anything).Return([]string{"PLATANOIDES", "RUBRUM"}, nil).Once()

	for i := 0; i < 2; i++ {
		count, err := uc.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(8), count.Count)

		species, err := uc.Species(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"PLATANOIDES", "RUBRUM"}, species.Species)
	}

	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "Count", 1)
	repo.AssertNumberOfCalls(t, "Species", 1)
}

func TestTreeUseCase_CountUsesOwnTTL(t *testing.T) {
	repo := &MockTreeRepository{}
	cacheRepo := &MockCacheRepository{}
	uc := usecase.NewTreeUseCase(repo, usecase.NewReadThrough(cacheRepo, zap.NewNop()), zap.NewNop(), 10*time.Minute, time.Hour)

	cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	cacheRepo.On("Set", mock.Anything, mock.Anything, []byte(`{"count":3}`), 10*time.Minute).Return(nil)
	repo.On("Count", mock.Anything, domain.TreeFilter{}).Return(int64(3), nil)

	_, err := uc.Count(context.Background())
	require.NoError(t, err)
	cacheRepo.AssertExpectations(t)
}

func TestHealthUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		repo := &MockTreeRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewHealthUseCase(repo, cacheRepo, zap.NewNop())

		repo.On("Health", mock.Anything).Return(nil)
		cacheRepo.On("Ping", mock.Anything).Return(nil)

		assert.NoError(t, uc.CheckDatabase(ctx))
		assert.NoError(t, uc.CheckCache(ctx))
	})

	t.Run("unavailable", func(t *testing.T) {
		repo := &MockTreeRepository{}
		cacheRepo := &MockCacheRepository{}
		uc := usecase.NewHealthUseCase(repo, cacheRepo, zap.NewNop())

		repo.On("Health", mock.Anything).Return(apperrors.ErrStoreUnavailable)
		cacheRepo.On("Ping", mock.Anything).Return(assert.AnError)

		assert.ErrorIs(t, uc.CheckDatabase(ctx), apperrors.ErrStoreUnavailable)
		assert.ErrorIs(t, uc.CheckCache(ctx), apperrors.ErrCacheUnavailable)
	})
}
