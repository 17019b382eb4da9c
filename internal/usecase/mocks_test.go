package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/trees-microservice/internal/domain"
)

// MockTreeRepository is a mock of TreeRepository
type MockTreeRepository struct {
	mock.Mock
}

func (m *MockTreeRepository) GetByID(ctx context.Context, id int64) (*domain.Tree, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *MockTreeRepository) List(ctx context.Context, filter domain.TreeFilter) ([]*domain.TreeSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TreeSummary), args.Error(1)
}

func (m *MockTreeRepository) Count(ctx context.Context, filter domain.TreeFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTreeRepository) Search(ctx context.Context, q domain.SpatialQuery) ([]*domain.TreeSummary, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TreeSummary), args.Error(1)
}

func (m *MockTreeRepository) Species(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTreeRepository) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }

func sampleTrees() []*domain.TreeSummary {
	return []*domain.TreeSummary{
		{ID: 1001, GenusName: ptrString("ACER"), SpeciesName: ptrString("RUBRUM"), CommonName: ptrString("RED MAPLE"), Longitude: -123.1005, Latitude: 49.2605},
		{ID: 1002, GenusName: ptrString("ACER"), SpeciesName: ptrString("PLATANOIDES"), CommonName: nil, Longitude: -123.1, Latitude: 49.261},
	}
}
