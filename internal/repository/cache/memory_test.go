package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryRepository_ExpiresLazily(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo, err := newMemoryRepository(8, zap.NewNop(), func() time.Time { return now })
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))

	val, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	now = now.Add(time.Minute)
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)
	assert.Equal(t, 0, repo.lru.Len())
}

func TestMemoryRepository_EvictsLeastRecentlyUsed(t *testing.T) {
	repo, err := NewMemoryRepository(1, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1"), time.Hour))
	require.NoError(t, repo.Set(ctx, "b", []byte("2"), time.Hour))

	val, _ := repo.Get(ctx, "a")
	assert.Nil(t, val)
	val, _ = repo.Get(ctx, "b")
	assert.Equal(t, []byte("2"), val)
	assert.NoError(t, repo.Ping(ctx))
}

func TestMemoryRepository_CopiesValue(t *testing.T) {
	repo, err := NewMemoryRepository(4, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, repo.Set(ctx, "k", buf, time.Hour))
	buf[0] = 'z'

	val, _ := repo.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), val)
}

func TestNewMemoryRepository_RejectsZeroSize(t *testing.T) {
	_, err := NewMemoryRepository(0, zap.NewNop())
	assert.Error(t, err)
}
