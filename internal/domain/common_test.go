package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox_Contains(t *testing.T) {
	box := BoundingBox{MinLon: -123.1, MinLat: 49.2, MaxLon: -123.0, MaxLat: 49.3}

	assert.True(t, box.Contains(Point{Lat: 49.25, Lon: -123.05}))
	assert.True(t, box.Contains(Point{Lat: 49.2, Lon: -123.1}))
	assert.False(t, box.Contains(Point{Lat: 49.31, Lon: -123.05}))
	assert.False(t, box.Contains(Point{Lat: 49.25, Lon: -122.99}))
}

func TestNewNearestQuery_UsesCountAsLimit(t *testing.T) {
	q := NewNearestQuery(Point{Lat: 49.25, Lon: -123.05}, 7)

	assert.Equal(t, SearchModeNearest, q.Mode)
	assert.Equal(t, 7, q.Limit)
	assert.Nil(t, q.BBox)
	assert.Nil(t, q.Radius)
}
