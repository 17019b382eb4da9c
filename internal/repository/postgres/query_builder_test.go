package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trees-microservice/internal/domain"
)

func TestBuildSpatialQuery_BBox(t *testing.T) {
	q := domain.NewBBoxQuery(domain.BoundingBox{MinLon: -123.1, MinLat: 49.2, MaxLon: -123.0, MaxLat: 49.3}, 50)

	sql, args, err := buildSpatialQuery(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "geom && ST_MakeEnvelope($1, $2, $3, $4, 4326)")
	assert.Contains(t, sql, "ORDER BY tree_id")
	assert.Equal(t, []interface{}{-123.1, 49.2, -123.0, 49.3, 50}, args)
}

func TestBuildSpatialQuery_RadiusUsesGeography(t *testing.T) {
	q := domain.NewRadiusQuery(domain.Point{Lat: 49.25, Lon: -123.05}, 250, 20)

	sql, args, err := buildSpatialQuery(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "ST_DWithin(geom::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)")
	assert.Equal(t, []interface{}{-123.05, 49.25, 250.0, 20}, args)
}

func TestBuildSpatialQuery_NearestOrdersByDistanceThenID(t *testing.T) {
	q := domain.NewNearestQuery(domain.Point{Lat: 49.25, Lon: -123.05}, 10)

	sql, args, err := buildSpatialQuery(q)
	require.NoError(t, err)

	assert.Contains(t, sql, "ORDER BY geom::geography <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, tree_id")
	assert.NotContains(t, sql, "WHERE")
	assert.Equal(t, []interface{}{-123.05, 49.25, 10}, args)
}

func TestBuildSpatialQuery_RejectsIncompleteQuery(t *testing.T) {
	_, _, err := buildSpatialQuery(domain.SpatialQuery{Mode: domain.SearchModeBBox})
	assert.Error(t, err)

	_, _, err = buildSpatialQuery(domain.SpatialQuery{Mode: "polygon"})
	assert.Error(t, err)
}

func TestBuildFilterClause(t *testing.T) {
	where, args := buildFilterClause(domain.TreeFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	species := "RUBRUM"
	minH, maxH := 2, 5
	before := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)

	where, args = buildFilterClause(domain.TreeFilter{
		Species:       &species,
		MinHeight:     &minH,
		MaxHeight:     &maxH,
		PlantedBefore: &before,
	})

	assert.Equal(t,
		"WHERE species_name = $1 AND height_range_id >= $2 AND height_range_id <= $3 AND date_planted <= $4",
		where)
	assert.Equal(t, []interface{}{"RUBRUM", 2, 5, before}, args)
}
