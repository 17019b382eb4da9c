package testhelpers

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/lib/pq"
)

var (
	//go:embed testdata/schema.sql
	schemaSQL string

	//go:embed testdata/trees.sql
	treesSQL string
)

// FixtureTreeCount - количество деревьев в testdata/trees.sql
const FixtureTreeCount = 8

// ApplySchema creates the trees table and its spatial indexes
func ApplySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// LoadTreeFixtures loads the fixture trees into the database
func LoadTreeFixtures(db *sql.DB) error {
	if _, err := db.Exec(treesSQL); err != nil {
		return fmt.Errorf("load tree fixtures: %w", err)
	}
	return nil
}

// GeodesicDistances returns the spheroidal distance in meters from (lon, lat)
// to each of the given trees, as PostGIS computes it
func GeodesicDistances(db *sql.DB, lon, lat float64, ids []int64) (map[int64]float64, error) {
	rows, err := db.QueryContext(context.Background(), `
		SELECT tree_id,
		       ST_Distance(geom::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)
		FROM trees
		WHERE tree_id = ANY($3)
	`, lon, lat, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query distances: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]float64, len(ids))
	for rows.Next() {
		var (
			id   int64
			dist float64
		)
		if err := rows.Scan(&id, &dist); err != nil {
			return nil, fmt.Errorf("scan distance: %w", err)
		}
		out[id] = dist
	}
	return out, rows.Err()
}
