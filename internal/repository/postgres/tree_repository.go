package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trees-microservice/internal/domain"
	"github.com/trees-microservice/internal/domain/repository"
	"github.com/trees-microservice/internal/pkg/errors"
	"github.com/trees-microservice/internal/pkg/metrics"
)

const summaryColumns = `tree_id, genus_name, species_name, common_name,
		ST_X(geom) AS longitude, ST_Y(geom) AS latitude`

// queryPoint - точка запроса в SRID 4326, параметры $1 = lon, $2 = lat
const queryPoint = `ST_SetSRID(ST_MakePoint($1, $2), 4326)`

type treeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTreeRepository(db *DB) repository.TreeRepository {
	return &treeRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *treeRepository) GetByID(ctx context.Context, id int64) (*domain.Tree, error) {
	query := `
		SELECT
			tree_id, civic_number, std_street, genus_name, species_name,
			cultivar_name, common_name, on_street_block, on_street,
			neighbourhood_name, street_side_name, height_range_id,
			height_range, diameter, date_planted,
			ST_X(geom) AS longitude, ST_Y(geom) AS latitude
		FROM trees
		WHERE tree_id = $1
	`

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var tree domain.Tree
	start := time.Now()
	err := r.db.GetContext(ctx, &tree, query, id)
	metrics.ObserveStoreQuery("get_tree", time.Since(start).Seconds())

	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrTreeNotFound
	}
	if err != nil {
		return nil, r.storeError("get tree by id", err, zap.Int64("id", id))
	}

	return &tree, nil
}

func (r *treeRepository) List(ctx context.Context, filter domain.TreeFilter) ([]*domain.TreeSummary, error) {
	where, args := buildFilterClause(filter)

	query := fmt.Sprintf(`
		SELECT %s, height_range_id
		FROM trees
		%s
		ORDER BY tree_id
		LIMIT $%d OFFSET $%d
	`, summaryColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	return r.selectSummaries(ctx, "list_trees", query, args)
}

func (r *treeRepository) Count(ctx context.Context, filter domain.TreeFilter) (int64, error) {
	where, args := buildFilterClause(filter)
	query := "SELECT COUNT(*) FROM trees " + where

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var total int64
	start := time.Now()
	err := r.db.GetContext(ctx, &total, query, args...)
	metrics.ObserveStoreQuery("count_trees", time.Since(start).Seconds())
	if err != nil {
		return 0, r.storeError("count trees", err)
	}

	return total, nil
}

func (r *treeRepository) Search(ctx context.Context, q domain.SpatialQuery) ([]*domain.TreeSummary, error) {
	query, args, err := buildSpatialQuery(q)
	if err != nil {
		return nil, err
	}

	return r.selectSummaries(ctx, "search_"+string(q.Mode), query, args)
}

func (r *treeRepository) Species(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT species_name
		FROM trees
		WHERE species_name IS NOT NULL
		ORDER BY species_name
	`

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	species := make([]string, 0)
	start := time.Now()
	err := r.db.SelectContext(ctx, &species, query)
	metrics.ObserveStoreQuery("list_species", time.Since(start).Seconds())
	if err != nil {
		return nil, r.storeError("list species", err)
	}

	return species, nil
}

func (r *treeRepository) Health(ctx context.Context) error {
	var one int
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()
	if err := r.db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return r.storeError("health check", err)
	}
	return nil
}

func (r *treeRepository) selectSummaries(
	ctx context.Context,
	name, query string,
	args []interface{},
) ([]*domain.TreeSummary, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	trees := make([]*domain.TreeSummary, 0)
	start := time.Now()
	err := r.db.SelectContext(ctx, &trees, query, args...)
	metrics.ObserveStoreQuery(name, time.Since(start).Seconds())
	if err != nil {
		return nil, r.storeError(name, err)
	}

	r.logger.Debug("Store query executed",
		zap.String("query", name),
		zap.Int("rows", len(trees)),
		zap.Duration("took", time.Since(start)))

	return trees, nil
}

// storeError логирует ошибку хранилища и сводит её к 503
func (r *treeRepository) storeError(op string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	r.logger.Error("Spatial store query failed", fields...)
	return errors.ErrStoreUnavailable
}

// buildSpatialQuery строит SQL для одного режима поиска.
// Радиус - геодезический (geography, сфероид), bbox - пересечение по GiST индексу.
func buildSpatialQuery(q domain.SpatialQuery) (string, []interface{}, error) {
	switch q.Mode {
	case domain.SearchModeBBox:
		if q.BBox == nil {
			return "", nil, fmt.Errorf("bbox query without box")
		}
		b := q.BBox
		query := fmt.Sprintf(`
		SELECT %s
		FROM trees
		WHERE geom && ST_MakeEnvelope($1, $2, $3, $4, 4326)
		ORDER BY tree_id
		LIMIT $5
	`, summaryColumns)
		return query, []interface{}{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat, q.Limit}, nil

	case domain.SearchModeRadius:
		if q.Radius == nil {
			return "", nil, fmt.Errorf("radius query without area")
		}
		c := q.Radius.Center
		query := fmt.Sprintf(`
		SELECT %s
		FROM trees
		WHERE ST_DWithin(geom::geography, %s::geography, $3)
		ORDER BY tree_id
		LIMIT $4
	`, summaryColumns, queryPoint)
		return query, []interface{}{c.Lon, c.Lat, q.Radius.Meters, q.Limit}, nil

	case domain.SearchModeNearest:
		if q.Nearest == nil {
			return "", nil, fmt.Errorf("nearest query without center")
		}
		c := q.Nearest.Center
		query := fmt.Sprintf(`
		SELECT %s
		FROM trees
		ORDER BY geom::geography <-> %s::geography, tree_id
		LIMIT $3
	`, summaryColumns, queryPoint)
		return query, []interface{}{c.Lon, c.Lat, q.Nearest.Count}, nil
	}

	return "", nil, fmt.Errorf("unknown search mode %q", q.Mode)
}

// buildFilterClause собирает WHERE для фильтров списка; nil поля пропускаются
func buildFilterClause(f domain.TreeFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Species != nil {
		add("species_name = $%d", *f.Species)
	}
	if f.Genus != nil {
		add("genus_name = $%d", *f.Genus)
	}
	if f.CommonName != nil {
		add("common_name = $%d", *f.CommonName)
	}
	if f.Neighborhood != nil {
		add("neighbourhood_name = $%d", *f.Neighborhood)
	}
	if f.MinHeight != nil {
		add("height_range_id >= $%d", *f.MinHeight)
	}
	if f.MaxHeight != nil {
		add("height_range_id <= $%d", *f.MaxHeight)
	}
	if f.PlantedAfter != nil {
		add("date_planted >= $%d", *f.PlantedAfter)
	}
	if f.PlantedBefore != nil {
		add("date_planted <= $%d", *f.PlantedBefore)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
