package dto

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/trees-microservice/internal/domain"
)

const dateLayout = "2006-01-02"

// TreeSummaryResponse - дерево в результатах поиска
type TreeSummaryResponse struct {
	ID          int64             `json:"id"`
	GenusName   *string           `json:"genus_name"`
	SpeciesName *string           `json:"species_name"`
	CommonName  *string           `json:"common_name"`
	Geometry    *geojson.Geometry `json:"geometry"`
}

// SearchTreesResponse - ответ пространственного поиска
type SearchTreesResponse struct {
	Data []TreeSummaryResponse `json:"data"`
}

// TreeListItem - дерево в постраничном списке
type TreeListItem struct {
	ID            int64             `json:"id"`
	GenusName     *string           `json:"genus_name"`
	SpeciesName   *string           `json:"species_name"`
	CommonName    *string           `json:"common_name"`
	HeightRangeID *int              `json:"height_range_id"`
	Geometry      *geojson.Geometry `json:"geometry"`
}

type ListMetadata struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// ListTreesResponse - ответ списка деревьев
type ListTreesResponse struct {
	Metadata ListMetadata   `json:"metadata"`
	Data     []TreeListItem `json:"data"`
}

// TreeResponse - полная запись дерева
type TreeResponse struct {
	ID                int64             `json:"id"`
	CivicNumber       *string           `json:"civic_number"`
	StdStreet         *string           `json:"std_street"`
	GenusName         *string           `json:"genus_name"`
	SpeciesName       *string           `json:"species_name"`
	CultivarName      *string           `json:"cultivar_name"`
	CommonName        *string           `json:"common_name"`
	OnStreetBlock     *string           `json:"on_street_block"`
	OnStreet          *string           `json:"on_street"`
	NeighbourhoodName *string           `json:"neighbourhood_name"`
	StreetSideName    *string           `json:"street_side_name"`
	HeightRangeID     *int              `json:"height_range_id"`
	HeightRange       *string           `json:"height_range"`
	Diameter          *float64          `json:"diameter"`
	DatePlanted       *string           `json:"date_planted"`
	Geometry          *geojson.Geometry `json:"geometry"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type SpeciesResponse struct {
	Species []string `json:"species"`
}

// PointGeometry - GeoJSON Point, координаты в порядке [lon, lat]
func PointGeometry(lon, lat float64) *geojson.Geometry {
	return geojson.NewGeometry(orb.Point{lon, lat})
}

func ConvertTreeSummary(t *domain.TreeSummary) TreeSummaryResponse {
	return TreeSummaryResponse{
		ID:          t.ID,
		GenusName:   t.GenusName,
		SpeciesName: t.SpeciesName,
		CommonName:  t.CommonName,
		Geometry:    PointGeometry(t.Longitude, t.Latitude),
	}
}

func ConvertTreeListItem(t *domain.TreeSummary) TreeListItem {
	return TreeListItem{
		ID:            t.ID,
		GenusName:     t.GenusName,
		SpeciesName:   t.SpeciesName,
		CommonName:    t.CommonName,
		HeightRangeID: t.HeightRangeID,
		Geometry:      PointGeometry(t.Longitude, t.Latitude),
	}
}

func ConvertTree(t *domain.Tree) *TreeResponse {
	resp := &TreeResponse{
		ID:                t.ID,
		CivicNumber:       t.CivicNumber,
		StdStreet:         t.StdStreet,
		GenusName:         t.GenusName,
		SpeciesName:       t.SpeciesName,
		CultivarName:      t.CultivarName,
		CommonName:        t.CommonName,
		OnStreetBlock:     t.OnStreetBlock,
		OnStreet:          t.OnStreet,
		NeighbourhoodName: t.NeighbourhoodName,
		StreetSideName:    t.StreetSideName,
		HeightRangeID:     t.HeightRangeID,
		HeightRange:       t.HeightRange,
		Diameter:          t.Diameter,
		Geometry:          PointGeometry(t.Longitude, t.Latitude),
	}
	if t.DatePlanted != nil {
		d := t.DatePlanted.Format(dateLayout)
		resp.DatePlanted = &d
	}
	return resp
}
