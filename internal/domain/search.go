package domain

// SearchMode - режим пространственного поиска
type SearchMode string

const (
	SearchModeNearest SearchMode = "nearest"
	SearchModeRadius  SearchMode = "radius"
	SearchModeBBox    SearchMode = "bbox"
)

// RadiusArea - окружность вокруг точки, радиус в метрах (геодезический)
type RadiusArea struct {
	Center Point   `json:"center"`
	Meters float64 `json:"meters"`
}

// NearestTo - k ближайших соседей к точке
type NearestTo struct {
	Center Point `json:"center"`
	Count  int   `json:"count"`
}

// SpatialQuery - ровно один активный режим поиска плюс общий лимит.
// Заполнено только поле, соответствующее Mode.
type SpatialQuery struct {
	Mode    SearchMode   `json:"mode"`
	BBox    *BoundingBox `json:"bbox,omitempty"`
	Radius  *RadiusArea  `json:"radius,omitempty"`
	Nearest *NearestTo   `json:"nearest,omitempty"`
	Limit   int          `json:"limit"`
}

func NewBBoxQuery(box BoundingBox, limit int) SpatialQuery {
	return SpatialQuery{Mode: SearchModeBBox, BBox: &box, Limit: limit}
}

func NewRadiusQuery(center Point, meters float64, limit int) SpatialQuery {
	return SpatialQuery{
		Mode:   SearchModeRadius,
		Radius: &RadiusArea{Center: center, Meters: meters},
		Limit:  limit,
	}
}

// NewNearestQuery - для nearest лимитом выступает count
func NewNearestQuery(center Point, count int) SpatialQuery {
	return SpatialQuery{
		Mode:    SearchModeNearest,
		Nearest: &NearestTo{Center: center, Count: count},
		Limit:   count,
	}
}
