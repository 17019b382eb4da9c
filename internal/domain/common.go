package domain

// Point - позиция в WGS84 (SRID 4326), градусы
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// BoundingBox - прямоугольник в долготе/широте без проекции
type BoundingBox struct {
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
}

// Contains проверяет попадание точки в прямоугольник (границы включительно)
func (b BoundingBox) Contains(p Point) bool {
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon &&
		p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}
