package domain

import "time"

// Tree - запись каталога городских деревьев (только чтение)
type Tree struct {
	ID int64 `json:"id" db:"tree_id"`

	// Адрес
	CivicNumber       *string `json:"civic_number" db:"civic_number"`
	StdStreet         *string `json:"std_street" db:"std_street"`
	OnStreetBlock     *string `json:"on_street_block" db:"on_street_block"`
	OnStreet          *string `json:"on_street" db:"on_street"`
	NeighbourhoodName *string `json:"neighbourhood_name" db:"neighbourhood_name"`
	StreetSideName    *string `json:"street_side_name" db:"street_side_name"`

	// Таксономия
	GenusName    *string `json:"genus_name" db:"genus_name"`
	SpeciesName  *string `json:"species_name" db:"species_name"`
	CultivarName *string `json:"cultivar_name" db:"cultivar_name"`
	CommonName   *string `json:"common_name" db:"common_name"`

	// Размеры
	HeightRangeID *int     `json:"height_range_id" db:"height_range_id"`
	HeightRange   *string  `json:"height_range" db:"height_range"`
	Diameter      *float64 `json:"diameter" db:"diameter"`

	DatePlanted *time.Time `json:"date_planted" db:"date_planted"`

	Longitude float64 `json:"longitude" db:"longitude"`
	Latitude  float64 `json:"latitude" db:"latitude"`
}

// Position возвращает позицию дерева
func (t *Tree) Position() Point {
	return Point{Lat: t.Latitude, Lon: t.Longitude}
}

// TreeSummary - краткая проекция дерева для поиска и списков
type TreeSummary struct {
	ID            int64   `json:"id" db:"tree_id"`
	GenusName     *string `json:"genus_name" db:"genus_name"`
	SpeciesName   *string `json:"species_name" db:"species_name"`
	CommonName    *string `json:"common_name" db:"common_name"`
	HeightRangeID *int    `json:"height_range_id,omitempty" db:"height_range_id"`
	Longitude     float64 `json:"longitude" db:"longitude"`
	Latitude      float64 `json:"latitude" db:"latitude"`
}

// Position возвращает позицию дерева
func (t *TreeSummary) Position() Point {
	return Point{Lat: t.Latitude, Lon: t.Longitude}
}

// TreeFilter - фильтры на равенство/диапазон для списка деревьев.
// nil означает отсутствие фильтра.
type TreeFilter struct {
	Species       *string
	Genus         *string
	CommonName    *string
	Neighborhood  *string
	MinHeight     *int
	MaxHeight     *int
	PlantedAfter  *time.Time
	PlantedBefore *time.Time
	Limit         int
	Offset        int
}
