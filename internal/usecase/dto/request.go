package dto

// DefaultSearchLimit - лимит поиска по умолчанию
const (
	DefaultSearchLimit  = 50
	DefaultNearestCount = 10
	DefaultListLimit    = 50
)

// SearchTreesRequest - параметры пространственного поиска.
// Строковый параметр считается переданным, если он не пустой; числовой - если не nil.
type SearchTreesRequest struct {
	BBox        string   `json:"bbox" query:"bbox"`
	Coordinates string   `json:"coordinates" query:"coordinates"`
	Radius      *float64 `json:"radius" query:"radius"`
	Nearest     string   `json:"nearest" query:"nearest"`
	Count       *int     `json:"count" query:"count" validate:"omitnil,min=1,max=100"`
	Limit       *int     `json:"limit" query:"limit" validate:"omitnil,min=1,max=100"`
}

// EffectiveLimit - limit с учётом значения по умолчанию
func (r SearchTreesRequest) EffectiveLimit() int {
	if r.Limit == nil {
		return DefaultSearchLimit
	}
	return *r.Limit
}

// CacheKwargs - все параметры запроса для ключа кэша, отсутствующие как null
func (r SearchTreesRequest) CacheKwargs() map[string]any {
	return map[string]any{
		"bbox":        nullString(r.BBox),
		"coordinates": nullString(r.Coordinates),
		"radius":      r.Radius,
		"nearest":     nullString(r.Nearest),
		"count":       r.Count,
		"limit":       r.EffectiveLimit(),
	}
}

// ListTreesRequest - фильтры и пагинация для списка деревьев
type ListTreesRequest struct {
	Limit         *int   `json:"limit" query:"limit" validate:"omitnil,min=1,max=100"`
	Offset        *int   `json:"offset" query:"offset" validate:"omitnil,min=0"`
	Species       string `json:"species" query:"species"`
	Genus         string `json:"genus" query:"genus"`
	CommonName    string `json:"common_name" query:"common_name"`
	Neighborhood  string `json:"neighborhood" query:"neighborhood"`
	MinHeight     *int   `json:"min_height" query:"min_height"`
	MaxHeight     *int   `json:"max_height" query:"max_height"`
	PlantedAfter  string `json:"planted_after" query:"planted_after" validate:"omitempty,datetime=2006-01-02"`
	PlantedBefore string `json:"planted_before" query:"planted_before" validate:"omitempty,datetime=2006-01-02"`
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
