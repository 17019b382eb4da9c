package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValidateCoordinates проверяет валидность координат (WGS84, градусы)
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ParseFloats разбирает строку вида "a,b,c" ровно в n чисел.
// Возвращает ErrWrongCount, если количество значений не совпадает.
func ParseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongCount, len(parts), n)
	}

	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// ErrWrongCount - неверное количество значений в списке через запятую
var ErrWrongCount = errors.New("wrong number of values")
