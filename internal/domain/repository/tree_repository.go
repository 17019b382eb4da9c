package repository

import (
	"context"

	"github.com/trees-microservice/internal/domain"
)

// TreeRepository определяет методы чтения каталога деревьев
type TreeRepository interface {
	// GetByID возвращает дерево по ID; errors.ErrTreeNotFound если нет
	GetByID(ctx context.Context, id int64) (*domain.Tree, error)

	// List возвращает страницу деревьев по фильтру, упорядоченную по ID
	List(ctx context.Context, filter domain.TreeFilter) ([]*domain.TreeSummary, error)

	// Count возвращает количество деревьев, подходящих под фильтр
	Count(ctx context.Context, filter domain.TreeFilter) (int64, error)

	// Search выполняет пространственный запрос (bbox, radius или nearest)
	Search(ctx context.Context, q domain.SpatialQuery) ([]*domain.TreeSummary, error)

	// Species возвращает отсортированный список уникальных видов
	Species(ctx context.Context) ([]string, error)

	// Health проверяет доступность хранилища
	Health(ctx context.Context) error
}
