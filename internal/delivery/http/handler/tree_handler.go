package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trees-microservice/internal/pkg/errors"
	"github.com/trees-microservice/internal/pkg/utils"
	"github.com/trees-microservice/internal/usecase"
	"github.com/trees-microservice/internal/usecase/dto"
)

// TreeHandler - обработчик запросов к каталогу деревьев
type TreeHandler struct {
	searchUC *usecase.SearchUseCase
	treeUC   *usecase.TreeUseCase
	logger   *zap.Logger
}

// NewTreeHandler - создание нового TreeHandler
func NewTreeHandler(searchUC *usecase.SearchUseCase, treeUC *usecase.TreeUseCase, logger *zap.Logger) *TreeHandler {
	return &TreeHandler{
		searchUC: searchUC,
		treeUC:   treeUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Пространственный поиск деревьев
// @Description Один режим из трёх: nearest (k ближайших), coordinates+radius (геодезический радиус в метрах) или bbox. Параметры разных режимов вместе дают 400.
// @Tags Trees
// @Produce json
// @Param bbox query string false "min_lon,min_lat,max_lon,max_lat"
// @Param coordinates query string false "lat,lon центра для поиска по радиусу"
// @Param radius query number false "Радиус в метрах"
// @Param nearest query string false "lat,lon для поиска ближайших"
// @Param count query int false "Количество ближайших (1-100)" default(10)
// @Param limit query int false "Максимум результатов (1-100)" default(50)
// @Success 200 {object} dto.SearchTreesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trees/search [get]
func (h *TreeHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchTreesRequest{
		BBox:        c.Query("bbox"),
		Coordinates: c.Query("coordinates"),
		Nearest:     c.Query("nearest"),
	}

	var err error
	if req.Radius, err = queryFloat(c, "radius", errors.MsgRadiusNotNumeric); err != nil {
		return utils.SendError(c, err)
	}
	if req.Count, err = queryInt(c, "count", errors.MsgCountNotInteger); err != nil {
		return utils.SendError(c, err)
	}
	if req.Limit, err = queryInt(c, "limit", errors.MsgLimitNotInteger); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}

// List godoc
// @Summary Список деревьев с фильтрами
// @Description Постраничный список, отсортированный по tree_id. total - количество с учётом фильтров.
// @Tags Trees
// @Produce json
// @Param limit query int false "Размер страницы (1-100)" default(50)
// @Param offset query int false "Смещение" default(0)
// @Param species query string false "species_name"
// @Param genus query string false "genus_name"
// @Param common_name query string false "common_name"
// @Param neighborhood query string false "neighbourhood_name"
// @Param min_height query int false "Минимальный height_range_id"
// @Param max_height query int false "Максимальный height_range_id"
// @Param planted_after query string false "YYYY-MM-DD"
// @Param planted_before query string false "YYYY-MM-DD"
// @Success 200 {object} dto.ListTreesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trees [get]
func (h *TreeHandler) List(c *fiber.Ctx) error {
	req := dto.ListTreesRequest{
		Species:       c.Query("species"),
		Genus:         c.Query("genus"),
		CommonName:    c.Query("common_name"),
		Neighborhood:  c.Query("neighborhood"),
		PlantedAfter:  c.Query("planted_after"),
		PlantedBefore: c.Query("planted_before"),
	}

	var err error
	if req.Limit, err = queryInt(c, "limit", errors.MsgLimitNotInteger); err != nil {
		return utils.SendError(c, err)
	}
	if req.Offset, err = queryInt(c, "offset", errors.MsgOffsetNotInteger); err != nil {
		return utils.SendError(c, err)
	}
	if req.MinHeight, err = queryInt(c, "min_height", errors.MsgMinHeightNotInteger); err != nil {
		return utils.SendError(c, err)
	}
	if req.MaxHeight, err = queryInt(c, "max_height", errors.MsgMaxHeightNotInteger); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.treeUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}

// Count godoc
// @Summary Общее количество деревьев
// @Tags Trees
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trees/count [get]
func (h *TreeHandler) Count(c *fiber.Ctx) error {
	result, err := h.treeUC.Count(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result)
}

// GetByID godoc
// @Summary Дерево по идентификатору
// @Tags Trees
// @Produce json
// @Param id path int true "tree_id"
// @Success 200 {object} dto.TreeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/trees/{id} [get]
func (h *TreeHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidTreeID)
	}

	result, err := h.treeUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}

// Species godoc
// @Summary Список видов
// @Description Различные непустые species_name, по алфавиту
// @Tags Species
// @Produce json
// @Success 200 {object} dto.SpeciesResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/species [get]
func (h *TreeHandler) Species(c *fiber.Ctx) error {
	result, err := h.treeUC.Species(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result)
}
