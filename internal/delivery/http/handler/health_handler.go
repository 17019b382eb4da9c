package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trees-microservice/internal/pkg/utils"
	"github.com/trees-microservice/internal/usecase"
)

// HealthHandler - проверки живости сервиса и зависимостей
type HealthHandler struct {
	healthUC *usecase.HealthUseCase
	logger   *zap.Logger
}

func NewHealthHandler(healthUC *usecase.HealthUseCase, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		healthUC: healthUC,
		logger:   logger,
	}
}

// Health godoc
// @Summary Проверка живости
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Database godoc
// @Summary Доступность базы данных
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/health/db [get]
func (h *HealthHandler) Database(c *fiber.Ctx) error {
	if err := h.healthUC.CheckDatabase(c.Context()); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok", "database": "connected"})
}

// Cache godoc
// @Summary Доступность кэша
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/health/cache [get]
func (h *HealthHandler) Cache(c *fiber.Ctx) error {
	if err := h.healthUC.CheckCache(c.Context()); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok", "cache": "connected"})
}
