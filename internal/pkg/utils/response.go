package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trees-microservice/internal/pkg/errors"
)

// ErrorResponse - единый формат ошибки API
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// SendSuccess отдаёт тело ответа как есть со статусом 200
func SendSuccess(c *fiber.Ctx, body interface{}) error {
	return c.JSON(body)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Detail: appErr.Message,
			Code:   appErr.Code,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Detail: errors.ErrInternalServer.Message,
		Code:   errors.ErrInternalServer.Code,
	})
}
