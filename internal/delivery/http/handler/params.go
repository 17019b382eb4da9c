package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/trees-microservice/internal/pkg/errors"
)

// queryFloat - необязательный числовой параметр; пустое значение = не передан
func queryFloat(c *fiber.Ctx, key, msg string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Validation(msg)
	}
	return &v, nil
}

// queryInt - необязательный целочисленный параметр
func queryInt(c *fiber.Ctx, key, msg string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Validation(msg)
	}
	return &v, nil
}
