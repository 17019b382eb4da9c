package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trees-microservice/internal/pkg/metrics"
)

// Metrics - счётчик и гистограмма HTTP запросов по шаблону маршрута
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := handle(c); err != nil {
			return err
		}

		metrics.ObserveHTTP(c.Method(), c.Route().Path, c.Response().StatusCode(), time.Since(start).Seconds())
		return nil
	}
}
