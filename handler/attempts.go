package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.elastic.co/apm"

	"confgive/pkg/response"
	"confgive/repository"
)

// GetAttempts lists recent give attempts for the ops view. Admin only.
func GetAttempts(c *fiber.Ctx) error {
	span, spanCtx := apm.StartSpan(c.Context(), "GetAttempts", "handler")
	defer span.End()

	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	attempts, err := repository.ListGiveAttempts(spanCtx, limit)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Failed to list attempts")
	}

	return response.Success(c, fiber.StatusOK, attempts)
}
