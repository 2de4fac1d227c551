package server

import (
	"strconv"
	"time"

	"prolink/internal/models"
	"prolink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// currentUserID reads the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// parseID parses a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name)
	}
	return uint(id), nil
}

// parsePagination reads page and limit query parameters. Missing or malformed
// values fall back to the defaults; an oversized limit is clamped, not rejected.
func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultPageSize)))
	if err != nil {
		limit = service.DefaultPageSize
	}
	return service.ClampPage(page, limit)
}

// parseDateQuery parses an optional RFC 3339 date or date-time query parameter.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, models.NewValidationError("Invalid " + name)
}

// respond writes the success envelope with a payload under the given key.
func respond(c *fiber.Ctx, status int, message, key string, payload any) error {
	body := fiber.Map{
		"message": message,
		"status":  status,
	}
	if key != "" {
		body[key] = payload
	}
	return c.Status(status).JSON(body)
}
