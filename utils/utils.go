package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse creates a standardized error response
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// SuccessResponse wraps a single payload in the response envelope
func SuccessResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ListResponse wraps a list payload and its count in the response envelope
func ListResponse(c *fiber.Ctx, count int, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// ParseUint safely parses a string to uint
func ParseUint(s string) uint {
	i, _ := strconv.ParseUint(s, 10, 32)
	return uint(i)
}

// ParseIDParam parses a numeric route parameter, returning ok=false on junk
func ParseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	i, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(i), true
}
