package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"matchday/authz"
	"matchday/services"
	"matchday/utils"
)

// respondError translates domain errors into the response envelope. Anything
// outside the taxonomy is logged, reported and answered with a generic 500
// that leaks no internals.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidReference):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDuplicateKey):
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, authz.ErrAccessDenied), errors.Is(err, authz.ErrProfileMissing):
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, authz.ErrUnauthenticated), errors.Is(err, authz.ErrInvalidCredential):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	}

	utils.LogError("internal_error", err, map[string]interface{}{
		"path":   c.Path(),
		"method": c.Method(),
	})
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong")
}

func accessDenied(c *fiber.Ctx) error {
	return respondError(c, authz.ErrAccessDenied)
}

func badID(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id parameter")
}
