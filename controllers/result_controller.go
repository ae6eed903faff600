package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/services"
	"matchday/utils"
)

type ResultController struct {
	svc    *services.ResultService
	logger *log.Logger
}

func NewResultController(db *gorm.DB, logger *log.Logger) *ResultController {
	return &ResultController{
		svc:    services.NewResultService(db),
		logger: logger,
	}
}

func (rc *ResultController) ListResults(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceResult) == authz.Deny {
		return accessDenied(c)
	}

	results, err := rc.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(results), results)
}

func (rc *ResultController) GetResult(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionRead, authz.ResourceResult) == authz.Deny {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	result, err := rc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func (rc *ResultController) CreateResult(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourceResult) != authz.Allow {
		return accessDenied(c)
	}

	var in services.ResultCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := rc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	rc.logger.Printf("result %d recorded for fixture %d", result.ID, result.FixtureID)
	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func (rc *ResultController) UpdateResult(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionUpdate, authz.ResourceResult) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	var in services.ResultUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := rc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func (rc *ResultController) DeleteResult(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionDelete, authz.ResourceResult) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	result, err := rc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	rc.logger.Printf("result %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
