package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/services"
	"matchday/utils"
)

type RefereeController struct {
	svc    *services.RefereeService
	logger *log.Logger
}

func NewRefereeController(db *gorm.DB, logger *log.Logger) *RefereeController {
	return &RefereeController{
		svc:    services.NewRefereeService(db),
		logger: logger,
	}
}

func (rc *RefereeController) ListReferees(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceReferee) == authz.Deny {
		return accessDenied(c)
	}

	referees, err := rc.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(referees), referees)
}

func (rc *RefereeController) GetReferee(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionRead, authz.ResourceReferee) == authz.Deny {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	referee, err := rc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, referee)
}

func (rc *RefereeController) CreateReferee(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourceReferee) != authz.Allow {
		return accessDenied(c)
	}

	var in services.RefereeCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	referee, err := rc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, referee)
}

func (rc *RefereeController) UpdateReferee(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionUpdate, authz.ResourceReferee) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	var in services.RefereeUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	referee, err := rc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, referee)
}

func (rc *RefereeController) DeleteReferee(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionDelete, authz.ResourceReferee) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	referee, err := rc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	rc.logger.Printf("referee %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, referee)
}
