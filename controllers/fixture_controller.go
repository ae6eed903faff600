package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/services"
	"matchday/utils"
)

type FixtureController struct {
	svc    *services.FixtureService
	logger *log.Logger
}

func NewFixtureController(db *gorm.DB, logger *log.Logger) *FixtureController {
	return &FixtureController{
		svc:    services.NewFixtureService(db),
		logger: logger,
	}
}

func (fc *FixtureController) ListFixtures(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceFixture) == authz.Deny {
		return accessDenied(c)
	}

	fixtures, err := fc.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(fixtures), fixtures)
}

func (fc *FixtureController) ListFixturesByTeam(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceFixture) == authz.Deny {
		return accessDenied(c)
	}
	teamID, ok := utils.ParseIDParam(c, "teamId")
	if !ok {
		return badID(c)
	}

	fixtures, err := fc.svc.ListByTeam(teamID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(fixtures), fixtures)
}

func (fc *FixtureController) GetFixture(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionRead, authz.ResourceFixture) == authz.Deny {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	fixture, err := fc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fixture)
}

func (fc *FixtureController) CreateFixture(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourceFixture) != authz.Allow {
		return accessDenied(c)
	}

	var in services.FixtureCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	fixture, err := fc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	fc.logger.Printf("fixture %d created", fixture.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, fixture)
}

func (fc *FixtureController) UpdateFixture(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionUpdate, authz.ResourceFixture) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	var in services.FixtureUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	fixture, err := fc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fixture)
}

func (fc *FixtureController) DeleteFixture(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionDelete, authz.ResourceFixture) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	fixture, err := fc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	fc.logger.Printf("fixture %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, fixture)
}
