package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/services"
	"matchday/utils"
)

type LeagueController struct {
	svc    *services.LeagueService
	logger *log.Logger
}

func NewLeagueController(db *gorm.DB, logger *log.Logger) *LeagueController {
	return &LeagueController{
		svc:    services.NewLeagueService(db),
		logger: logger,
	}
}

func (lc *LeagueController) ListLeagues(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceLeague) == authz.Deny {
		return accessDenied(c)
	}

	leagues, err := lc.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(leagues), leagues)
}

func (lc *LeagueController) GetLeague(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionRead, authz.ResourceLeague) == authz.Deny {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	league, err := lc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, league)
}

func (lc *LeagueController) CreateLeague(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourceLeague) != authz.Allow {
		return accessDenied(c)
	}

	var in services.LeagueCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	league, err := lc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	lc.logger.Printf("league %d created", league.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, league)
}

func (lc *LeagueController) UpdateLeague(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionUpdate, authz.ResourceLeague) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	var in services.LeagueUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	league, err := lc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, league)
}

func (lc *LeagueController) DeleteLeague(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionDelete, authz.ResourceLeague) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	league, err := lc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	lc.logger.Printf("league %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, league)
}
