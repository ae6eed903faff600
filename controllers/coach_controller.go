package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/services"
	"matchday/utils"
)

type CoachController struct {
	svc    *services.CoachService
	logger *log.Logger
}

func NewCoachController(db *gorm.DB, logger *log.Logger) *CoachController {
	return &CoachController{
		svc:    services.NewCoachService(db),
		logger: logger,
	}
}

func (cc *CoachController) ListCoaches(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceCoach) != authz.Allow {
		return accessDenied(c)
	}

	coaches, err := cc.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(coaches), coaches)
}

func (cc *CoachController) ListCoachesByTeam(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceCoach) != authz.Allow {
		return accessDenied(c)
	}
	teamID, ok := utils.ParseIDParam(c, "teamId")
	if !ok {
		return badID(c)
	}

	coaches, err := cc.svc.ListByTeam(teamID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(coaches), coaches)
}

func (cc *CoachController) GetCoach(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionRead, authz.ResourceCoach) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	coach, err := cc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, coach)
}

// Dashboard is the coach self-lookup: profile, team and roster. It is the
// only coach-resource action available to COACH principals.
func (cc *CoachController) Dashboard(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if p == nil || !p.IsCoach() || p.Coach == nil {
		return accessDenied(c)
	}

	dashboard, err := cc.svc.Dashboard(p.Coach.ID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, dashboard)
}

// CreateCoach is admin only. Supplying both email and password provisions a
// login account together with the profile.
func (cc *CoachController) CreateCoach(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourceCoach) != authz.Allow {
		return accessDenied(c)
	}

	var in services.CoachCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	coach, err := cc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	cc.logger.Printf("coach %d created", coach.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, coach)
}

func (cc *CoachController) UpdateCoach(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionUpdate, authz.ResourceCoach) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	var in services.CoachUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	coach, err := cc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, coach)
}

func (cc *CoachController) DeleteCoach(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionDelete, authz.ResourceCoach) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	coach, err := cc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	cc.logger.Printf("coach %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, coach)
}
