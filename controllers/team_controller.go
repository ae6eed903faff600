package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/models"
	"matchday/services"
	"matchday/utils"
)

type TeamController struct {
	svc    *services.TeamService
	logger *log.Logger
}

func NewTeamController(db *gorm.DB, logger *log.Logger) *TeamController {
	return &TeamController{
		svc:    services.NewTeamService(db),
		logger: logger,
	}
}

// ListTeams returns all teams for admins; coaches see only their own team.
func (tc *TeamController) ListTeams(c *fiber.Ctx) error {
	p := authz.FromCtx(c)

	switch authz.Authorize(p, authz.ActionList, authz.ResourceTeam) {
	case authz.Allow:
		teams, err := tc.svc.List()
		if err != nil {
			return respondError(c, err)
		}
		return utils.ListResponse(c, len(teams), teams)

	case authz.AllowOwnTeam:
		teamID, ok := p.TeamID()
		if !ok {
			// Coach without an assigned team: empty result, not an error.
			return utils.ListResponse(c, 0, []models.Team{})
		}
		team, err := tc.svc.GetByID(teamID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.ListResponse(c, 1, []models.Team{*team})
	}
	return accessDenied(c)
}

func (tc *TeamController) ListTeamsByLeague(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	leagueID, ok := utils.ParseIDParam(c, "leagueId")
	if !ok {
		return badID(c)
	}

	switch authz.Authorize(p, authz.ActionList, authz.ResourceTeam) {
	case authz.Allow:
		teams, err := tc.svc.ListByLeague(leagueID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.ListResponse(c, len(teams), teams)

	case authz.AllowOwnTeam:
		teamID, hasTeam := p.TeamID()
		if !hasTeam {
			return utils.ListResponse(c, 0, []models.Team{})
		}
		teams, err := tc.svc.ListByLeague(leagueID)
		if err != nil {
			return respondError(c, err)
		}
		scoped := make([]models.Team, 0, 1)
		for _, team := range teams {
			if team.ID == teamID {
				scoped = append(scoped, team)
			}
		}
		return utils.ListResponse(c, len(scoped), scoped)
	}
	return accessDenied(c)
}

func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	switch authz.Authorize(p, authz.ActionRead, authz.ResourceTeam) {
	case authz.Allow:
	case authz.AllowOwnTeam:
		if err := authz.RequireTeamAccess(p, id); err != nil {
			return respondError(c, err)
		}
	default:
		return accessDenied(c)
	}

	team, err := tc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, team)
}

// CreateTeam is admin only.
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourceTeam) != authz.Allow {
		return accessDenied(c)
	}

	var in services.TeamCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	team, err := tc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	tc.logger.Printf("team %d created", team.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, team)
}

// UpdateTeam allows admins to update any team and coaches their own.
func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	switch authz.Authorize(p, authz.ActionUpdate, authz.ResourceTeam) {
	case authz.Allow:
	case authz.AllowOwnTeam:
		if err := authz.RequireTeamAccess(p, id); err != nil {
			return respondError(c, err)
		}
	default:
		return accessDenied(c)
	}

	var in services.TeamUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	team, err := tc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, team)
}

// DeleteTeam is admin only.
func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionDelete, authz.ResourceTeam) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	team, err := tc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	tc.logger.Printf("team %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, team)
}
