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

type PlayerController struct {
	svc    *services.PlayerService
	logger *log.Logger
}

func NewPlayerController(db *gorm.DB, logger *log.Logger) *PlayerController {
	return &PlayerController{
		svc:    services.NewPlayerService(db),
		logger: logger,
	}
}

// ListPlayers returns all players for admins; coaches see only their roster.
func (pc *PlayerController) ListPlayers(c *fiber.Ctx) error {
	p := authz.FromCtx(c)

	switch authz.Authorize(p, authz.ActionList, authz.ResourcePlayer) {
	case authz.Allow:
		players, err := pc.svc.List()
		if err != nil {
			return respondError(c, err)
		}
		return utils.ListResponse(c, len(players), players)

	case authz.AllowOwnTeam:
		teamID, ok := p.TeamID()
		if !ok {
			return utils.ListResponse(c, 0, []models.Player{})
		}
		players, err := pc.svc.ListByTeam(teamID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.ListResponse(c, len(players), players)
	}
	return accessDenied(c)
}

func (pc *PlayerController) ListPlayersByTeam(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	teamID, ok := utils.ParseIDParam(c, "teamId")
	if !ok {
		return badID(c)
	}

	switch authz.Authorize(p, authz.ActionList, authz.ResourcePlayer) {
	case authz.Allow:
	case authz.AllowOwnTeam:
		if err := authz.RequireTeamAccess(p, teamID); err != nil {
			return respondError(c, err)
		}
	default:
		return accessDenied(c)
	}

	players, err := pc.svc.ListByTeam(teamID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(players), players)
}

func (pc *PlayerController) GetPlayer(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	if authz.Authorize(p, authz.ActionRead, authz.ResourcePlayer) == authz.Deny {
		return accessDenied(c)
	}

	player, err := pc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if err := authz.PlayerAccessAllowed(p, player, nil); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, player)
}

// CreatePlayer allows admins unconditionally; a coach only onto their own
// team.
func (pc *PlayerController) CreatePlayer(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourcePlayer) == authz.Deny {
		return accessDenied(c)
	}

	var in services.PlayerCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := authz.PlayerAccessAllowed(p, nil, &in.TeamID); err != nil {
		return respondError(c, err)
	}

	player, err := pc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	pc.logger.Printf("player %d created on team %d", player.ID, player.TeamID)
	return utils.SuccessResponse(c, fiber.StatusCreated, player)
}

// UpdatePlayer guards against a coach moving a player to another team.
func (pc *PlayerController) UpdatePlayer(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	if authz.Authorize(p, authz.ActionUpdate, authz.ResourcePlayer) == authz.Deny {
		return accessDenied(c)
	}

	var in services.PlayerUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	existing, err := pc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if err := authz.PlayerAccessAllowed(p, existing, in.TeamID); err != nil {
		return respondError(c, err)
	}

	player, err := pc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, player)
}

func (pc *PlayerController) DeletePlayer(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	if authz.Authorize(p, authz.ActionDelete, authz.ResourcePlayer) == authz.Deny {
		return accessDenied(c)
	}

	existing, err := pc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if err := authz.PlayerAccessAllowed(p, existing, nil); err != nil {
		return respondError(c, err)
	}

	player, err := pc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	pc.logger.Printf("player %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, player)
}
