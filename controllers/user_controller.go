package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/services"
	"matchday/utils"
)

type UserController struct {
	svc    *services.UserService
	logger *log.Logger
}

func NewUserController(db *gorm.DB, logger *log.Logger) *UserController {
	return &UserController{
		svc:    services.NewUserService(db),
		logger: logger,
	}
}

func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionList, authz.ResourceUser) != authz.Allow {
		return accessDenied(c)
	}

	users, err := uc.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return utils.ListResponse(c, len(users), users)
}

// GetUser serves admins for any id and every principal for their own.
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	selfRead := p != nil && p.User != nil && p.User.ID == id
	if !selfRead && authz.Authorize(p, authz.ActionRead, authz.ResourceUser) != authz.Allow {
		return accessDenied(c)
	}

	user, err := uc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionCreate, authz.ResourceUser) != authz.Allow {
		return accessDenied(c)
	}

	var in services.UserCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := uc.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	uc.logger.Printf("user %d created", user.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionUpdate, authz.ResourceUser) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	var in services.UserUpdateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := uc.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if authz.Authorize(p, authz.ActionDelete, authz.ResourceUser) != authz.Allow {
		return accessDenied(c)
	}
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return badID(c)
	}

	user, err := uc.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	uc.logger.Printf("user %d deleted", id)
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
