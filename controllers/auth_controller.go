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

type AuthController struct {
	users  *services.UserService
	secret string
	logger *log.Logger
}

func NewAuthController(db *gorm.DB, secret string, logger *log.Logger) *AuthController {
	return &AuthController{
		users:  services.NewUserService(db),
		secret: secret,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type authResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// Register creates an account and signs the new user in. Accounts default to
// the COACH role; only an already-authenticated admin can mint ADMIN accounts
// through the user management routes, so the role field here is ignored.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in services.UserCreateInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	in.Role = models.RoleCoach
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := ac.users.Create(in)
	if err != nil {
		return respondError(c, err)
	}

	access, refresh, err := utils.GenerateTokens(user, ac.secret)
	if err != nil {
		utils.LogError("token_generation_failed", err, map[string]interface{}{"user_id": user.ID})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	ac.logger.Printf("user %d registered", user.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, authResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := ac.users.GetByEmail(in.Email)
	if err != nil || !utils.CheckPassword(user.Password, in.Password) {
		// Same response for unknown email and wrong password.
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, refresh, err := utils.GenerateTokens(user, ac.secret)
	if err != nil {
		utils.LogError("token_generation_failed", err, map[string]interface{}{"user_id": user.ID})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, authResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var in refreshRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	claims, err := utils.ParseToken(in.RefreshToken, ac.secret)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, authz.ErrInvalidCredential.Error())
	}

	user, err := ac.users.GetByID(claims.UserID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, authz.ErrInvalidCredential.Error())
	}

	access, refresh, err := utils.GenerateTokens(user, ac.secret)
	if err != nil {
		utils.LogError("token_generation_failed", err, map[string]interface{}{"user_id": user.ID})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, authResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// Me returns the authenticated principal: the user row and, for coaches, the
// linked coach profile with its team scope.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if p == nil || p.User == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, authz.ErrUnauthenticated.Error())
	}

	payload := fiber.Map{"user": p.User}
	if p.Coach != nil {
		payload["coach"] = p.Coach
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payload)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	p := authz.FromCtx(c)
	if p == nil || p.User == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, authz.ErrUnauthenticated.Error())
	}

	var in changePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ac.users.ChangePassword(p.User.ID, in.CurrentPassword, in.NewPassword); err != nil {
		return respondError(c, err)
	}

	ac.logger.Printf("user %d changed password", p.User.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password updated"})
}
