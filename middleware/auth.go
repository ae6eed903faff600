package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/authz"
	"matchday/models"
	"matchday/utils"
)

// Protected resolves the bearer credential into a Principal and attaches it
// to the request. COACH principals additionally get their coach profile
// resolved, since it carries the authoritative team scope.
func Protected(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, authz.ErrUnauthenticated.Error())
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := utils.ParseToken(tokenParts[1], secret)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, authz.ErrInvalidCredential.Error())
		}

		// Select only non-sensitive columns; the password hash never enters
		// the request scope.
		var user models.User
		err = db.
			Select("id", "first_name", "last_name", "email", "phone", "role", "created_at", "updated_at").
			First(&user, claims.UserID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Token is well-formed but its subject is gone.
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, authz.ErrInvalidCredential.Error())
			}
			return err
		}

		principal := &authz.Principal{User: &user}

		if user.Role == models.RoleCoach {
			var coach models.Coach
			err := db.Where("email = ?", user.Email).First(&coach).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Valid token, no profile: a permission failure, not an
					// authentication one.
					return utils.ErrorResponse(c, fiber.StatusForbidden, authz.ErrProfileMissing.Error())
				}
				return err
			}
			principal.Coach = &coach
		}

		authz.Attach(c, principal)
		return c.Next()
	}
}

// RequireAdmin gates a route group to ADMIN principals.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := authz.FromCtx(c)
		if p == nil || !p.IsAdmin() {
			return utils.ErrorResponse(c, fiber.StatusForbidden, authz.ErrAccessDenied.Error())
		}
		return c.Next()
	}
}
