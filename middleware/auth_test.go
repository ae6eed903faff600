package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"matchday/authz"
	"matchday/models"
	"matchday/utils"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.League{}, &models.Team{}, &models.Coach{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newProtectedApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/whoami", Protected(db, testSecret), func(c *fiber.Ctx) error {
		p := authz.FromCtx(c)
		return c.JSON(fiber.Map{"role": p.User.Role, "has_coach": p.Coach != nil})
	})
	return app
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword("supersecret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		FirstName: "Test", LastName: "User",
		Email: email, Password: hashed, Role: role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func bearerFor(t *testing.T, user *models.User) string {
	t.Helper()
	access, _, err := utils.GenerateTokens(user, testSecret)
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}
	return "Bearer " + access
}

func doRequest(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func TestProtectedMissingToken(t *testing.T) {
	app := newProtectedApp(t, newTestDB(t))

	resp := doRequest(t, app, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProtectedMalformedHeader(t *testing.T) {
	app := newProtectedApp(t, newTestDB(t))

	resp := doRequest(t, app, "Token abc")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProtectedExpiredToken(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin@club.test", models.RoleAdmin)
	app := newProtectedApp(t, db)

	claims := &utils.Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	resp := doRequest(t, app, "Bearer "+expired)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProtectedDeletedSubject(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin@club.test", models.RoleAdmin)
	token := bearerFor(t, user)
	if err := db.Delete(&models.User{}, user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	app := newProtectedApp(t, db)

	resp := doRequest(t, app, token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProtectedCoachWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "coach@club.test", models.RoleCoach)
	app := newProtectedApp(t, db)

	resp := doRequest(t, app, bearerFor(t, user))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestProtectedResolvesCoachProfile(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "coach@club.test", models.RoleCoach)
	email := user.Email
	coach := &models.Coach{FirstName: "Test", LastName: "User", Email: &email}
	if err := db.Create(coach).Error; err != nil {
		t.Fatalf("seed coach: %v", err)
	}
	app := newProtectedApp(t, db)

	resp := doRequest(t, app, bearerFor(t, user))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestProtectedAdmin(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin@club.test", models.RoleAdmin)
	app := newProtectedApp(t, db)

	resp := doRequest(t, app, bearerFor(t, user))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
