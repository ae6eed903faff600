package controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"matchday/models"
)

func newAuthEnv(t *testing.T) *testEnv {
	t.Helper()

	quiet := log.New(io.Discard, "", 0)
	var auth *AuthController
	// The public auth routes must be mounted before the bearer middleware,
	// matching the production route order.
	env := newTestEnv(t, func(app *fiber.App, db *gorm.DB) {
		auth = NewAuthController(db, testSecret, quiet)
		app.Post("/auth/register", auth.Register)
		app.Post("/auth/login", auth.Login)
		app.Post("/auth/refresh", auth.Refresh)
	})

	env.protected.Get("/auth/me", auth.Me)
	env.protected.Post("/auth/change-password", auth.ChangePassword)
	return env
}

// TestAuthRouteVisibility pins the mount order: login is reachable without a
// token while the profile route stays behind the bearer middleware.
func TestAuthRouteVisibility(t *testing.T) {
	env := newAuthEnv(t)
	env.seedLogin(t, "admin@club.test", models.RoleAdmin)

	resp, _ := env.request(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "admin@club.test", "password": "supersecret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tokenless login: status = %d, want 200", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodGet, "/auth/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("tokenless me: status = %d, want 401", resp.StatusCode)
	}
}

type tokenPayload struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

func decodeTokens(t *testing.T, raw json.RawMessage) tokenPayload {
	t.Helper()
	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode auth payload: %v", err)
	}
	return payload
}

func TestRegisterDefaultsToCoachRole(t *testing.T) {
	env := newAuthEnv(t)

	resp, body := env.request(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"first_name": "Jane",
		"last_name":  "Mensah",
		"email":      "jane@club.test",
		"password":   "supersecret",
		"role":       "ADMIN",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	payload := decodeTokens(t, body.Data)
	if payload.User.Role != models.RoleCoach {
		t.Fatalf("role = %q, want %q (self-registration never grants ADMIN)", payload.User.Role, models.RoleCoach)
	}
	if payload.AccessToken == "" || payload.RefreshToken == "" {
		t.Fatal("registration did not issue a token pair")
	}
}

func TestRegisterDuplicateEmailIs409(t *testing.T) {
	env := newAuthEnv(t)

	in := map[string]interface{}{
		"first_name": "Jane", "last_name": "Mensah",
		"email": "jane@club.test", "password": "supersecret",
	}
	if resp, _ := env.request(t, http.MethodPost, "/auth/register", "", in); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: status = %d, want 201", resp.StatusCode)
	}
	resp, _ := env.request(t, http.MethodPost, "/auth/register", "", in)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second register: status = %d, want 409", resp.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	env := newAuthEnv(t)
	env.seedLogin(t, "admin@club.test", models.RoleAdmin)

	resp, _ := env.request(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "admin@club.test", "password": "wrongpass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d, want 401", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "nobody@club.test", "password": "supersecret",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown email: status = %d, want 401", resp.StatusCode)
	}

	resp, body := env.request(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "admin@club.test", "password": "supersecret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status = %d, want 200", resp.StatusCode)
	}
	if payload := decodeTokens(t, body.Data); payload.AccessToken == "" {
		t.Fatal("login did not issue an access token")
	}
}

func TestMe(t *testing.T) {
	env := newAuthEnv(t)
	admin := env.seedAdmin(t)

	resp, body := env.request(t, http.MethodGet, "/auth/me", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var me struct {
		User  *models.User  `json:"user"`
		Coach *models.Coach `json:"coach"`
	}
	if err := json.Unmarshal(body.Data, &me); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if me.User == nil || me.User.Email != "admin@club.test" {
		t.Fatalf("me = %+v, want the admin account", me.User)
	}
	if me.Coach != nil {
		t.Fatal("admin payload carries a coach profile")
	}
}

func TestChangePasswordRotatesLogin(t *testing.T) {
	env := newAuthEnv(t)
	admin := env.seedAdmin(t)

	resp, _ := env.request(t, http.MethodPost, "/auth/change-password", admin, map[string]interface{}{
		"current_password": "wrongpass", "new_password": "newsecret123",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong current: status = %d, want 400", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodPost, "/auth/change-password", admin, map[string]interface{}{
		"current_password": "supersecret", "new_password": "newsecret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("change password: status = %d, want 200", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email": "admin@club.test", "password": "newsecret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login with rotated password: status = %d, want 200", resp.StatusCode)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	env := newAuthEnv(t)

	resp, body := env.request(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"first_name": "Jane", "last_name": "Mensah",
		"email": "jane@club.test", "password": "supersecret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", resp.StatusCode)
	}
	payload := decodeTokens(t, body.Data)

	resp, body = env.request(t, http.MethodPost, "/auth/refresh", "", map[string]interface{}{
		"refresh_token": payload.RefreshToken,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh: status = %d, want 200", resp.StatusCode)
	}
	if fresh := decodeTokens(t, body.Data); fresh.AccessToken == "" {
		t.Fatal("refresh did not issue an access token")
	}

	resp, _ = env.request(t, http.MethodPost, "/auth/refresh", "", map[string]interface{}{
		"refresh_token": "not-a-token",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage refresh: status = %d, want 401", resp.StatusCode)
	}
}
