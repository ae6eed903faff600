package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"matchday/middleware"
	"matchday/models"
	"matchday/utils"
)

const testSecret = "test-secret"

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	protected fiber.Router
}

// newTestEnv builds an app mirroring the production route layout: any public
// mounts run first, then everything else sits behind the bearer middleware.
func newTestEnv(t *testing.T, public ...func(app *fiber.App, db *gorm.DB)) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.League{},
		&models.Team{},
		&models.Player{},
		&models.Coach{},
		&models.Referee{},
		&models.Venue{},
		&models.Fixture{},
		&models.Result{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	quiet := log.New(io.Discard, "", 0)
	app := fiber.New()
	for _, mount := range public {
		mount(app, db)
	}
	protected := app.Group("", middleware.Protected(db, testSecret))

	teams := NewTeamController(db, quiet)
	protected.Get("/teams", teams.ListTeams)
	protected.Get("/teams/:id", teams.GetTeam)
	protected.Post("/teams", teams.CreateTeam)
	protected.Put("/teams/:id", teams.UpdateTeam)
	protected.Delete("/teams/:id", teams.DeleteTeam)

	players := NewPlayerController(db, quiet)
	protected.Get("/players", players.ListPlayers)
	protected.Get("/players/:id", players.GetPlayer)
	protected.Post("/players", players.CreatePlayer)
	protected.Put("/players/:id", players.UpdatePlayer)
	protected.Delete("/players/:id", players.DeletePlayer)
	protected.Get("/teams/:teamId/players", players.ListPlayersByTeam)

	return &testEnv{app: app, db: db, protected: protected}
}

// seedAdmin creates an ADMIN login and returns its bearer header.
func (e *testEnv) seedAdmin(t *testing.T) string {
	t.Helper()
	return e.seedLogin(t, "admin@club.test", models.RoleAdmin)
}

// seedCoach creates a COACH login with a matching coach profile on the given
// team (nil for an unassigned coach) and returns its bearer header.
func (e *testEnv) seedCoach(t *testing.T, email string, teamID *uint) string {
	t.Helper()
	token := e.seedLogin(t, email, models.RoleCoach)
	coach := &models.Coach{FirstName: "Coach", LastName: "User", Email: &email, TeamID: teamID}
	if err := e.db.Create(coach).Error; err != nil {
		t.Fatalf("seed coach profile: %v", err)
	}
	return token
}

func (e *testEnv) seedLogin(t *testing.T, email string, role models.UserRole) string {
	t.Helper()
	hashed, err := utils.HashPassword("supersecret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		FirstName: "Test", LastName: "User",
		Email: email, Password: hashed, Role: role,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	access, _, err := utils.GenerateTokens(user, testSecret)
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}
	return "Bearer " + access
}

func (e *testEnv) seedLeague(t *testing.T, name string) *models.League {
	t.Helper()
	league := &models.League{Name: name, Season: "2025/26"}
	if err := e.db.Create(league).Error; err != nil {
		t.Fatalf("seed league: %v", err)
	}
	return league
}

func (e *testEnv) seedTeam(t *testing.T, leagueID uint, name string) *models.Team {
	t.Helper()
	team := &models.Team{Name: name, LeagueID: leagueID}
	if err := e.db.Create(team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return team
}

func (e *testEnv) seedPlayer(t *testing.T, teamID uint, firstName string) *models.Player {
	t.Helper()
	player := &models.Player{FirstName: firstName, LastName: "Player", TeamID: teamID}
	if err := e.db.Create(player).Error; err != nil {
		t.Fatalf("seed player: %v", err)
	}
	return player
}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode envelope %q: %v", raw, err)
		}
	}
	return resp, &env
}
