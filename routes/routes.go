package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"matchday/config"
	controller "matchday/controllers"
	"matchday/middleware"
)

// SetupRoutes mounts the full API surface under /api. Everything except
// register and login sits behind the bearer-token middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	apiLogger := log.New(os.Stdout, "API: ", log.Ldate|log.Ltime|log.Lshortfile)

	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	authController := controller.NewAuthController(db, cfg.JWTSecret, apiLogger)
	userController := controller.NewUserController(db, apiLogger)
	leagueController := controller.NewLeagueController(db, apiLogger)
	teamController := controller.NewTeamController(db, apiLogger)
	playerController := controller.NewPlayerController(db, apiLogger)
	coachController := controller.NewCoachController(db, apiLogger)
	refereeController := controller.NewRefereeController(db, apiLogger)
	venueController := controller.NewVenueController(db, apiLogger)
	fixtureController := controller.NewFixtureController(db, apiLogger)
	resultController := controller.NewResultController(db, apiLogger)

	// Public auth endpoints. Login is rate limited per client IP.
	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", middleware.LoginRateLimiter(cfg), authController.Login)
	auth.Post("/refresh", authController.Refresh)

	// Everything below requires a valid access token.
	protected := api.Group("", middleware.Protected(db, cfg.JWTSecret))

	protected.Get("/auth/me", authController.Me)
	protected.Post("/auth/change-password", authController.ChangePassword)

	users := protected.Group("/users")
	users.Get("/", userController.ListUsers)
	users.Get("/:id", userController.GetUser)
	users.Post("/", userController.CreateUser)
	users.Put("/:id", userController.UpdateUser)
	users.Delete("/:id", userController.DeleteUser)

	leagues := protected.Group("/leagues")
	leagues.Get("/", leagueController.ListLeagues)
	leagues.Get("/:id", leagueController.GetLeague)
	leagues.Get("/:leagueId/teams", teamController.ListTeamsByLeague)
	leagues.Post("/", leagueController.CreateLeague)
	leagues.Put("/:id", leagueController.UpdateLeague)
	leagues.Delete("/:id", leagueController.DeleteLeague)

	teams := protected.Group("/teams")
	teams.Get("/", teamController.ListTeams)
	teams.Get("/:id", teamController.GetTeam)
	teams.Get("/:teamId/players", playerController.ListPlayersByTeam)
	teams.Get("/:teamId/coaches", coachController.ListCoachesByTeam)
	teams.Get("/:teamId/fixtures", fixtureController.ListFixturesByTeam)
	teams.Post("/", teamController.CreateTeam)
	teams.Put("/:id", teamController.UpdateTeam)
	teams.Delete("/:id", teamController.DeleteTeam)

	players := protected.Group("/players")
	players.Get("/", playerController.ListPlayers)
	players.Get("/:id", playerController.GetPlayer)
	players.Post("/", playerController.CreatePlayer)
	players.Put("/:id", playerController.UpdatePlayer)
	players.Delete("/:id", playerController.DeletePlayer)

	coaches := protected.Group("/coaches")
	coaches.Get("/", coachController.ListCoaches)
	coaches.Get("/me", coachController.Dashboard)
	coaches.Get("/:id", coachController.GetCoach)
	coaches.Post("/", coachController.CreateCoach)
	coaches.Put("/:id", coachController.UpdateCoach)
	coaches.Delete("/:id", coachController.DeleteCoach)

	referees := protected.Group("/referees")
	referees.Get("/", refereeController.ListReferees)
	referees.Get("/:id", refereeController.GetReferee)
	referees.Post("/", refereeController.CreateReferee)
	referees.Put("/:id", refereeController.UpdateReferee)
	referees.Delete("/:id", refereeController.DeleteReferee)

	venues := protected.Group("/venues")
	venues.Get("/", venueController.ListVenues)
	venues.Get("/:id", venueController.GetVenue)
	venues.Post("/", venueController.CreateVenue)
	venues.Put("/:id", venueController.UpdateVenue)
	venues.Delete("/:id", venueController.DeleteVenue)

	fixtures := protected.Group("/fixtures")
	fixtures.Get("/", fixtureController.ListFixtures)
	fixtures.Get("/:id", fixtureController.GetFixture)
	fixtures.Post("/", fixtureController.CreateFixture)
	fixtures.Put("/:id", fixtureController.UpdateFixture)
	fixtures.Delete("/:id", fixtureController.DeleteFixture)

	results := protected.Group("/results")
	results.Get("/", resultController.ListResults)
	results.Get("/:id", resultController.GetResult)
	results.Post("/", resultController.CreateResult)
	results.Put("/:id", resultController.UpdateResult)
	results.Delete("/:id", resultController.DeleteResult)

	apiLogger.Println("API routes initialized successfully")
}
