package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"matchday/models"
)

// newTestDB opens an isolated in-memory database and migrates the full
// schema. The DSN is keyed on the test name so parallel tests never share
// state.
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
	return db
}

func seedLeague(t *testing.T, db *gorm.DB, name string) *models.League {
	t.Helper()
	league := &models.League{Name: name, Season: "2025/26"}
	if err := db.Create(league).Error; err != nil {
		t.Fatalf("seed league: %v", err)
	}
	return league
}

func seedTeam(t *testing.T, db *gorm.DB, leagueID uint, name string) *models.Team {
	t.Helper()
	team := &models.Team{Name: name, HomeGround: name + " Park", LeagueID: leagueID}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return team
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func uintp(u uint) *uint    { return &u }
