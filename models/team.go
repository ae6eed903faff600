package models

import "time"

// Team belongs to a League and is referenced by Players, Coaches and Fixtures.
type Team struct {
	ID           uint      `gorm:"primaryKey" json:"team_id"`
	Name         string    `gorm:"not null" json:"name"`
	HomeGround   string    `json:"home_ground,omitempty"`
	LeagueID     uint      `gorm:"not null;index" json:"league_id"`
	League       *League   `gorm:"foreignKey:LeagueID" json:"league,omitempty"`
	Players      []Player  `gorm:"foreignKey:TeamID" json:"players,omitempty"`
	Coaches      []Coach   `gorm:"foreignKey:TeamID" json:"coaches,omitempty"`
	HomeFixtures []Fixture `gorm:"foreignKey:HomeTeamID" json:"home_fixtures,omitempty"`
	AwayFixtures []Fixture `gorm:"foreignKey:AwayTeamID" json:"away_fixtures,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
