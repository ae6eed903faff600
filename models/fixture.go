package models

import "time"

// Fixture is a scheduled match between two teams of the same league.
type Fixture struct {
	ID         uint      `gorm:"primaryKey" json:"fixture_id"`
	LeagueID   uint      `gorm:"not null;index" json:"league_id"`
	HomeTeamID uint      `gorm:"not null;index" json:"home_team_id"`
	AwayTeamID uint      `gorm:"not null;index" json:"away_team_id"`
	VenueID    *uint     `gorm:"index" json:"venue_id,omitempty"`
	RefereeID  *uint     `gorm:"index" json:"referee_id,omitempty"`
	MatchDate  time.Time `gorm:"not null" json:"match_date"`
	Status     string    `gorm:"default:'SCHEDULED'" json:"status"`
	League     *League   `gorm:"foreignKey:LeagueID" json:"league,omitempty"`
	HomeTeam   *Team     `gorm:"foreignKey:HomeTeamID" json:"home_team,omitempty"`
	AwayTeam   *Team     `gorm:"foreignKey:AwayTeamID" json:"away_team,omitempty"`
	Venue      *Venue    `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	Referee    *Referee  `gorm:"foreignKey:RefereeID" json:"referee,omitempty"`
	Result     *Result   `gorm:"foreignKey:FixtureID" json:"result,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
