package models

import "time"

type Player struct {
	ID           uint       `gorm:"primaryKey" json:"player_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Position     string     `json:"position,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	JerseyNumber *int       `json:"jersey_number,omitempty"`
	TeamID       uint       `gorm:"not null;index" json:"team_id"`
	Team         *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
