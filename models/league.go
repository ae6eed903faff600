package models

import "time"

type League struct {
	ID        uint      `gorm:"primaryKey" json:"league_id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Season    string    `json:"season,omitempty"`
	Teams     []Team    `gorm:"foreignKey:LeagueID" json:"teams,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
