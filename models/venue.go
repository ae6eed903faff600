package models

import "time"

type Venue struct {
	ID        uint      `gorm:"primaryKey" json:"venue_id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location,omitempty"`
	Fixtures  []Fixture `gorm:"foreignKey:VenueID" json:"fixtures,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
