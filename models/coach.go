package models

import "time"

// Coach is a team-staff profile. Email optionally pairs the coach 1:1 with a
// User login of the same email; Password then carries the same bcrypt hash as
// that User row and is never serialized.
type Coach struct {
	ID        uint      `gorm:"primaryKey" json:"coach_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Password  *string   `json:"-"`
	TeamID    *uint     `gorm:"index" json:"team_id,omitempty"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
