package models

import "time"

type Referee struct {
	ID                 uint      `gorm:"primaryKey" json:"referee_id"`
	FullName           string    `gorm:"not null" json:"full_name"`
	CertificationLevel string    `json:"certification_level,omitempty"`
	Fixtures           []Fixture `gorm:"foreignKey:RefereeID" json:"fixtures,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
