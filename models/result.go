package models

import "time"

// Result records the final score of a fixture, at most one per fixture.
type Result struct {
	ID        uint      `gorm:"primaryKey" json:"result_id"`
	FixtureID uint      `gorm:"uniqueIndex;not null" json:"fixture_id"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Fixture   *Fixture  `gorm:"foreignKey:FixtureID" json:"fixture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
