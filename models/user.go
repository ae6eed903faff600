package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleCoach UserRole = "COACH"
)

// User represents a login account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Password  string    `gorm:"not null" json:"-"`
	Role      UserRole  `gorm:"type:varchar(16);not null;default:'COACH'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
