package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"somchai@student.ac.th"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	Username  string    `json:"username" db:"username" example:"somchai_j"`
	RoleType  RoleType  `json:"roleType" db:"role" example:"STUDENT"`
	FacultyID *int64    `json:"facultyId,omitempty" db:"faculty_id"` // nullable affiliation
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Faculty *Faculty `json:"faculty,omitempty"`
}

// RefreshToken defines a stored refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
