package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	Email           string     `json:"email" db:"email" example:"teacher@lms-portal.app"`
	Password        string     `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName       string     `json:"firstName" db:"first_name" example:"John"`
	LastName        string     `json:"lastName" db:"last_name" example:"Doe"`
	RoleType        RoleType   `json:"roleType" db:"role_type" example:"STUDENT"`
	InstituteID     *int64     `json:"instituteId,omitempty" db:"institute_id"` // Nullable
	IsActive        bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`          // Nullable
	ProfilePhotoURL *string    `json:"profilePhotoUrl,omitempty" db:"profile_photo_url"` // Nullable
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`

	// Relation, no db tag
	Institute *Institute `json:"institute,omitempty"`
}

// FullName returns the display name used on listings and in emails.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
