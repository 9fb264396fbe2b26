package dto

import (
	"time"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	RoleType        string     `json:"roleType" enums:"STUDENT,TEACHER,ADMIN"`
	InstituteID     *int64     `json:"instituteId,omitempty"`
	IsActive        bool       `json:"isActive"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl,omitempty"`
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		RoleType:        string(user.RoleType),
		InstituteID:     user.InstituteID,
		IsActive:        user.IsActive,
		ProfilePhotoURL: user.ProfilePhotoURL,
		LastLoginAt:     user.LastLoginAt,
		CreatedAt:       user.CreatedAt,
	}
}

// UpdateUserRoleRequest changes a user's role (admin only)
type UpdateUserRoleRequest struct {
	RoleType models.RoleType `json:"roleType" binding:"required,oneof=STUDENT TEACHER ADMIN"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
