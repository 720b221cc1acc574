package dto

import (
	"jobboard_backend/internal/models"
)

// RegisterRequest - registration payload
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"omitempty,oneof=jobseeker employer"`
}

// LoginRequest - login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse - user representation returned to clients. The password hash
// never leaves the server.
type UserResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// AuthResponse - user plus access token, returned by register and login
type AuthResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token"`
}

// NewUserResponse maps a User model to its client representation.
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
