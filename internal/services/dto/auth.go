package dto

import (
	"time"

	"talentbridge_backend/internal/models"
)

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email    string          `json:"email" binding:"required" validate:"required,email"`
	Password string          `json:"password" binding:"required" validate:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,oneof=talent provider"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}
