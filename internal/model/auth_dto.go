package model

import "ReportDeskAPI/internal/entity"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserDTO is the verified caller identity the auth middleware places in the
// request context. It never leaves the process; responses use UserResponse.
type UserDTO struct {
	ID    int64
	Email string
	Name  string
	Role  entity.UserRole
}

func (u UserDTO) IsAdmin() bool {
	return u.Role == entity.RoleAdmin
}
