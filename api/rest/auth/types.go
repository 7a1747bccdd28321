package auth

import "codeberg.org/zenfocus/server/zenfocus/users"

// RegisterRequest carries new-account credentials
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=255"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returned after a successful login
type LoginResponse struct {
	Token string              `json:"token"`
	User  users.PublicProfile `json:"user"`
}

// UserResponse wraps the caller's profile
type UserResponse struct {
	User *users.User `json:"user"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
