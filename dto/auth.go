package dto

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the dashboard login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the forced/voluntary password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// TokenClaims is the JWT payload carried by the access token.
type TokenClaims struct {
	UserID             string `json:"userId"`
	Username           string `json:"username"`
	Role               string `json:"role"`
	IsDemo             bool   `json:"isDemo"`
	IsVerified         bool   `json:"isVerified"`
	MustChangePassword bool   `json:"mustChangePassword"`
	jwt.RegisteredClaims
}

// UserResponse is the sanitized user shape returned by auth endpoints.
type UserResponse struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	IsActive           bool     `json:"is_active"`
	IsVerified         bool     `json:"is_verified"`
	IsDemo             bool     `json:"is_demo"`
	Badges             []string `json:"badges"`
	MustChangePassword bool     `json:"must_change_password"`
	CreatedAt          string   `json:"created_at,omitempty"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
	ExpiresAt int64        `json:"expiresAt"`
}
