package dto

import "jobtrack/internal/models"

// LoginRequest carries the sign-in form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the tokens plus the identity the client should keep.
type LoginResponse struct {
	Token        string                 `json:"token"`
	RefreshToken string                 `json:"refresh_token"`
	User         models.SessionIdentity `json:"user"`
}

// RefreshRequest rotates an access token while a session lives.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse carries the rotated token pair.
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest optionally carries the refresh token to spend. The access
// token in the Authorization header identifies the session itself.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}
