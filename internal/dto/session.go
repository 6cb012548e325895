package dto

import (
	"encoding/json"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
)

// LoginSessionRequest carries the token and user payload returned by SSO or
// the dev login endpoint.
type LoginSessionRequest struct {
	Token string          `json:"token" validate:"required"`
	User  json.RawMessage `json:"user" validate:"required"`
}

// UpdateSessionUserRequest is a partial profile update for the signed-in user.
type UpdateSessionUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// SessionResponse is returned by the session endpoints.
type SessionResponse struct {
	SessionID string              `json:"session_id"`
	Token     string              `json:"token,omitempty"`
	User      *models.SessionUser `json:"user"`
	LastError string              `json:"last_error,omitempty"`
}

// LogoutResponse tells the browser where to go after logout.
type LogoutResponse struct {
	RedirectTo string `json:"redirect_to"`
}
