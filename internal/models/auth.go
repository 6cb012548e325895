package models

import (
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SessionUser is the normalized user snapshot kept in the session store.
type SessionUser struct {
	ID          string `json:"id"`
	NYCUID      string `json:"nycu_id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Role        Role   `json:"role"`
	UserType    string `json:"user_type,omitempty"`
	Status      string `json:"status,omitempty"`
	DeptCode    string `json:"dept_code,omitempty"`
	DeptName    string `json:"dept_name,omitempty"`
	CollegeCode string `json:"college_code,omitempty"`
}

// RawUser accepts the loosely shaped user payloads the backend and SSO
// callback hand over.
type RawUser struct {
	ID          any    `json:"id"`
	NYCUID      string `json:"nycu_id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	UserType    string `json:"user_type"`
	Status      string `json:"status"`
	DeptCode    string `json:"dept_code"`
	DeptName    string `json:"dept_name"`
	CollegeCode string `json:"college_code"`
}

// Normalize lower-cases the role and resolves the display name from
// full_name, then name, then username.
func (u RawUser) Normalize() SessionUser {
	name := strings.TrimSpace(u.FullName)
	if name == "" {
		name = strings.TrimSpace(u.Name)
	}
	if name == "" {
		name = strings.TrimSpace(u.Username)
	}
	return SessionUser{
		ID:          idString(u.ID),
		NYCUID:      u.NYCUID,
		Name:        name,
		Email:       u.Email,
		Role:        Role(strings.ToLower(strings.TrimSpace(u.Role))),
		UserType:    u.UserType,
		Status:      u.Status,
		DeptCode:    u.DeptCode,
		DeptName:    u.DeptName,
		CollegeCode: u.CollegeCode,
	}
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// Session is the restored state for one browser session.
// LastError is the message of the most recent failed profile update.
type Session struct {
	ID        string       `json:"session_id"`
	Token     string       `json:"token"`
	User      *SessionUser `json:"user"`
	DevUser   *SessionUser `json:"dev_user,omitempty"`
	LastError string       `json:"last_error,omitempty"`
}

// JWTClaims represents the backend-issued access token payload.
type JWTClaims struct {
	UserID   string `json:"sub_id,omitempty"`
	NYCUID   string `json:"nycu_id,omitempty"`
	Role     Role   `json:"role"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
	jwt.RegisteredClaims
}

// ActorID returns the best available user identifier.
func (c *JWTClaims) ActorID() string {
	if c == nil {
		return ""
	}
	if c.UserID != "" {
		return c.UserID
	}
	if c.Subject != "" {
		return c.Subject
	}
	return c.NYCUID
}
