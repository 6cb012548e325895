package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

const (
	// ContextUserKey is the gin context key storing request claims.
	ContextUserKey = "currentUser"
	// ContextTokenKey holds the backend access token for the request.
	ContextTokenKey = "accessToken"
	// ContextSessionKey holds the session id when the cookie was used.
	ContextSessionKey = "sessionID"
)

// TokenValidator turns bearer tokens and sessions into claims.
type TokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
	ClaimsFromSession(session *models.Session) (*models.JWTClaims, error)
}

// SessionRestorer loads a session by id.
type SessionRestorer interface {
	Restore(ctx context.Context, sid string) (*models.Session, error)
}

// JWT requires either a bearer token or a live session cookie.
func JWT(auth TokenValidator, sessions SessionRestorer, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, auth, sessions, cookieName); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalJWT attaches claims when present but does not block.
func OptionalJWT(auth TokenValidator, sessions SessionRestorer, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = authenticate(c, auth, sessions, cookieName)
		c.Next()
	}
}

func authenticate(c *gin.Context, auth TokenValidator, sessions SessionRestorer, cookieName string) error {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
		}
		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		c.Set(ContextTokenKey, strings.TrimSpace(parts[1]))
		return nil
	}

	if sessions == nil || cookieName == "" {
		return appErrors.ErrUnauthorized
	}
	sid, err := c.Cookie(cookieName)
	if err != nil || sid == "" {
		return appErrors.ErrUnauthorized
	}
	session, err := sessions.Restore(c.Request.Context(), sid)
	if err != nil {
		return err
	}
	if session == nil {
		return appErrors.ErrSessionNotFound
	}
	claims, err := auth.ClaimsFromSession(session)
	if err != nil {
		return err
	}
	c.Set(ContextUserKey, claims)
	c.Set(ContextTokenKey, session.Token)
	c.Set(ContextSessionKey, sid)
	return nil
}

// Claims returns the claims attached by JWT, or nil.
func Claims(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*models.JWTClaims)
	return claims
}

// Token returns the backend access token attached by JWT.
func Token(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}
