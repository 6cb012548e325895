package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

// AuthConfig configures token verification.
type AuthConfig struct {
	// Secret verifies HS256 signatures. When empty, tokens are decoded for
	// role hints only and the backend remains the authority.
	Secret string
}

// AuthService reads backend-issued access tokens and session identities.
type AuthService struct {
	config AuthConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService.
func NewAuthService(config AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{config: config, logger: logger, now: time.Now}
}

// Verifies reports whether signatures are checked.
func (s *AuthService) Verifies() bool {
	return s.config.Secret != ""
}

// ValidateToken parses an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "missing token")
	}

	claims := &models.JWTClaims{}
	if s.Verifies() {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.config.Secret), nil
		}, jwt.WithTimeFunc(s.now))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
		}
		if !token.Valid {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "malformed token")
		}
		if claims.ExpiresAt != nil && s.now().After(claims.ExpiresAt.Time) {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "token expired")
		}
	}

	claims.Role = models.ParseRole(string(claims.Role))
	return claims, nil
}

// ClaimsFromSession builds request claims for a cookie-restored session.
// The role always comes from the stored token, never from the stored user.
func (s *AuthService) ClaimsFromSession(session *models.Session) (*models.JWTClaims, error) {
	if session == nil || session.User == nil || session.Token == "" {
		return nil, appErrors.ErrSessionNotFound
	}
	token, err := s.ValidateToken(session.Token)
	if err != nil {
		return nil, err
	}
	user := session.User
	pick := func(primary, fallback string) string {
		if primary != "" {
			return primary
		}
		return fallback
	}
	return &models.JWTClaims{
		UserID:   pick(token.UserID, user.ID),
		NYCUID:   pick(token.NYCUID, user.NYCUID),
		Role:     token.Role,
		Name:     pick(user.Name, token.Name),
		Email:    pick(user.Email, token.Email),
		UserType: pick(token.UserType, user.UserType),
	}, nil
}
