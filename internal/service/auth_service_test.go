package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

func signToken(t *testing.T, secret string, claims models.JWTClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateTokenWithSecret(t *testing.T) {
	svc := NewAuthService(AuthConfig{Secret: "s3cret"}, nil)
	token := signToken(t, "s3cret", models.JWTClaims{
		UserID: "42",
		Role:   "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "42", claims.ActorID())

	forged := signToken(t, "other", models.JWTClaims{UserID: "42", Role: models.RoleSuperAdmin})
	_, err = svc.ValidateToken(forged)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestValidateTokenWithoutSecretDecodesOnly(t *testing.T) {
	svc := NewAuthService(AuthConfig{}, nil)
	token := signToken(t, "whatever", models.JWTClaims{
		NYCUID: "310551001",
		Role:   models.RoleCollege,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCollege, claims.Role)
	assert.Equal(t, "310551001", claims.ActorID())

	expired := signToken(t, "whatever", models.JWTClaims{
		Role: models.RoleCollege,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestClaimsFromSession(t *testing.T) {
	svc := NewAuthService(AuthConfig{}, nil)

	_, err := svc.ClaimsFromSession(nil)
	assert.ErrorIs(t, err, appErrors.ErrSessionNotFound)

	token := signToken(t, "any", models.JWTClaims{Role: models.RoleProfessor})
	claims, err := svc.ClaimsFromSession(&models.Session{
		Token: token,
		User:  &models.SessionUser{ID: "7", Name: "Chen", Role: "professor"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleProfessor, claims.Role)
	assert.Equal(t, "7", claims.ActorID())
	assert.Equal(t, "Chen", claims.Name)

	_, err = svc.ClaimsFromSession(&models.Session{Token: "opaque", User: &models.SessionUser{ID: "7"}})
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestClaimsFromSessionIgnoresStoredRole(t *testing.T) {
	svc := NewAuthService(AuthConfig{Secret: "s3cret"}, nil)
	token := signToken(t, "s3cret", models.JWTClaims{
		UserID: "15",
		Role:   models.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := svc.ClaimsFromSession(&models.Session{
		Token: token,
		User:  &models.SessionUser{ID: "15", Role: models.RoleSuperAdmin},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.False(t, claims.Role.Can(models.CapAuditView))
}
