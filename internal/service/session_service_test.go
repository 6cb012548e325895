package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/internal/repository"
	"github.com/noah-isme/scholarship-portal-api/pkg/config"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type stubProfileUpdater struct {
	user    *models.RawUser
	err     error
	token   string
	partial map[string]any
}

func (s *stubProfileUpdater) UpdateMine(ctx context.Context, token string, partial map[string]any) (*models.RawUser, error) {
	s.token = token
	s.partial = partial
	return s.user, s.err
}

var testSessionConfig = config.SessionConfig{
	TTL:            time.Hour,
	KeyPrefix:      "session",
	LocalLoginPath: "/dev-login",
	SSOLoginURL:    "https://portal.example.edu/auth/sso-login",
}

func newSessionService(env string, profiles profileUpdater) (*SessionService, *repository.MemoryStore) {
	kv := repository.NewMemoryStore()
	store := NewKVSessionStore(kv, testSessionConfig.KeyPrefix, testSessionConfig.TTL)
	auth := NewAuthService(AuthConfig{Secret: testTokenSecret}, nil)
	return NewSessionService(store, auth, profiles, testSessionConfig, env, nil, nil), kv
}

const testTokenSecret = "session-secret"

// loginRequest signs a token carrying the role named in user.
func loginRequest(t *testing.T, user map[string]any) dto.LoginSessionRequest {
	t.Helper()
	raw, err := json.Marshal(user)
	require.NoError(t, err)
	token := signToken(t, testTokenSecret, models.JWTClaims{
		UserID: fmt.Sprint(user["id"]),
		Role:   models.ParseRole(fmt.Sprint(user["role"])),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	return dto.LoginSessionRequest{Token: token, User: raw}
}

func TestSessionLoginThenRestoreRoundTrip(t *testing.T) {
	svc, _ := newSessionService(config.EnvProduction, nil)
	ctx := context.Background()

	req := loginRequest(t, map[string]any{
		"id": 7, "full_name": "陳大文", "username": "chen", "role": "College", "college_code": "EE",
	})
	session, err := svc.Login(ctx, "", req)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, models.RoleCollege, session.User.Role)
	assert.Equal(t, "陳大文", session.User.Name)
	assert.Nil(t, session.DevUser)

	restored, err := svc.Restore(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, req.Token, restored.Token)
	assert.Equal(t, *session.User, *restored.User)
}

func TestSessionLoginDevelopmentPersistsDevUser(t *testing.T) {
	svc, kv := newSessionService(config.EnvDevelopment, nil)
	ctx := context.Background()

	session, err := svc.Login(ctx, "", loginRequest(t, map[string]any{"id": "u1", "name": "Dev", "role": "ADMIN"}))
	require.NoError(t, err)
	require.NotNil(t, session.DevUser)
	assert.Equal(t, 3, kv.Len())

	restored, err := svc.Restore(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, restored.DevUser)
	assert.Equal(t, models.RoleAdmin, restored.DevUser.Role)
}

func TestSessionRestoreMalformedUserClearsAllKeys(t *testing.T) {
	svc, kv := newSessionService(config.EnvDevelopment, nil)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "session:sid-2:auth_token", "tok", 0))
	require.NoError(t, kv.Set(ctx, "session:sid-2:user", "{not json", 0))
	require.NoError(t, kv.Set(ctx, "session:sid-2:dev_user", `{"id":"1"}`, 0))

	session, err := svc.Restore(ctx, "sid-2")
	assert.NoError(t, err)
	assert.Nil(t, session)
	assert.Equal(t, 0, kv.Len())
}

func TestSessionRestoreMissing(t *testing.T) {
	svc, _ := newSessionService(config.EnvProduction, nil)
	session, err := svc.Restore(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, session)

	session, err = svc.Restore(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionLogoutRedirectByEnvironment(t *testing.T) {
	ctx := context.Background()
	prod, kv := newSessionService(config.EnvProduction, nil)
	session, err := prod.Login(ctx, "", loginRequest(t, map[string]any{"id": 1, "name": "A", "role": "student"}))
	require.NoError(t, err)

	redirect, err := prod.Logout(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, testSessionConfig.SSOLoginURL, redirect)
	assert.Equal(t, 0, kv.Len())

	dev, _ := newSessionService(config.EnvDevelopment, nil)
	redirect, err = dev.Logout(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "/dev-login", redirect)
}

func TestSessionLoginValidation(t *testing.T) {
	svc, _ := newSessionService(config.EnvProduction, nil)
	_, err := svc.Login(context.Background(), "", dto.LoginSessionRequest{User: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Login(context.Background(), "", dto.LoginSessionRequest{Token: "t", User: json.RawMessage(`"x"`)})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestSessionUpdateUserSuccessReplacesUser(t *testing.T) {
	profiles := &stubProfileUpdater{user: &models.RawUser{FullName: "新名字", Email: "new@example.edu"}}
	svc, _ := newSessionService(config.EnvProduction, profiles)
	ctx := context.Background()
	req := loginRequest(t, map[string]any{"id": 1, "name": "Old", "role": "student", "email": "old@example.edu"})
	session, err := svc.Login(ctx, "", req)
	require.NoError(t, err)
	sid := session.ID

	name := "新名字"
	user, err := svc.UpdateUser(ctx, sid, dto.UpdateSessionUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "新名字", user.Name)
	assert.Equal(t, "new@example.edu", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, req.Token, profiles.token)
	assert.Equal(t, "新名字", profiles.partial["name"])

	restored, err := svc.Restore(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "新名字", restored.User.Name)
}

func TestSessionUpdateUserFailureRethrowsAndRecords(t *testing.T) {
	profiles := &stubProfileUpdater{err: appErrors.Backend(422, "Email already used")}
	svc, _ := newSessionService(config.EnvProduction, profiles)
	ctx := context.Background()
	session, err := svc.Login(ctx, "", loginRequest(t, map[string]any{"id": 1, "name": "Old", "role": "student"}))
	require.NoError(t, err)
	sid := session.ID

	email := "dup@example.edu"
	_, err = svc.UpdateUser(ctx, sid, dto.UpdateSessionUserRequest{Email: &email})
	require.Error(t, err)
	assert.Equal(t, "Email already used", svc.LastError(ctx, sid))

	restored, err := svc.Restore(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "Old", restored.User.Name)
	assert.Equal(t, "Email already used", restored.LastError)

	profiles.err = nil
	name := "New"
	_, err = svc.UpdateUser(ctx, sid, dto.UpdateSessionUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, svc.LastError(ctx, sid))
}

func TestSessionLastErrorExpiresWithSession(t *testing.T) {
	profiles := &stubProfileUpdater{err: appErrors.Backend(500, "backend down")}
	svc, kv := newSessionService(config.EnvProduction, profiles)
	ctx := context.Background()
	session, err := svc.Login(ctx, "", loginRequest(t, map[string]any{"id": 1, "name": "Old", "role": "student"}))
	require.NoError(t, err)

	name := "x"
	_, err = svc.UpdateUser(ctx, session.ID, dto.UpdateSessionUserRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, 3, kv.Len())

	_, err = svc.Logout(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, kv.Len())
	assert.Empty(t, svc.LastError(ctx, session.ID))
}

func TestSessionLoginMintsFreshID(t *testing.T) {
	svc, kv := newSessionService(config.EnvProduction, nil)
	ctx := context.Background()
	user := map[string]any{"id": 1, "name": "Victim", "role": "student"}

	planted, err := svc.Login(ctx, "", loginRequest(t, user))
	require.NoError(t, err)

	session, err := svc.Login(ctx, planted.ID, loginRequest(t, user))
	require.NoError(t, err)
	assert.NotEqual(t, planted.ID, session.ID)

	gone, err := svc.Restore(ctx, planted.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Equal(t, 2, kv.Len())

	fresh, err := svc.Login(ctx, "attacker-known-id", loginRequest(t, user))
	require.NoError(t, err)
	assert.NotEqual(t, "attacker-known-id", fresh.ID)
}

func TestSessionLoginRoleFollowsToken(t *testing.T) {
	svc, _ := newSessionService(config.EnvProduction, nil)
	ctx := context.Background()

	studentToken := loginRequest(t, map[string]any{"id": 9, "role": "student"}).Token
	_, err := svc.Login(ctx, "", dto.LoginSessionRequest{
		Token: studentToken,
		User:  json.RawMessage(`{"id":9,"name":"Eve","role":"super_admin"}`),
	})
	assert.ErrorIs(t, err, ErrRoleMismatch)

	session, err := svc.Login(ctx, "", dto.LoginSessionRequest{
		Token: studentToken,
		User:  json.RawMessage(`{"id":9,"name":"Eve"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, session.User.Role)

	_, err = svc.Login(ctx, "", dto.LoginSessionRequest{Token: "not-a-token", User: json.RawMessage(`{"id":9}`)})
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestSessionUpdateUserWithoutSession(t *testing.T) {
	svc, _ := newSessionService(config.EnvProduction, &stubProfileUpdater{})
	_, err := svc.UpdateUser(context.Background(), "missing", dto.UpdateSessionUserRequest{})
	assert.ErrorIs(t, err, appErrors.ErrSessionNotFound)
}
