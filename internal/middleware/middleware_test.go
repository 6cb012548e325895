package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/internal/repository"
	"github.com/noah-isme/scholarship-portal-api/internal/service"
	"github.com/noah-isme/scholarship-portal-api/pkg/config"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != "good" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.JWTClaims{UserID: "1", Role: models.RoleCollege}, nil
}

func (stubValidator) ClaimsFromSession(session *models.Session) (*models.JWTClaims, error) {
	return &models.JWTClaims{UserID: session.User.ID, Role: session.User.Role}, nil
}

type stubRestorer map[string]*models.Session

func (s stubRestorer) Restore(_ context.Context, sid string) (*models.Session, error) {
	return s[sid], nil
}

type memoryAuditWriter struct {
	logs []*models.GatewayAuditLog
	err  error
}

func (m *memoryAuditWriter) Create(_ context.Context, log *models.GatewayAuditLog) error {
	m.logs = append(m.logs, log)
	return m.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	final := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": Claims(c).Role, "token": Token(c)})
	}
	r.POST("/things/:id", append(handlers, final)...)
	r.GET("/things/:id", append(handlers, final)...)
	return r
}

func TestJWTAcceptsBearerAndSessionCookie(t *testing.T) {
	sessions := stubRestorer{"sid-1": {Token: "session-token", User: &models.SessionUser{ID: "9", Role: models.RoleAdmin}}}
	r := newRouter(JWT(stubValidator{}, sessions, "portal_session"))

	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"good"`)

	req = httptest.NewRequest(http.MethodGet, "/things/1", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "sid-1"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"session-token"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestJWTRejectsMissingOrBadCredentials(t *testing.T) {
	r := newRouter(JWT(stubValidator{}, stubRestorer{}, "portal_session"))

	for _, tc := range []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{name: "none", status: http.StatusUnauthorized},
		{name: "scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer bad", status: http.StatusUnauthorized},
		{name: "unknown session", cookie: "missing", status: http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "portal_session", Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestRequireCapability(t *testing.T) {
	r := newRouter(JWT(stubValidator{}, nil, ""), RequireCapability(models.CapRosterManage))
	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = newRouter(JWT(stubValidator{}, nil, ""), RequireCapability(models.CapRosterManage, models.CapRanking))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	r = newRouter(JWT(stubValidator{}, nil, ""), RequireRoles(models.RoleSuperAdmin))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuditRecordsSuccessfulRequests(t *testing.T) {
	writer := &memoryAuditWriter{err: errors.New("db down")}
	r := newRouter(JWT(stubValidator{}, nil, ""), Audit(writer, nil, models.AuditActionExecute, "ranking"))

	req := httptest.NewRequest(http.MethodPost, "/things/12", nil)
	req.Header.Set("Authorization", "Bearer good")
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, writer.logs, 1)
	entry := writer.logs[0]
	assert.Equal(t, "EXECUTE", entry.Action)
	assert.Equal(t, "ranking", entry.Resource)
	assert.Equal(t, "/things/:id", entry.Path)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "1", *entry.UserID)
	require.NotNil(t, entry.ResourceID)
	assert.Equal(t, "12", *entry.ResourceID)
	assert.Equal(t, "college", entry.Role)

	req = httptest.NewRequest(http.MethodPost, "/things/12", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, writer.logs, 1)
}

func TestMetricsLabelsUnmatchedRoutes(t *testing.T) {
	metricsSvc := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metricsSvc))
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/things/1", "/things/2", "/wp-login.php"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	metricsSvc.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="/things/:id",status="200"} 2`))
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",path="unmatched",status="404"} 1`))
	assert.False(t, strings.Contains(body, "wp-login"))
}

func TestOptionalJWTPassesAnonymousRequests(t *testing.T) {
	r := gin.New()
	r.DELETE("/session", OptionalJWT(stubValidator{}, stubRestorer{}, "portal_session"), func(c *gin.Context) {
		if claims := Claims(c); claims != nil {
			c.String(http.StatusOK, claims.ActorID())
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/session", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "anonymous", w.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/session", nil)
	req.Header.Set("Authorization", "Bearer good")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "1", w.Body.String())
}

func signedToken(t *testing.T, secret string, role models.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, models.JWTClaims{
		UserID: "77",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestSessionRoleComesFromToken(t *testing.T) {
	const secret = "gateway-secret"
	auth := service.NewAuthService(service.AuthConfig{Secret: secret}, nil)
	kv := repository.NewMemoryStore()
	store := service.NewKVSessionStore(kv, "session", time.Hour)
	sessions := service.NewSessionService(store, auth, nil, config.SessionConfig{TTL: time.Hour}, config.EnvProduction, nil, nil)
	studentToken := signedToken(t, secret, models.RoleStudent)

	_, err := sessions.Login(context.Background(), "", dto.LoginSessionRequest{
		Token: studentToken,
		User:  []byte(`{"id":77,"name":"Mallory","role":"SUPER_ADMIN"}`),
	})
	require.ErrorIs(t, err, service.ErrRoleMismatch)

	// a stored user blob claiming more than the token grants
	require.NoError(t, store.Set(context.Background(), "sid-x", studentToken, models.SessionUser{ID: "77", Role: models.RoleSuperAdmin}))

	r := gin.New()
	r.GET("/admin/gateway-audit", JWT(auth, sessions, "portal_session"), RequireCapability(models.CapAuditView), func(c *gin.Context) {
		c.String(http.StatusOK, "audit rows")
	})
	req := httptest.NewRequest(http.MethodGet, "/admin/gateway-audit", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "sid-x"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "audit rows")
}
