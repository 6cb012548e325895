package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]any
}

func newBackend(t *testing.T, status int, payload string) (*apiclient.Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api/v1"}), captured
}

func TestReferenceRepositoryTranslationsPathByRole(t *testing.T) {
	cases := map[models.Role]string{
		models.RoleAdmin:      "/api/v1/admin/scholarships/sub-type-translations",
		models.RoleSuperAdmin: "/api/v1/admin/scholarships/sub-type-translations",
		models.RoleCollege:    "/api/v1/college-review/sub-type-translations",
		models.RoleStudent:    "/api/v1/scholarships/sub-type-translations",
	}
	for role, path := range cases {
		client, captured := newBackend(t, 200, `{"success":true,"data":{"zh":{"nstc":"國科會"}}}`)
		repo := NewReferenceRepository(client)
		out, err := repo.SubTypeTranslations(context.Background(), "tok", role)
		require.NoError(t, err)
		assert.Equal(t, path, captured.path, role)
		assert.Equal(t, "國科會", out["zh"]["nstc"])
	}
}

func TestRankingRepositoryFinalizeSurfacesBackendMessage(t *testing.T) {
	client, captured := newBackend(t, 409, `{"success":false,"message":"Ranking already finalized"}`)
	repo := NewRankingRepository(client)

	_, err := repo.Finalize(context.Background(), "tok", 12)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Ranking already finalized", appErr.Message)
	assert.Equal(t, "/api/v1/college-review/rankings/12/finalize", captured.path)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "Bearer tok", captured.auth)
}

func TestApplicationRepositoryCollegeReview(t *testing.T) {
	client, captured := newBackend(t, 200, `{"success":true,"data":{"id":5,"status":"approved"}}`)
	repo := NewApplicationRepository(client)

	app, err := repo.CollegeReview(context.Background(), "tok", 5, "approve", "good")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, app.Status)
	assert.Equal(t, "/api/v1/college-review/applications/5/review", captured.path)
	assert.Equal(t, "approve", captured.body["recommendation"])
	assert.Equal(t, "good", captured.body["review_comments"])
}

func TestRosterRepositoryListBuildsQuery(t *testing.T) {
	client, captured := newBackend(t, 200, `{"success":true,"data":{"items":[{"id":1,"roster_code":"R-2024-09","status":"completed"}],"total":1,"page":1,"size":20,"pages":1}}`)
	repo := NewRosterRepository(client)

	page, err := repo.List(context.Background(), "tok", models.RosterFilter{ScholarshipConfigurationID: 3, Status: "completed", Page: 1, Size: 20})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.RosterStatusCompleted, page.Items[0].Status)
	assert.Equal(t, "page=1&scholarship_configuration_id=3&size=20&status=completed", captured.query)
}

func TestUserRepositoryDeleteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	repo := NewUserRepository(apiclient.New(apiclient.Config{BaseURL: base}))
	err := repo.Delete(context.Background(), "tok", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrBackendUnavailable)
	assert.Equal(t, http.StatusBadGateway, appErrors.FromError(err).Status)
}

func TestUserRepositoryReplacePermissions(t *testing.T) {
	client, captured := newBackend(t, 200, `{"success":true,"data":[{"id":1,"user_id":7,"scholarship_id":2}]}`)
	repo := NewUserRepository(client)

	perms, err := repo.ReplaceScholarshipPermissions(context.Background(), "tok", 7, dto.UpdateScholarshipPermissionsRequest{ScholarshipIDs: []int{2}})
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, http.MethodPut, captured.method)
	assert.Equal(t, "/api/v1/admin/scholarship-permissions/users/7", captured.path)
	assert.Equal(t, []any{float64(2)}, captured.body["scholarship_ids"])
}

func TestRosterRepositoryDownloadErrorStatus(t *testing.T) {
	client, _ := newBackend(t, 404, `{"detail":"Roster not found"}`)
	repo := NewRosterRepository(client)

	_, err := repo.Download(context.Background(), "tok", 9, "excel")
	require.Error(t, err)
	assert.Equal(t, "Roster not found", appErrors.FromError(err).Message)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestFetchEmptyDataIsZeroValue(t *testing.T) {
	client, _ := newBackend(t, 200, `{"success":true,"data":null,"message":"nothing"}`)
	repo := NewAuditTrailRepository(client)
	entries, err := repo.ForApplication(context.Background(), "tok", 3)
	require.NoError(t, err)
	assert.Nil(t, entries)
}
