package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

const profilePath = "/user-profiles/me"

// ProfileRepository reads and updates the signed-in user's profile.
type ProfileRepository struct {
	client BackendClient
}

// NewProfileRepository constructs a ProfileRepository.
func NewProfileRepository(client BackendClient) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// GetMine returns the token owner's profile.
func (r *ProfileRepository) GetMine(ctx context.Context, token string) (*models.Profile, error) {
	return fetch[*models.Profile](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: profilePath, Token: token, Operation: "profile.get",
	})
}

// UpdateMine applies a partial update and returns the backend's user record.
func (r *ProfileRepository) UpdateMine(ctx context.Context, token string, partial map[string]any) (*models.RawUser, error) {
	return fetch[*models.RawUser](ctx, r.client, apiclient.Request{
		Method: http.MethodPut, Path: profilePath, Body: partial, Token: token, Operation: "profile.update",
	})
}
