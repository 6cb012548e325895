package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

// ReferenceRepository loads scholarship reference data from the backend.
type ReferenceRepository struct {
	client BackendClient
}

// NewReferenceRepository constructs a ReferenceRepository.
func NewReferenceRepository(client BackendClient) *ReferenceRepository {
	return &ReferenceRepository{client: client}
}

// ListScholarships returns every scholarship type visible to the token.
func (r *ReferenceRepository) ListScholarships(ctx context.Context, token string) ([]models.Scholarship, error) {
	return fetch[[]models.Scholarship](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/scholarships", Token: token, Operation: "reference.scholarships",
	})
}

// SubTypeTranslations loads translations from the endpoint matching role.
// Admin and college reviewers read from different endpoints.
func (r *ReferenceRepository) SubTypeTranslations(ctx context.Context, token string, role models.Role) (models.SubTypeTranslations, error) {
	out, err := fetch[models.SubTypeTranslations](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: translationsPath(role), Token: token, Operation: "reference.sub_type_translations",
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = models.SubTypeTranslations{}
	}
	return out, nil
}

// CurrentUserPermissions returns the scholarship grants of the token owner.
func (r *ReferenceRepository) CurrentUserPermissions(ctx context.Context, token string) ([]models.ScholarshipPermission, error) {
	return fetch[[]models.ScholarshipPermission](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/admin/scholarship-permissions/current-user", Token: token, Operation: "reference.permissions",
	})
}

func translationsPath(role models.Role) string {
	switch role {
	case models.RoleAdmin, models.RoleSuperAdmin:
		return "/admin/scholarships/sub-type-translations"
	case models.RoleCollege:
		return "/college-review/sub-type-translations"
	default:
		return "/scholarships/sub-type-translations"
	}
}
