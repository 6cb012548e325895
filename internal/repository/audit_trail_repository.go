package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

// AuditTrailRepository reads backend-recorded audit entries.
type AuditTrailRepository struct {
	client BackendClient
}

// NewAuditTrailRepository constructs an AuditTrailRepository.
func NewAuditTrailRepository(client BackendClient) *AuditTrailRepository {
	return &AuditTrailRepository{client: client}
}

// ForApplication returns the trail of one application.
func (r *AuditTrailRepository) ForApplication(ctx context.Context, token string, applicationID int) ([]models.AuditTrailEntry, error) {
	return fetch[[]models.AuditTrailEntry](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/applications/" + itoa(applicationID) + "/audit-trail", Token: token, Operation: "audit.application",
	})
}

// List returns the global audit trail.
func (r *AuditTrailRepository) List(ctx context.Context, token string, filter models.AuditTrailFilter) (models.PageResult[models.AuditTrailEntry], error) {
	q := newQuery().
		str("action", filter.Action).
		str("resource_type", filter.ResourceType).
		str("user_id", filter.UserID).
		num("page", filter.Page).
		num("size", filter.Size)
	return fetch[models.PageResult[models.AuditTrailEntry]](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/admin/audit-logs", Query: q.values(), Token: token, Operation: "audit.list",
	})
}
