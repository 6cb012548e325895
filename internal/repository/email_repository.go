package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

const scheduledEmailsPath = "/admin/scheduled-emails"

// EmailRepository forwards scheduled email administration to the backend.
type EmailRepository struct {
	client BackendClient
}

// NewEmailRepository constructs an EmailRepository.
func NewEmailRepository(client BackendClient) *EmailRepository {
	return &EmailRepository{client: client}
}

// List returns scheduled emails matching filter.
func (r *EmailRepository) List(ctx context.Context, token string, filter models.ScheduledEmailFilter) (models.PageResult[models.ScheduledEmail], error) {
	q := newQuery().
		str("status", filter.Status).
		str("scholarship_type", filter.ScholarshipType).
		flag("requires_approval", filter.RequiresApproval).
		num("page", filter.Page).
		num("size", filter.Size)
	return fetch[models.PageResult[models.ScheduledEmail]](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: scheduledEmailsPath, Query: q.values(), Token: token, Operation: "emails.list",
	})
}

// Approve approves a pending email for sending.
func (r *EmailRepository) Approve(ctx context.Context, token string, id int) (*models.ScheduledEmail, error) {
	return fetch[*models.ScheduledEmail](ctx, r.client, apiclient.Request{
		Method: http.MethodPatch, Path: scheduledEmailsPath + "/" + itoa(id) + "/approve", Token: token, Operation: "emails.approve",
	})
}

// Cancel cancels a pending email.
func (r *EmailRepository) Cancel(ctx context.Context, token string, id int) (*models.ScheduledEmail, error) {
	return fetch[*models.ScheduledEmail](ctx, r.client, apiclient.Request{
		Method: http.MethodPatch, Path: scheduledEmailsPath + "/" + itoa(id) + "/cancel", Token: token, Operation: "emails.cancel",
	})
}
