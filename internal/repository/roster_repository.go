package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

const rostersPath = "/payment-rosters"

// RosterRepository forwards payment roster calls to the backend.
type RosterRepository struct {
	client BackendClient
}

// NewRosterRepository constructs a RosterRepository.
func NewRosterRepository(client BackendClient) *RosterRepository {
	return &RosterRepository{client: client}
}

// List returns rosters matching filter.
func (r *RosterRepository) List(ctx context.Context, token string, filter models.RosterFilter) (models.PageResult[models.PaymentRoster], error) {
	q := newQuery().
		num("scholarship_configuration_id", filter.ScholarshipConfigurationID).
		str("status", filter.Status).
		str("period_label", filter.PeriodLabel).
		num("page", filter.Page).
		num("size", filter.Size)
	return fetch[models.PageResult[models.PaymentRoster]](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: rostersPath, Query: q.values(), Token: token, Operation: "roster.list",
	})
}

// Periods returns the roster timeline for a configuration.
func (r *RosterRepository) Periods(ctx context.Context, token string, configurationID int) ([]models.RosterPeriod, error) {
	q := newQuery().num("scholarship_configuration_id", configurationID)
	return fetch[[]models.RosterPeriod](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: rostersPath + "/periods", Query: q.values(), Token: token, Operation: "roster.periods",
	})
}

// Get returns a roster with its items.
func (r *RosterRepository) Get(ctx context.Context, token string, id int) (*models.PaymentRoster, error) {
	return fetch[*models.PaymentRoster](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: rostersPath + "/" + itoa(id), Token: token, Operation: "roster.get",
	})
}

// Generate asks the backend to generate a roster.
func (r *RosterRepository) Generate(ctx context.Context, token string, req dto.GenerateRosterRequest) (*models.PaymentRoster, error) {
	return fetch[*models.PaymentRoster](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: rostersPath + "/generate", Body: req, Token: token, Operation: "roster.generate",
	})
}

// SetLocked locks or unlocks a roster.
func (r *RosterRepository) SetLocked(ctx context.Context, token string, id int, locked bool, reason string) (*models.PaymentRoster, error) {
	action, op := "/unlock", "roster.unlock"
	if locked {
		action, op = "/lock", "roster.lock"
	}
	return fetch[*models.PaymentRoster](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: rostersPath + "/" + itoa(id) + action, Body: dto.LockRosterRequest{Reason: reason}, Token: token, Operation: op,
	})
}

// Download relays the backend-rendered roster file.
func (r *RosterRepository) Download(ctx context.Context, token string, id int, format string) (*apiclient.RawResponse, error) {
	q := newQuery().str("format", format)
	return download(ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: rostersPath + "/" + itoa(id) + "/export", Query: q.values(), Token: token, Operation: "roster.download",
	})
}

// ActiveConfigurations lists active configurations of a scholarship.
func (r *RosterRepository) ActiveConfigurations(ctx context.Context, token, scholarshipCode string) ([]models.ScholarshipConfiguration, error) {
	active := true
	q := newQuery().str("scholarship_type_code", scholarshipCode).flag("is_active", &active)
	return fetch[[]models.ScholarshipConfiguration](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/scholarship-configurations", Query: q.values(), Token: token, Operation: "roster.configurations",
	})
}
