package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

const rankingsPath = "/college-review/rankings"

// RankingRepository forwards ranking and distribution calls to the backend.
type RankingRepository struct {
	client BackendClient
}

// NewRankingRepository constructs a RankingRepository.
func NewRankingRepository(client BackendClient) *RankingRepository {
	return &RankingRepository{client: client}
}

// List returns rankings matching filter.
func (r *RankingRepository) List(ctx context.Context, token string, filter models.RankingFilter) ([]models.Ranking, error) {
	q := newQuery().
		num("scholarship_type_id", filter.ScholarshipTypeID).
		num("academic_year", filter.AcademicYear).
		str("semester", filter.Semester)
	return fetch[[]models.Ranking](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: rankingsPath, Query: q.values(), Token: token, Operation: "ranking.list",
	})
}

// Get returns one ranking with its ordered items.
func (r *RankingRepository) Get(ctx context.Context, token string, id int) (*models.Ranking, error) {
	return fetch[*models.Ranking](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: rankingsPath + "/" + itoa(id), Token: token, Operation: "ranking.get",
	})
}

// Create creates a ranking.
func (r *RankingRepository) Create(ctx context.Context, token string, req dto.CreateRankingRequest) (*models.Ranking, error) {
	return fetch[*models.Ranking](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: rankingsPath, Body: req, Token: token, Operation: "ranking.create",
	})
}

// UpdateOrder reorders ranking items.
func (r *RankingRepository) UpdateOrder(ctx context.Context, token string, id int, items []dto.RankingOrderItem) (*models.Ranking, error) {
	return fetch[*models.Ranking](ctx, r.client, apiclient.Request{
		Method: http.MethodPut, Path: rankingsPath + "/" + itoa(id) + "/order", Body: items, Token: token, Operation: "ranking.order",
	})
}

// ExecuteDistribution runs quota distribution on the backend.
func (r *RankingRepository) ExecuteDistribution(ctx context.Context, token string, id int, req dto.ExecuteDistributionRequest) (map[string]any, error) {
	return fetch[map[string]any](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: rankingsPath + "/" + itoa(id) + "/distribute", Body: req, Token: token, Operation: "ranking.distribute",
	})
}

// Finalize locks a ranking.
func (r *RankingRepository) Finalize(ctx context.Context, token string, id int) (*models.Ranking, error) {
	return fetch[*models.Ranking](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: rankingsPath + "/" + itoa(id) + "/finalize", Token: token, Operation: "ranking.finalize",
	})
}

// QuotaStatus reports quota usage for a scholarship period.
func (r *RankingRepository) QuotaStatus(ctx context.Context, token string, filter models.RankingFilter) ([]models.QuotaStatus, error) {
	q := newQuery().
		num("scholarship_type_id", filter.ScholarshipTypeID).
		num("academic_year", filter.AcademicYear).
		str("semester", filter.Semester)
	return fetch[[]models.QuotaStatus](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/college-review/quota-status", Query: q.values(), Token: token, Operation: "ranking.quota_status",
	})
}

// AvailablePeriods lists academic periods offered for a scholarship type.
func (r *RankingRepository) AvailablePeriods(ctx context.Context, token, scholarshipType string) ([]models.AcademicPeriod, error) {
	q := newQuery().str("scholarship_type", scholarshipType)
	return fetch[[]models.AcademicPeriod](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/college-review/available-periods", Query: q.values(), Token: token, Operation: "ranking.periods",
	})
}
