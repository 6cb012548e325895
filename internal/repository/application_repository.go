package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

// ApplicationRepository forwards application review actions to the backend.
type ApplicationRepository struct {
	client BackendClient
}

// NewApplicationRepository constructs an ApplicationRepository.
func NewApplicationRepository(client BackendClient) *ApplicationRepository {
	return &ApplicationRepository{client: client}
}

// ListForCollege lists applications awaiting college review.
func (r *ApplicationRepository) ListForCollege(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error) {
	q := newQuery().
		str("scholarship_type", filter.ScholarshipType).
		num("academic_year", filter.AcademicYear).
		str("semester", filter.Semester).
		str("status", filter.Status)
	return fetch[[]models.Application](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/college-review/applications", Query: q.values(), Token: token, Operation: "college.list_applications",
	})
}

// CollegeReview records an approve or reject decision.
func (r *ApplicationRepository) CollegeReview(ctx context.Context, token string, id int, recommendation, comments string) (*models.Application, error) {
	body := map[string]string{"recommendation": recommendation, "review_comments": comments}
	return fetch[*models.Application](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: "/college-review/applications/" + itoa(id) + "/review", Body: body, Token: token, Operation: "college.review",
	})
}

// RequestDocuments asks the applicant for more documents.
func (r *ApplicationRepository) RequestDocuments(ctx context.Context, token string, id int, req dto.RequestDocumentsRequest) error {
	_, err := send(ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: "/applications/" + itoa(id) + "/request-documents", Body: req, Token: token, Operation: "college.request_documents",
	})
	return err
}

// ListForProfessor lists applications awaiting the professor's recommendation.
func (r *ApplicationRepository) ListForProfessor(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error) {
	q := newQuery().str("status_filter", filter.Status).num("page", filter.Page).num("size", filter.Size)
	return fetch[[]models.Application](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/professor/applications", Query: q.values(), Token: token, Operation: "professor.list_applications",
	})
}

// ReviewableSubTypes lists sub-types the professor can recommend for.
func (r *ApplicationRepository) ReviewableSubTypes(ctx context.Context, token string, id int) ([]models.SubTypeReviewOption, error) {
	return fetch[[]models.SubTypeReviewOption](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/professor/applications/" + itoa(id) + "/sub-types", Token: token, Operation: "professor.sub_types",
	})
}

// SubmitProfessorReview submits a professor recommendation.
func (r *ApplicationRepository) SubmitProfessorReview(ctx context.Context, token string, id int, req dto.ProfessorReviewRequest) (map[string]any, error) {
	return fetch[map[string]any](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: "/professor/applications/" + itoa(id) + "/review", Body: req, Token: token, Operation: "professor.review",
	})
}
