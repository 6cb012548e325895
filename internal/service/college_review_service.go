package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type collegeApplicationRepository interface {
	ListForCollege(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error)
	CollegeReview(ctx context.Context, token string, id int, recommendation, comments string) (*models.Application, error)
	RequestDocuments(ctx context.Context, token string, id int, req dto.RequestDocumentsRequest) error
}

type rankingRepository interface {
	List(ctx context.Context, token string, filter models.RankingFilter) ([]models.Ranking, error)
	Get(ctx context.Context, token string, id int) (*models.Ranking, error)
	Create(ctx context.Context, token string, req dto.CreateRankingRequest) (*models.Ranking, error)
	UpdateOrder(ctx context.Context, token string, id int, items []dto.RankingOrderItem) (*models.Ranking, error)
	ExecuteDistribution(ctx context.Context, token string, id int, req dto.ExecuteDistributionRequest) (map[string]any, error)
	Finalize(ctx context.Context, token string, id int) (*models.Ranking, error)
	QuotaStatus(ctx context.Context, token string, filter models.RankingFilter) ([]models.QuotaStatus, error)
	AvailablePeriods(ctx context.Context, token, scholarshipType string) ([]models.AcademicPeriod, error)
}

type scholarshipNamer interface {
	Catalog(ctx context.Context, token string, role models.Role) (*models.ScholarshipCatalog, error)
}

// CollegeReviewService drives the college review, ranking and distribution
// workflow. Business rules live in the backend; this service validates
// payloads and forwards actions.
type CollegeReviewService struct {
	applications collegeApplicationRepository
	rankings     rankingRepository
	reference    scholarshipNamer
	validator    *validator.Validate
	logger       *zap.Logger
	now          func() time.Time
}

// NewCollegeReviewService constructs a CollegeReviewService.
func NewCollegeReviewService(applications collegeApplicationRepository, rankings rankingRepository, reference scholarshipNamer, validate *validator.Validate, logger *zap.Logger) *CollegeReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CollegeReviewService{
		applications: applications,
		rankings:     rankings,
		reference:    reference,
		validator:    validate,
		logger:       logger,
		now:          time.Now,
	}
}

// ListApplications lists applications pending college review.
func (s *CollegeReviewService) ListApplications(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error) {
	return s.applications.ListForCollege(ctx, token, filter)
}

// Approve approves an application.
func (s *CollegeReviewService) Approve(ctx context.Context, token string, id int, req dto.ApproveApplicationRequest) (*models.Application, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid application id")
	}
	app, err := s.applications.CollegeReview(ctx, token, id, "approve", req.Comment)
	if err != nil {
		return nil, err
	}
	s.logger.Info("application approved", zap.Int("application_id", id))
	return app, nil
}

// Reject rejects an application with a reason.
func (s *CollegeReviewService) Reject(ctx context.Context, token string, id int, req dto.RejectApplicationRequest) (*models.Application, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid application id")
	}
	app, err := s.applications.CollegeReview(ctx, token, id, "reject", req.Reason)
	if err != nil {
		return nil, err
	}
	s.logger.Info("application rejected", zap.Int("application_id", id))
	return app, nil
}

// RequestDocuments asks the applicant for more documents.
func (s *CollegeReviewService) RequestDocuments(ctx context.Context, token string, id int, req dto.RequestDocumentsRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "invalid application id")
	}
	return s.applications.RequestDocuments(ctx, token, id, req)
}

// ListRankings lists rankings for a scholarship period.
func (s *CollegeReviewService) ListRankings(ctx context.Context, token string, filter models.RankingFilter) ([]models.Ranking, error) {
	return s.rankings.List(ctx, token, filter)
}

// GetRanking returns a ranking.
func (s *CollegeReviewService) GetRanking(ctx context.Context, token string, id int) (*models.Ranking, error) {
	if id <= 0 {
		return nil, appErrors.ErrRankingNotSelected
	}
	return s.rankings.Get(ctx, token, id)
}

// CreateRanking creates a ranking.
func (s *CollegeReviewService) CreateRanking(ctx context.Context, token string, req dto.CreateRankingRequest) (*models.Ranking, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	return s.rankings.Create(ctx, token, req)
}

// UpdateRankingOrder reorders a ranking. Positions must be unique.
func (s *CollegeReviewService) UpdateRankingOrder(ctx context.Context, token string, id int, req dto.UpdateRankingOrderRequest) (*models.Ranking, error) {
	if id <= 0 {
		return nil, appErrors.ErrRankingNotSelected
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	seen := make(map[int]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, dup := seen[item.Position]; dup {
			return nil, appErrors.Clone(appErrors.ErrValidation, "duplicate rank position")
		}
		seen[item.Position] = struct{}{}
	}
	return s.rankings.UpdateOrder(ctx, token, id, req.Items)
}

// ExecuteDistribution runs quota distribution for the selected ranking.
func (s *CollegeReviewService) ExecuteDistribution(ctx context.Context, token string, id int, req dto.ExecuteDistributionRequest) (map[string]any, error) {
	if id <= 0 {
		return nil, appErrors.ErrRankingNotSelected
	}
	result, err := s.rankings.ExecuteDistribution(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("distribution executed", zap.Int("ranking_id", id))
	return result, nil
}

// FinalizeRanking finalizes the selected ranking.
func (s *CollegeReviewService) FinalizeRanking(ctx context.Context, token string, id int) (*models.Ranking, error) {
	if id <= 0 {
		return nil, appErrors.ErrRankingNotSelected
	}
	ranking, err := s.rankings.Finalize(ctx, token, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ranking finalized", zap.Int("ranking_id", id))
	return ranking, nil
}

// QuotaStatus reports quota usage.
func (s *CollegeReviewService) QuotaStatus(ctx context.Context, token string, filter models.RankingFilter) ([]models.QuotaStatus, error) {
	return s.rankings.QuotaStatus(ctx, token, filter)
}

// AvailablePeriods lists academic periods for a scholarship type.
func (s *CollegeReviewService) AvailablePeriods(ctx context.Context, token, scholarshipType string) ([]models.AcademicPeriod, error) {
	if scholarshipType == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "scholarship type is required")
	}
	return s.rankings.AvailablePeriods(ctx, token, scholarshipType)
}

// WorkflowSnapshot gathers rankings with items and quotas for a period, for
// JSON export.
func (s *CollegeReviewService) WorkflowSnapshot(ctx context.Context, token string, role models.Role, filter models.RankingFilter) (*models.WorkflowSnapshot, error) {
	if filter.ScholarshipTypeID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "scholarship type is required")
	}
	summaries, err := s.rankings.List(ctx, token, filter)
	if err != nil {
		return nil, err
	}
	rankings := make([]models.Ranking, 0, len(summaries))
	for _, summary := range summaries {
		full, err := s.rankings.Get(ctx, token, summary.ID)
		if err != nil {
			return nil, err
		}
		if full == nil {
			full = &summary
		}
		rankings = append(rankings, *full)
	}
	quotas, err := s.rankings.QuotaStatus(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	name := models.UnknownName
	if s.reference != nil {
		if catalog, err := s.reference.Catalog(ctx, token, role); err == nil {
			name = catalog.GetScholarshipName(filter.ScholarshipTypeID, models.LocaleZH)
		} else {
			s.logger.Warn("scholarship catalog unavailable for snapshot", zap.Error(err))
		}
	}

	return &models.WorkflowSnapshot{
		GeneratedAt:       s.now().UTC(),
		ScholarshipTypeID: filter.ScholarshipTypeID,
		ScholarshipName:   name,
		AcademicYear:      filter.AcademicYear,
		Semester:          filter.Semester,
		Rankings:          rankings,
		Quotas:            quotas,
	}, nil
}

func (s *CollegeReviewService) validate(payload interface{}) error {
	if err := s.validator.Struct(payload); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return nil
}
