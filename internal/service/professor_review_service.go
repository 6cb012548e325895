package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type professorApplicationRepository interface {
	ListForProfessor(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error)
	ReviewableSubTypes(ctx context.Context, token string, id int) ([]models.SubTypeReviewOption, error)
	SubmitProfessorReview(ctx context.Context, token string, id int, req dto.ProfessorReviewRequest) (map[string]any, error)
}

// ProfessorReviewService handles professor recommendations.
type ProfessorReviewService struct {
	repo      professorApplicationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfessorReviewService constructs a ProfessorReviewService.
func NewProfessorReviewService(repo professorApplicationRepository, validate *validator.Validate, logger *zap.Logger) *ProfessorReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProfessorReviewService{repo: repo, validator: validate, logger: logger}
}

// ListApplications lists applications awaiting the professor.
func (s *ProfessorReviewService) ListApplications(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error) {
	return s.repo.ListForProfessor(ctx, token, filter)
}

// SubTypes lists the sub-types the professor may recommend for.
func (s *ProfessorReviewService) SubTypes(ctx context.Context, token string, id int) ([]models.SubTypeReviewOption, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid application id")
	}
	return s.repo.ReviewableSubTypes(ctx, token, id)
}

// Submit sends a recommendation. Each sub-type may appear once and must be
// one the backend offered for the application.
func (s *ProfessorReviewService) Submit(ctx context.Context, token string, id int, req dto.ProfessorReviewRequest) (map[string]any, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid application id")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	options, err := s.repo.ReviewableSubTypes(ctx, token, id)
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]struct{}, len(options))
	for _, opt := range options {
		allowed[opt.Value] = struct{}{}
	}
	seen := make(map[string]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, dup := seen[item.SubTypeCode]; dup {
			return nil, appErrors.Clone(appErrors.ErrValidation, "duplicate sub-type "+item.SubTypeCode)
		}
		seen[item.SubTypeCode] = struct{}{}
		if len(allowed) > 0 {
			if _, ok := allowed[item.SubTypeCode]; !ok {
				return nil, appErrors.Clone(appErrors.ErrValidation, "sub-type not reviewable: "+item.SubTypeCode)
			}
		}
	}

	result, err := s.repo.SubmitProfessorReview(ctx, token, id, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("professor review submitted", zap.Int("application_id", id), zap.Int("items", len(req.Items)))
	return result, nil
}
