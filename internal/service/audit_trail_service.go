package service

import (
	"context"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type auditTrailRepository interface {
	ForApplication(ctx context.Context, token string, applicationID int) ([]models.AuditTrailEntry, error)
	List(ctx context.Context, token string, filter models.AuditTrailFilter) (models.PageResult[models.AuditTrailEntry], error)
}

// AuditTrailService exposes the backend audit trail read-only.
type AuditTrailService struct {
	repo auditTrailRepository
}

// NewAuditTrailService constructs an AuditTrailService.
func NewAuditTrailService(repo auditTrailRepository) *AuditTrailService {
	return &AuditTrailService{repo: repo}
}

// ApplicationTrail returns the history of one application, oldest first as
// the backend orders it.
func (s *AuditTrailService) ApplicationTrail(ctx context.Context, token string, applicationID int) ([]models.AuditTrailEntry, error) {
	if applicationID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid application id")
	}
	entries, err := s.repo.ForApplication(ctx, token, applicationID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.AuditTrailEntry{}
	}
	return entries, nil
}

// List returns a page of system audit logs.
func (s *AuditTrailService) List(ctx context.Context, token string, filter models.AuditTrailFilter) (models.PageResult[models.AuditTrailEntry], error) {
	return s.repo.List(ctx, token, filter)
}
