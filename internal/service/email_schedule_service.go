package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type scheduledEmailRepository interface {
	List(ctx context.Context, token string, filter models.ScheduledEmailFilter) (models.PageResult[models.ScheduledEmail], error)
	Approve(ctx context.Context, token string, id int) (*models.ScheduledEmail, error)
	Cancel(ctx context.Context, token string, id int) (*models.ScheduledEmail, error)
}

// EmailScheduleService lets administrators review scheduled backend mail.
type EmailScheduleService struct {
	repo   scheduledEmailRepository
	logger *zap.Logger
}

// NewEmailScheduleService constructs an EmailScheduleService.
func NewEmailScheduleService(repo scheduledEmailRepository, logger *zap.Logger) *EmailScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailScheduleService{repo: repo, logger: logger}
}

// List returns scheduled emails.
func (s *EmailScheduleService) List(ctx context.Context, token string, filter models.ScheduledEmailFilter) (models.PageResult[models.ScheduledEmail], error) {
	return s.repo.List(ctx, token, filter)
}

// Approve releases a scheduled email.
func (s *EmailScheduleService) Approve(ctx context.Context, token string, id int) (*models.ScheduledEmail, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid email id")
	}
	email, err := s.repo.Approve(ctx, token, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("scheduled email approved", zap.Int("email_id", id))
	return email, nil
}

// Cancel cancels a scheduled email.
func (s *EmailScheduleService) Cancel(ctx context.Context, token string, id int) (*models.ScheduledEmail, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid email id")
	}
	email, err := s.repo.Cancel(ctx, token, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("scheduled email cancelled", zap.Int("email_id", id))
	return email, nil
}
