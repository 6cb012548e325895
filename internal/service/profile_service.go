package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type profileRepository interface {
	GetMine(ctx context.Context, token string) (*models.Profile, error)
	UpdateMine(ctx context.Context, token string, partial map[string]any) (*models.RawUser, error)
}

var editableProfileFields = map[string]struct{}{
	"name":               {},
	"email":              {},
	"phone":              {},
	"address":            {},
	"bank_code":          {},
	"account_number":     {},
	"advisor_name":       {},
	"advisor_email":      {},
	"advisor_nycu_id":    {},
	"preferred_language": {},
}

// ProfileService reads and updates the caller's own profile.
type ProfileService struct {
	repo      profileRepository
	validator *validator.Validate
}

// NewProfileService constructs a ProfileService.
func NewProfileService(repo profileRepository, validate *validator.Validate) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	return &ProfileService{repo: repo, validator: validate}
}

// GetMine returns the caller's profile.
func (s *ProfileService) GetMine(ctx context.Context, token string) (*models.Profile, error) {
	if token == "" {
		return nil, appErrors.ErrUnauthorized
	}
	return s.repo.GetMine(ctx, token)
}

// UpdateMine applies a partial update. Unknown fields are rejected so a
// caller cannot touch role or identity columns.
func (s *ProfileService) UpdateMine(ctx context.Context, token string, partial map[string]any) (*models.RawUser, error) {
	if token == "" {
		return nil, appErrors.ErrUnauthorized
	}
	if len(partial) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no profile fields to update")
	}
	for key, value := range partial {
		if _, ok := editableProfileFields[key]; !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("field %q cannot be updated", key))
		}
		if key == "email" || key == "advisor_email" {
			if err := s.validator.Var(value, "required,email"); err != nil {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("field %q must be an email address", key))
			}
		}
	}
	return s.repo.UpdateMine(ctx, token, partial)
}
