package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type relationshipRepository interface {
	List(ctx context.Context, token string, filter models.RelationshipFilter) ([]models.ProfessorStudentRelationship, error)
	Create(ctx context.Context, token string, req dto.CreateRelationshipRequest) (*models.ProfessorStudentRelationship, error)
	Update(ctx context.Context, token string, id int, req dto.UpdateRelationshipRequest) (*models.ProfessorStudentRelationship, error)
	Delete(ctx context.Context, token string, id int) error
}

// RelationshipService manages professor-student advising links.
type RelationshipService struct {
	repo      relationshipRepository
	validator *validator.Validate
}

// NewRelationshipService constructs a RelationshipService.
func NewRelationshipService(repo relationshipRepository, validate *validator.Validate) *RelationshipService {
	if validate == nil {
		validate = validator.New()
	}
	return &RelationshipService{repo: repo, validator: validate}
}

// List returns relationships.
func (s *RelationshipService) List(ctx context.Context, token string, filter models.RelationshipFilter) ([]models.ProfessorStudentRelationship, error) {
	return s.repo.List(ctx, token, filter)
}

// Create links a professor and a student.
func (s *RelationshipService) Create(ctx context.Context, token string, req dto.CreateRelationshipRequest) (*models.ProfessorStudentRelationship, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	if req.ProfessorID == req.StudentID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "professor and student must differ")
	}
	return s.repo.Create(ctx, token, req)
}

// Update changes relationship flags.
func (s *RelationshipService) Update(ctx context.Context, token string, id int, req dto.UpdateRelationshipRequest) (*models.ProfessorStudentRelationship, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid relationship id")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return s.repo.Update(ctx, token, id, req)
}

// Delete removes a relationship.
func (s *RelationshipService) Delete(ctx context.Context, token string, id int) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "invalid relationship id")
	}
	return s.repo.Delete(ctx, token, id)
}
