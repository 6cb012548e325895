package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

const relationshipsPath = "/professor-student"

// RelationshipRepository forwards professor-student relationship calls.
type RelationshipRepository struct {
	client BackendClient
}

// NewRelationshipRepository constructs a RelationshipRepository.
func NewRelationshipRepository(client BackendClient) *RelationshipRepository {
	return &RelationshipRepository{client: client}
}

// List returns relationships matching filter.
func (r *RelationshipRepository) List(ctx context.Context, token string, filter models.RelationshipFilter) ([]models.ProfessorStudentRelationship, error) {
	q := newQuery().
		num("professor_id", filter.ProfessorID).
		num("student_id", filter.StudentID).
		str("relationship_type", filter.RelationshipType)
	if filter.ActiveOnly {
		active := true
		q = q.flag("is_active", &active)
	}
	return fetch[[]models.ProfessorStudentRelationship](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: relationshipsPath, Query: q.values(), Token: token, Operation: "relationships.list",
	})
}

// Create creates a relationship.
func (r *RelationshipRepository) Create(ctx context.Context, token string, req dto.CreateRelationshipRequest) (*models.ProfessorStudentRelationship, error) {
	return fetch[*models.ProfessorStudentRelationship](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: relationshipsPath, Body: req, Token: token, Operation: "relationships.create",
	})
}

// Update updates a relationship.
func (r *RelationshipRepository) Update(ctx context.Context, token string, id int, req dto.UpdateRelationshipRequest) (*models.ProfessorStudentRelationship, error) {
	return fetch[*models.ProfessorStudentRelationship](ctx, r.client, apiclient.Request{
		Method: http.MethodPut, Path: relationshipsPath + "/" + itoa(id), Body: req, Token: token, Operation: "relationships.update",
	})
}

// Delete removes a relationship.
func (r *RelationshipRepository) Delete(ctx context.Context, token string, id int) error {
	_, err := send(ctx, r.client, apiclient.Request{
		Method: http.MethodDelete, Path: relationshipsPath + "/" + itoa(id), Token: token, Operation: "relationships.delete",
	})
	return err
}
