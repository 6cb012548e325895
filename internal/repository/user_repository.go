package repository

import (
	"context"
	"net/http"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
)

// UserRepository forwards user and permission management to the backend.
type UserRepository struct {
	client BackendClient
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(client BackendClient) *UserRepository {
	return &UserRepository{client: client}
}

// List returns a page of users.
func (r *UserRepository) List(ctx context.Context, token string, filter models.UserFilter) (models.PageResult[models.User], error) {
	q := newQuery().
		str("role", filter.Role).
		str("search", filter.Search).
		num("page", filter.Page).
		num("size", filter.PageSize)
	return fetch[models.PageResult[models.User]](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/users", Query: q.values(), Token: token, Operation: "users.list",
	})
}

// Get returns a user by id.
func (r *UserRepository) Get(ctx context.Context, token string, id int) (*models.User, error) {
	return fetch[*models.User](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/users/" + itoa(id), Token: token, Operation: "users.get",
	})
}

// Create creates a user.
func (r *UserRepository) Create(ctx context.Context, token string, req dto.CreateUserRequest) (*models.User, error) {
	return fetch[*models.User](ctx, r.client, apiclient.Request{
		Method: http.MethodPost, Path: "/users", Body: req, Token: token, Operation: "users.create",
	})
}

// Update updates a user.
func (r *UserRepository) Update(ctx context.Context, token string, id int, req dto.UpdateUserRequest) (*models.User, error) {
	return fetch[*models.User](ctx, r.client, apiclient.Request{
		Method: http.MethodPut, Path: "/users/" + itoa(id), Body: req, Token: token, Operation: "users.update",
	})
}

// Delete removes a user.
func (r *UserRepository) Delete(ctx context.Context, token string, id int) error {
	_, err := send(ctx, r.client, apiclient.Request{
		Method: http.MethodDelete, Path: "/users/" + itoa(id), Token: token, Operation: "users.delete",
	})
	return err
}

// ScholarshipPermissions lists a user's scholarship grants.
func (r *UserRepository) ScholarshipPermissions(ctx context.Context, token string, userID int) ([]models.ScholarshipPermission, error) {
	q := newQuery().num("user_id", userID)
	return fetch[[]models.ScholarshipPermission](ctx, r.client, apiclient.Request{
		Method: http.MethodGet, Path: "/admin/scholarship-permissions", Query: q.values(), Token: token, Operation: "users.permissions",
	})
}

// ReplaceScholarshipPermissions replaces a user's grants.
func (r *UserRepository) ReplaceScholarshipPermissions(ctx context.Context, token string, userID int, req dto.UpdateScholarshipPermissionsRequest) ([]models.ScholarshipPermission, error) {
	body := map[string]any{"user_id": userID, "scholarship_ids": req.ScholarshipIDs, "comment": req.Comment}
	return fetch[[]models.ScholarshipPermission](ctx, r.client, apiclient.Request{
		Method: http.MethodPut, Path: "/admin/scholarship-permissions/users/" + itoa(userID), Body: body, Token: token, Operation: "users.replace_permissions",
	})
}
