package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context, token string, filter models.UserFilter) (models.PageResult[models.User], error)
	Get(ctx context.Context, token string, id int) (*models.User, error)
	Create(ctx context.Context, token string, req dto.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, token string, id int, req dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, token string, id int) error
	ScholarshipPermissions(ctx context.Context, token string, userID int) ([]models.ScholarshipPermission, error)
	ReplaceScholarshipPermissions(ctx context.Context, token string, userID int, req dto.UpdateScholarshipPermissionsRequest) ([]models.ScholarshipPermission, error)
}

type referenceInvalidator interface {
	Invalidate(ctx context.Context) error
}

// UserManagementService administers users and their scholarship grants.
// Backend failures on mutations are returned unchanged to the caller.
type UserManagementService struct {
	repo      userRepository
	reference referenceInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserManagementService constructs a UserManagementService.
func NewUserManagementService(repo userRepository, reference referenceInvalidator, validate *validator.Validate, logger *zap.Logger) *UserManagementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserManagementService{repo: repo, reference: reference, validator: validate, logger: logger}
}

// List returns a page of users.
func (s *UserManagementService) List(ctx context.Context, token string, filter models.UserFilter) (models.PageResult[models.User], error) {
	if filter.Role != "" && !models.ParseRole(filter.Role).Valid() {
		return models.PageResult[models.User]{}, appErrors.Clone(appErrors.ErrValidation, "unknown role filter")
	}
	return s.repo.List(ctx, token, filter)
}

// Get returns one user.
func (s *UserManagementService) Get(ctx context.Context, token string, id int) (*models.User, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid user id")
	}
	return s.repo.Get(ctx, token, id)
}

// Create creates a user.
func (s *UserManagementService) Create(ctx context.Context, token string, req dto.CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	user, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.String("nycu_id", req.NYCUID), zap.String("role", req.Role))
	return user, nil
}

// Update updates a user.
func (s *UserManagementService) Update(ctx context.Context, token string, id int, req dto.UpdateUserRequest) (*models.User, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid user id")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return s.repo.Update(ctx, token, id, req)
}

// Delete removes a user.
func (s *UserManagementService) Delete(ctx context.Context, token string, id int) error {
	if id <= 0 {
		return appErrors.Clone(appErrors.ErrValidation, "invalid user id")
	}
	if err := s.repo.Delete(ctx, token, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int("user_id", id))
	return nil
}

// GetScholarshipPermissions lists a user's grants.
func (s *UserManagementService) GetScholarshipPermissions(ctx context.Context, token string, userID int) ([]models.ScholarshipPermission, error) {
	if userID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid user id")
	}
	return s.repo.ScholarshipPermissions(ctx, token, userID)
}

// UpdateScholarshipPermissions replaces a user's grants with the given
// scholarship ids and drops cached permission data.
func (s *UserManagementService) UpdateScholarshipPermissions(ctx context.Context, token string, userID int, req dto.UpdateScholarshipPermissionsRequest) ([]models.ScholarshipPermission, error) {
	if userID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid user id")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	req.ScholarshipIDs = uniqueInts(req.ScholarshipIDs)
	perms, err := s.repo.ReplaceScholarshipPermissions(ctx, token, userID, req)
	if err != nil {
		return nil, err
	}
	if s.reference != nil {
		if err := s.reference.Invalidate(ctx); err != nil {
			s.logger.Warn("reference cache invalidation failed", zap.Error(err))
		}
	}
	return perms, nil
}

func uniqueInts(in []int) []int {
	out := make([]int, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
