package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type stubUserRepo struct {
	replaced  []int
	deleted   int
	deleteErr error
}

func (s *stubUserRepo) List(context.Context, string, models.UserFilter) (models.PageResult[models.User], error) {
	return models.PageResult[models.User]{Items: []models.User{{ID: 1}}, Total: 1}, nil
}

func (s *stubUserRepo) Get(_ context.Context, _ string, id int) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (s *stubUserRepo) Create(_ context.Context, _ string, req dto.CreateUserRequest) (*models.User, error) {
	return &models.User{ID: 2, NYCUID: req.NYCUID}, nil
}

func (s *stubUserRepo) Update(_ context.Context, _ string, id int, _ dto.UpdateUserRequest) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (s *stubUserRepo) Delete(context.Context, string, int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted++
	return nil
}

func (s *stubUserRepo) ScholarshipPermissions(context.Context, string, int) ([]models.ScholarshipPermission, error) {
	return nil, nil
}

func (s *stubUserRepo) ReplaceScholarshipPermissions(_ context.Context, _ string, userID int, req dto.UpdateScholarshipPermissionsRequest) ([]models.ScholarshipPermission, error) {
	s.replaced = req.ScholarshipIDs
	perms := make([]models.ScholarshipPermission, 0, len(req.ScholarshipIDs))
	for _, id := range req.ScholarshipIDs {
		perms = append(perms, models.ScholarshipPermission{UserID: userID, ScholarshipID: id})
	}
	return perms, nil
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return nil
}

func TestUserManagementCreateValidates(t *testing.T) {
	svc := NewUserManagementService(&stubUserRepo{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), "tok", dto.CreateUserRequest{NYCUID: "u1", Name: "A", Email: "bad", Role: "admin"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Create(context.Background(), "tok", dto.CreateUserRequest{NYCUID: "u1", Name: "A", Email: "a@nycu.edu.tw", Role: "janitor"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	user, err := svc.Create(context.Background(), "tok", dto.CreateUserRequest{NYCUID: "u1", Name: "A", Email: "a@nycu.edu.tw", Role: "college"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.NYCUID)
}

func TestUserManagementRethrowsBackendErrors(t *testing.T) {
	repo := &stubUserRepo{deleteErr: appErrors.Backend(409, "user has applications")}
	svc := NewUserManagementService(repo, nil, nil, nil)

	err := svc.Delete(context.Background(), "tok", 4)
	require.Error(t, err)
	assert.Equal(t, "user has applications", appErrors.FromError(err).Message)
	assert.Equal(t, 409, appErrors.FromError(err).Status)
}

func TestUserManagementReplacesPermissionsAndInvalidates(t *testing.T) {
	repo := &stubUserRepo{}
	invalidator := &countingInvalidator{}
	svc := NewUserManagementService(repo, invalidator, nil, nil)

	perms, err := svc.UpdateScholarshipPermissions(context.Background(), "tok", 7, dto.UpdateScholarshipPermissionsRequest{ScholarshipIDs: []int{3, 1, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, repo.replaced)
	assert.Len(t, perms, 2)
	assert.Equal(t, 1, invalidator.calls)

	_, err = svc.UpdateScholarshipPermissions(context.Background(), "tok", 7, dto.UpdateScholarshipPermissionsRequest{ScholarshipIDs: []int{0}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestUserManagementListRejectsUnknownRole(t *testing.T) {
	svc := NewUserManagementService(&stubUserRepo{}, nil, nil, nil)
	_, err := svc.List(context.Background(), "tok", models.UserFilter{Role: "wizard"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	page, err := svc.List(context.Background(), "tok", models.UserFilter{Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

type stubRelationshipRepo struct{ created int }

func (s *stubRelationshipRepo) List(context.Context, string, models.RelationshipFilter) ([]models.ProfessorStudentRelationship, error) {
	return nil, nil
}

func (s *stubRelationshipRepo) Create(context.Context, string, dto.CreateRelationshipRequest) (*models.ProfessorStudentRelationship, error) {
	s.created++
	return &models.ProfessorStudentRelationship{ID: 1}, nil
}

func (s *stubRelationshipRepo) Update(_ context.Context, _ string, id int, _ dto.UpdateRelationshipRequest) (*models.ProfessorStudentRelationship, error) {
	return &models.ProfessorStudentRelationship{ID: id}, nil
}

func (s *stubRelationshipRepo) Delete(context.Context, string, int) error { return nil }

func TestRelationshipCreateValidation(t *testing.T) {
	repo := &stubRelationshipRepo{}
	svc := NewRelationshipService(repo, nil)

	_, err := svc.Create(context.Background(), "tok", dto.CreateRelationshipRequest{ProfessorID: 2, StudentID: 2, RelationshipType: "advisor"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Create(context.Background(), "tok", dto.CreateRelationshipRequest{ProfessorID: 2, StudentID: 3, RelationshipType: "friend"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Create(context.Background(), "tok", dto.CreateRelationshipRequest{ProfessorID: 2, StudentID: 3, RelationshipType: "advisor"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.created)

	assert.ErrorIs(t, svc.Delete(context.Background(), "tok", 0), appErrors.ErrValidation)
}

type stubEmailRepo struct{ actions []string }

func (s *stubEmailRepo) List(context.Context, string, models.ScheduledEmailFilter) (models.PageResult[models.ScheduledEmail], error) {
	return models.PageResult[models.ScheduledEmail]{}, nil
}

func (s *stubEmailRepo) Approve(_ context.Context, _ string, id int) (*models.ScheduledEmail, error) {
	s.actions = append(s.actions, "approve")
	return &models.ScheduledEmail{ID: id, Status: models.ScheduledEmailPending}, nil
}

func (s *stubEmailRepo) Cancel(_ context.Context, _ string, id int) (*models.ScheduledEmail, error) {
	s.actions = append(s.actions, "cancel")
	return &models.ScheduledEmail{ID: id, Status: models.ScheduledEmailCancelled}, nil
}

func TestEmailScheduleActions(t *testing.T) {
	repo := &stubEmailRepo{}
	svc := NewEmailScheduleService(repo, nil)

	_, err := svc.Approve(context.Background(), "tok", 0)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Approve(context.Background(), "tok", 3)
	require.NoError(t, err)
	email, err := svc.Cancel(context.Background(), "tok", 3)
	require.NoError(t, err)
	assert.Equal(t, models.ScheduledEmailCancelled, email.Status)
	assert.Equal(t, []string{"approve", "cancel"}, repo.actions)
}

type stubAuditTrailRepo struct{}

func (stubAuditTrailRepo) ForApplication(context.Context, string, int) ([]models.AuditTrailEntry, error) {
	return nil, nil
}

func (stubAuditTrailRepo) List(context.Context, string, models.AuditTrailFilter) (models.PageResult[models.AuditTrailEntry], error) {
	return models.PageResult[models.AuditTrailEntry]{}, nil
}

func TestAuditTrailReturnsEmptySlice(t *testing.T) {
	svc := NewAuditTrailService(stubAuditTrailRepo{})

	entries, err := svc.ApplicationTrail(context.Background(), "tok", 5)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, err = svc.ApplicationTrail(context.Background(), "tok", -1)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

type stubProfileRepo struct{ updates []map[string]any }

func (s *stubProfileRepo) GetMine(context.Context, string) (*models.Profile, error) {
	return &models.Profile{}, nil
}

func (s *stubProfileRepo) UpdateMine(_ context.Context, _ string, partial map[string]any) (*models.RawUser, error) {
	s.updates = append(s.updates, partial)
	return &models.RawUser{}, nil
}

func TestProfileUpdateMineRestrictsFields(t *testing.T) {
	repo := &stubProfileRepo{}
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.UpdateMine(ctx, "tok", map[string]any{"role": "super_admin"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.UpdateMine(ctx, "tok", map[string]any{"email": "not-an-email"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.UpdateMine(ctx, "tok", map[string]any{})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.UpdateMine(ctx, "", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.UpdateMine(ctx, "tok", map[string]any{"name": "Chen", "email": "chen@nycu.edu.tw"})
	require.NoError(t, err)
	assert.Len(t, repo.updates, 1)
}
