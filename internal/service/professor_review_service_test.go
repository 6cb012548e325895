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

type stubProfessorRepo struct {
	options   []models.SubTypeReviewOption
	submitted int
}

func (s *stubProfessorRepo) ListForProfessor(context.Context, string, models.ApplicationFilter) ([]models.Application, error) {
	return nil, nil
}

func (s *stubProfessorRepo) ReviewableSubTypes(context.Context, string, int) ([]models.SubTypeReviewOption, error) {
	return s.options, nil
}

func (s *stubProfessorRepo) SubmitProfessorReview(context.Context, string, int, dto.ProfessorReviewRequest) (map[string]any, error) {
	s.submitted++
	return map[string]any{"ok": true}, nil
}

func TestProfessorReviewSubmitChecksSubTypes(t *testing.T) {
	repo := &stubProfessorRepo{options: []models.SubTypeReviewOption{{Value: "nstc"}, {Value: "moe_1w"}}}
	svc := NewProfessorReviewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "tok", 7, dto.ProfessorReviewRequest{Items: []dto.ProfessorReviewItem{
		{SubTypeCode: "other", Recommendation: "approve"},
	}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Submit(ctx, "tok", 7, dto.ProfessorReviewRequest{Items: []dto.ProfessorReviewItem{
		{SubTypeCode: "nstc", Recommendation: "approve"},
		{SubTypeCode: "nstc", Recommendation: "reject"},
	}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Submit(ctx, "tok", 7, dto.ProfessorReviewRequest{Items: []dto.ProfessorReviewItem{
		{SubTypeCode: "nstc", Recommendation: "maybe"},
	}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Zero(t, repo.submitted)

	result, err := svc.Submit(ctx, "tok", 7, dto.ProfessorReviewRequest{Items: []dto.ProfessorReviewItem{
		{SubTypeCode: "nstc", Recommendation: "approve"},
		{SubTypeCode: "moe_1w", Recommendation: "reject", Comments: "gpa"},
	}})
	require.NoError(t, err)
	assert.Equal(t, true, result["ok"])
	assert.Equal(t, 1, repo.submitted)
}

func TestProfessorReviewRejectsInvalidID(t *testing.T) {
	svc := NewProfessorReviewService(&stubProfessorRepo{}, nil, nil)
	_, err := svc.SubTypes(context.Background(), "tok", 0)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
