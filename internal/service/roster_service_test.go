package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type stubRosterRepo struct {
	mu        sync.Mutex
	configs   []models.ScholarshipConfiguration
	configErr error
	failFor   map[int]error
	generated []dto.GenerateRosterRequest
	locks     []bool
	formats   []string
	periods   []models.RosterPeriod
}

func (s *stubRosterRepo) List(context.Context, string, models.RosterFilter) (models.PageResult[models.PaymentRoster], error) {
	return models.PageResult[models.PaymentRoster]{}, nil
}

func (s *stubRosterRepo) Periods(context.Context, string, int) ([]models.RosterPeriod, error) {
	return s.periods, nil
}

func (s *stubRosterRepo) Get(_ context.Context, _ string, id int) (*models.PaymentRoster, error) {
	return &models.PaymentRoster{ID: id}, nil
}

func (s *stubRosterRepo) Generate(_ context.Context, _ string, req dto.GenerateRosterRequest) (*models.PaymentRoster, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failFor[req.ScholarshipConfigurationID]; err != nil {
		return nil, err
	}
	s.generated = append(s.generated, req)
	return &models.PaymentRoster{RosterCode: "R-" + req.PeriodLabel}, nil
}

func (s *stubRosterRepo) SetLocked(_ context.Context, _ string, id int, locked bool, _ string) (*models.PaymentRoster, error) {
	s.locks = append(s.locks, locked)
	return &models.PaymentRoster{ID: id}, nil
}

func (s *stubRosterRepo) Download(_ context.Context, _ string, _ int, format string) (*apiclient.RawResponse, error) {
	s.formats = append(s.formats, format)
	return &apiclient.RawResponse{StatusCode: 200, Body: []byte("x")}, nil
}

func (s *stubRosterRepo) ActiveConfigurations(context.Context, string, string) ([]models.ScholarshipConfiguration, error) {
	return s.configs, s.configErr
}

func TestPeriodDisplayProjection(t *testing.T) {
	cases := map[models.RosterStatus]models.RosterAction{
		models.RosterStatusDraft:      models.RosterActionGenerate,
		models.RosterStatusWaiting:    models.RosterActionGenerate,
		models.RosterStatusProcessing: models.RosterActionNone,
		models.RosterStatusCompleted:  models.RosterActionView,
		models.RosterStatusFailed:     models.RosterActionRetry,
		models.RosterStatusLocked:     models.RosterActionDownload,
	}
	for status, action := range cases {
		display := PeriodDisplay(status)
		assert.Equal(t, status, display.Status)
		assert.Equal(t, action, display.Action, status)
		assert.NotEmpty(t, display.Icon)
		assert.NotEmpty(t, display.Badge)
	}

	assert.Equal(t, models.RosterActionRetry, PeriodDisplay("FAILED").Action)
	unknown := PeriodDisplay("archived")
	assert.Equal(t, models.RosterActionNone, unknown.Action)
	assert.Equal(t, models.RosterStatus("archived"), unknown.Status)
}

func TestCurrentPeriodLabel(t *testing.T) {
	march := time.Date(2024, time.March, 1, 2, 0, 0, 0, time.UTC)
	october := time.Date(2024, time.October, 1, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03", CurrentPeriodLabel(models.RosterCycleMonthly, march))
	assert.Equal(t, "2024-03", CurrentPeriodLabel("", march))
	assert.Equal(t, "2024-H1", CurrentPeriodLabel(models.RosterCycleSemiYearly, march))
	assert.Equal(t, "2024-H2", CurrentPeriodLabel(models.RosterCycleSemiYearly, october))
	assert.Equal(t, "2024", CurrentPeriodLabel(models.RosterCycleYearly, october))
}

func TestRosterServiceListPeriodsAddsDisplay(t *testing.T) {
	repo := &stubRosterRepo{periods: []models.RosterPeriod{
		{Label: "2024-01", Status: models.RosterStatusCompleted},
		{Label: "2024-02", Status: models.RosterStatusWaiting},
	}}
	svc := NewRosterService(repo, nil, nil)

	views, err := svc.ListPeriods(context.Background(), "tok", 4)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, models.RosterActionView, views[0].Display.Action)
	assert.Equal(t, models.RosterActionGenerate, views[1].Display.Action)

	_, err = svc.ListPeriods(context.Background(), "tok", 0)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestRosterServiceActions(t *testing.T) {
	repo := &stubRosterRepo{}
	svc := NewRosterService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "tok", dto.GenerateRosterRequest{PeriodLabel: "2024-03"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Generate(ctx, "tok", dto.GenerateRosterRequest{ScholarshipConfigurationID: 2, PeriodLabel: "2024-03"})
	require.NoError(t, err)

	_, err = svc.Lock(ctx, "tok", 5, "audit")
	require.NoError(t, err)
	_, err = svc.Unlock(ctx, "tok", 5, "")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, repo.locks)

	_, err = svc.Download(ctx, "tok", 5, "")
	require.NoError(t, err)
	_, err = svc.Download(ctx, "tok", 5, "PDF")
	require.NoError(t, err)
	_, err = svc.Download(ctx, "tok", 5, "docx")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, []string{"xlsx", "pdf"}, repo.formats)
}

type recordingNotifier struct {
	subjects []string
	bodies   []string
}

func (n *recordingNotifier) Notify(_ context.Context, subject, body string) (string, error) {
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
	return "job-1", nil
}

func TestRosterSchedulerRunGeneratesCurrentPeriods(t *testing.T) {
	repo := &stubRosterRepo{
		configs: []models.ScholarshipConfiguration{
			{ID: 1, RosterCycle: models.RosterCycleMonthly, AcademicYear: 113},
			{ID: 2, RosterCycle: models.RosterCycleSemiYearly, AcademicYear: 113},
			{ID: 3, RosterCycle: models.RosterCycleYearly, AcademicYear: 113},
		},
		failFor: map[int]error{3: errors.New("quota missing")},
	}
	notifier := &recordingNotifier{}
	scheduler, err := NewRosterScheduler(repo, notifier, RosterScheduleConfig{ServiceToken: "svc", ScholarshipCode: "phd"}, nil)
	require.NoError(t, err)
	scheduler.now = func() time.Time { return time.Date(2024, time.August, 1, 2, 0, 0, 0, time.UTC) }

	run := scheduler.Run(context.Background())
	assert.Equal(t, []string{"R-2024-08", "R-2024-H2"}, run.Generated)
	require.Contains(t, run.Failed, 3)
	assert.Equal(t, "2024", run.Period[3])

	require.Len(t, repo.generated, 2)
	assert.True(t, repo.generated[0].StudentVerificationEnabled)
	assert.Equal(t, "semi_yearly", repo.generated[1].RosterCycle)

	require.Len(t, notifier.subjects, 1)
	assert.Equal(t, "Roster schedule: 2 generated, 1 failed", notifier.subjects[0])
	assert.Contains(t, notifier.bodies[0], "quota missing")
}

func TestRosterSchedulerReportsConfigurationFailure(t *testing.T) {
	repo := &stubRosterRepo{configErr: appErrors.ErrBackendUnavailable}
	notifier := &recordingNotifier{}
	scheduler, err := NewRosterScheduler(repo, notifier, RosterScheduleConfig{}, nil)
	require.NoError(t, err)

	run := scheduler.Run(context.Background())
	assert.Empty(t, run.Generated)
	assert.Equal(t, []string{"Roster schedule failed"}, notifier.subjects)
}

func TestRosterSchedulerRejectsInvalidSpec(t *testing.T) {
	_, err := NewRosterScheduler(&stubRosterRepo{}, nil, RosterScheduleConfig{Spec: "every now and then"}, nil)
	assert.Error(t, err)

	scheduler, err := NewRosterScheduler(&stubRosterRepo{}, nil, RosterScheduleConfig{Spec: "@every 1h"}, nil)
	require.NoError(t, err)
	scheduler.Start()
	defer scheduler.Stop()
	assert.WithinDuration(t, time.Now().Add(time.Hour), scheduler.NextRun(), time.Minute)
}
