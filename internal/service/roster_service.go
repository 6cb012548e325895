package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type rosterRepository interface {
	List(ctx context.Context, token string, filter models.RosterFilter) (models.PageResult[models.PaymentRoster], error)
	Periods(ctx context.Context, token string, configurationID int) ([]models.RosterPeriod, error)
	Get(ctx context.Context, token string, id int) (*models.PaymentRoster, error)
	Generate(ctx context.Context, token string, req dto.GenerateRosterRequest) (*models.PaymentRoster, error)
	SetLocked(ctx context.Context, token string, id int, locked bool, reason string) (*models.PaymentRoster, error)
	Download(ctx context.Context, token string, id int, format string) (*apiclient.RawResponse, error)
	ActiveConfigurations(ctx context.Context, token, scholarshipCode string) ([]models.ScholarshipConfiguration, error)
}

var rosterDownloadFormats = map[string]struct{}{
	"xlsx": {},
	"csv":  {},
	"pdf":  {},
}

var statusDisplays = map[models.RosterStatus]models.StatusDisplay{
	models.RosterStatusDraft:      {Icon: "file", Badge: "outline", Label: "Draft", Action: models.RosterActionGenerate},
	models.RosterStatusWaiting:    {Icon: "clock", Badge: "secondary", Label: "Waiting", Action: models.RosterActionGenerate},
	models.RosterStatusProcessing: {Icon: "loader", Badge: "warning", Label: "Processing", Action: models.RosterActionNone},
	models.RosterStatusCompleted:  {Icon: "check-circle", Badge: "success", Label: "Completed", Action: models.RosterActionView},
	models.RosterStatusFailed:     {Icon: "x-circle", Badge: "destructive", Label: "Failed", Action: models.RosterActionRetry},
	models.RosterStatusLocked:     {Icon: "lock", Badge: "default", Label: "Locked", Action: models.RosterActionDownload},
}

// PeriodDisplay projects a roster status onto its badge. Unknown statuses
// render as a neutral badge with no action.
func PeriodDisplay(status models.RosterStatus) models.StatusDisplay {
	display, ok := statusDisplays[models.RosterStatus(strings.ToLower(string(status)))]
	if !ok {
		display = models.StatusDisplay{Icon: "help-circle", Badge: "outline", Label: "Unknown", Action: models.RosterActionNone}
	}
	display.Status = status
	return display
}

// CurrentPeriodLabel names the roster period containing now for a cycle:
// "2024-03" monthly, "2024-H1" semi-yearly, "2024" yearly.
func CurrentPeriodLabel(cycle models.RosterCycle, now time.Time) string {
	switch cycle {
	case models.RosterCycleYearly:
		return fmt.Sprintf("%d", now.Year())
	case models.RosterCycleSemiYearly:
		half := 1
		if now.Month() > time.June {
			half = 2
		}
		return fmt.Sprintf("%d-H%d", now.Year(), half)
	default:
		return fmt.Sprintf("%d-%02d", now.Year(), int(now.Month()))
	}
}

// PeriodView pairs a timeline period with its display projection.
type PeriodView struct {
	models.RosterPeriod
	Display models.StatusDisplay `json:"display"`
}

// RosterService forwards payment roster actions to the backend.
type RosterService struct {
	repo      rosterRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRosterService constructs a RosterService.
func NewRosterService(repo rosterRepository, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RosterService{repo: repo, validator: validate, logger: logger}
}

// ListPeriods returns the period timeline of a configuration with badges.
func (s *RosterService) ListPeriods(ctx context.Context, token string, configurationID int) ([]PeriodView, error) {
	if configurationID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "scholarship configuration is required")
	}
	periods, err := s.repo.Periods(ctx, token, configurationID)
	if err != nil {
		return nil, err
	}
	views := make([]PeriodView, len(periods))
	for i, p := range periods {
		views[i] = PeriodView{RosterPeriod: p, Display: PeriodDisplay(p.Status)}
	}
	return views, nil
}

// ListRosters lists generated rosters.
func (s *RosterService) ListRosters(ctx context.Context, token string, filter models.RosterFilter) (models.PageResult[models.PaymentRoster], error) {
	return s.repo.List(ctx, token, filter)
}

// GetRoster returns a roster with its items.
func (s *RosterService) GetRoster(ctx context.Context, token string, id int) (*models.PaymentRoster, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid roster id")
	}
	return s.repo.Get(ctx, token, id)
}

// Generate asks the backend to build a roster for a period.
func (s *RosterService) Generate(ctx context.Context, token string, req dto.GenerateRosterRequest) (*models.PaymentRoster, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	roster, err := s.repo.Generate(ctx, token, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("roster generated",
		zap.Int("configuration_id", req.ScholarshipConfigurationID),
		zap.String("period", req.PeriodLabel),
	)
	return roster, nil
}

// Lock locks a roster.
func (s *RosterService) Lock(ctx context.Context, token string, id int, reason string) (*models.PaymentRoster, error) {
	return s.setLocked(ctx, token, id, true, reason)
}

// Unlock unlocks a roster.
func (s *RosterService) Unlock(ctx context.Context, token string, id int, reason string) (*models.PaymentRoster, error) {
	return s.setLocked(ctx, token, id, false, reason)
}

func (s *RosterService) setLocked(ctx context.Context, token string, id int, locked bool, reason string) (*models.PaymentRoster, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid roster id")
	}
	if err := s.validator.Struct(dto.LockRosterRequest{Reason: reason}); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return s.repo.SetLocked(ctx, token, id, locked, reason)
}

// Download relays the backend roster file. Format defaults to xlsx.
func (s *RosterService) Download(ctx context.Context, token string, id int, format string) (*apiclient.RawResponse, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid roster id")
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "xlsx"
	}
	if _, ok := rosterDownloadFormats[format]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported roster format")
	}
	return s.repo.Download(ctx, token, id, format)
}

// ActiveConfigurations lists configurations eligible for roster generation.
func (s *RosterService) ActiveConfigurations(ctx context.Context, token, scholarshipCode string) ([]models.ScholarshipConfiguration, error) {
	return s.repo.ActiveConfigurations(ctx, token, scholarshipCode)
}
