package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
)

type rosterGenerator interface {
	ActiveConfigurations(ctx context.Context, token, scholarshipCode string) ([]models.ScholarshipConfiguration, error)
	Generate(ctx context.Context, token string, req dto.GenerateRosterRequest) (*models.PaymentRoster, error)
}

type notifier interface {
	Notify(ctx context.Context, subject, body string) (string, error)
}

// RosterScheduleConfig configures RosterScheduler.
type RosterScheduleConfig struct {
	Spec            string
	ServiceToken    string
	ScholarshipCode string
	RunTimeout      time.Duration
}

// RosterRun summarises one scheduled generation pass.
type RosterRun struct {
	Period    map[int]string
	Generated []string
	Failed    map[int]error
}

// RosterScheduler periodically asks the backend to generate rosters for the
// current period of every active scholarship configuration.
type RosterScheduler struct {
	cron     *cron.Cron
	rosters  rosterGenerator
	notifier notifier
	cfg      RosterScheduleConfig
	logger   *zap.Logger
	now      func() time.Time
	entry    cron.EntryID
}

// NewRosterScheduler validates the cron spec and registers the job.
func NewRosterScheduler(rosters rosterGenerator, notifier notifier, cfg RosterScheduleConfig, logger *zap.Logger) (*RosterScheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Spec == "" {
		cfg.Spec = "0 2 1 * *"
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 5 * time.Minute
	}
	cronLogger := zapCronLogger{logger: logger.Sugar()}
	s := &RosterScheduler{
		cron:     cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.SkipIfStillRunning(cronLogger))),
		rosters:  rosters,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
	id, err := s.cron.AddFunc(cfg.Spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RunTimeout)
		defer cancel()
		s.Run(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("register roster schedule %q: %w", cfg.Spec, err)
	}
	s.entry = id
	return s, nil
}

// Start begins the cron loop.
func (s *RosterScheduler) Start() {
	s.cron.Start()
	s.logger.Info("roster schedule started", zap.String("spec", s.cfg.Spec), zap.Time("next_run", s.NextRun()))
}

// Stop halts the cron loop and waits for a running pass to finish.
func (s *RosterScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// NextRun reports when the job fires next; zero before Start.
func (s *RosterScheduler) NextRun() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Run generates rosters for the current period and notifies the outcome.
func (s *RosterScheduler) Run(ctx context.Context) RosterRun {
	run := RosterRun{Period: map[int]string{}, Failed: map[int]error{}}

	configs, err := s.rosters.ActiveConfigurations(ctx, s.cfg.ServiceToken, s.cfg.ScholarshipCode)
	if err != nil {
		s.logger.Error("roster schedule: list configurations failed", zap.Error(err))
		s.notify(ctx, "Roster schedule failed", fmt.Sprintf("Could not list scholarship configurations: %v", err))
		return run
	}

	now := s.now()
	for _, cfg := range configs {
		label := CurrentPeriodLabel(cfg.RosterCycle, now)
		run.Period[cfg.ID] = label
		roster, err := s.rosters.Generate(ctx, s.cfg.ServiceToken, dto.GenerateRosterRequest{
			ScholarshipConfigurationID: cfg.ID,
			PeriodLabel:                label,
			RosterCycle:                string(cfg.RosterCycle),
			AcademicYear:               cfg.AcademicYear,
			StudentVerificationEnabled: true,
		})
		if err != nil {
			run.Failed[cfg.ID] = err
			s.logger.Warn("roster schedule: generate failed",
				zap.Int("configuration_id", cfg.ID),
				zap.String("period", label),
				zap.Error(err),
			)
			continue
		}
		code := label
		if roster != nil && roster.RosterCode != "" {
			code = roster.RosterCode
		}
		run.Generated = append(run.Generated, code)
	}

	if len(configs) > 0 {
		s.notify(ctx, rosterRunSubject(run), rosterRunBody(run))
	}
	return run
}

func (s *RosterScheduler) notify(ctx context.Context, subject, body string) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Notify(ctx, subject, body); err != nil {
		s.logger.Warn("roster schedule: notification not queued", zap.Error(err))
	}
}

func rosterRunSubject(run RosterRun) string {
	if len(run.Failed) > 0 {
		return fmt.Sprintf("Roster schedule: %d generated, %d failed", len(run.Generated), len(run.Failed))
	}
	return fmt.Sprintf("Roster schedule: %d generated", len(run.Generated))
}

func rosterRunBody(run RosterRun) string {
	var b strings.Builder
	for _, code := range run.Generated {
		fmt.Fprintf(&b, "generated %s\n", code)
	}
	for id, err := range run.Failed {
		fmt.Fprintf(&b, "configuration %d (%s) failed: %v\n", id, run.Period[id], err)
	}
	return b.String()
}

type zapCronLogger struct {
	logger *zap.SugaredLogger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw("cron: "+msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
