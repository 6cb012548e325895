package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/pkg/jobs"
	"github.com/noah-isme/scholarship-portal-api/pkg/notify"
)

// JobTypeEmail is the queue job type for outbound notification mail.
const JobTypeEmail = "notification.email"

type mailSender interface {
	Send(ctx context.Context, msg notify.Message) error
}

type jobQueue interface {
	Handle(jobType string, h jobs.Handler)
	Enqueue(ctx context.Context, job jobs.Job) (string, error)
}

type jobRecorder interface {
	RecordJob(jobType, outcome string)
}

// NotificationService queues operator notifications and delivers them by mail.
type NotificationService struct {
	queue      jobQueue
	mailer     mailSender
	recipients []string
	enabled    bool
	metrics    jobRecorder
	logger     *zap.Logger
}

// NotificationConfig configures NotificationService.
type NotificationConfig struct {
	Enabled    bool
	Recipients []string
}

// NewNotificationService registers the mail handler on queue.
func NewNotificationService(queue jobQueue, mailer mailSender, cfg NotificationConfig, metrics jobRecorder, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &NotificationService{
		queue:      queue,
		mailer:     mailer,
		recipients: cfg.Recipients,
		enabled:    cfg.Enabled && queue != nil && mailer != nil,
		metrics:    metrics,
		logger:     logger,
	}
	if svc.enabled {
		queue.Handle(JobTypeEmail, svc.deliver)
	}
	return svc
}

// Notify enqueues a message for the configured recipients. It is a no-op
// when notifications are disabled.
func (s *NotificationService) Notify(ctx context.Context, subject, body string) (string, error) {
	if !s.enabled {
		s.logger.Debug("notification skipped", zap.String("subject", subject))
		return "", nil
	}
	if len(s.recipients) == 0 {
		return "", notify.ErrNoRecipients
	}
	msg := notify.Message{To: append([]string(nil), s.recipients...), Subject: subject, Body: body}
	return s.queue.Enqueue(ctx, jobs.Job{Type: JobTypeEmail, Payload: msg})
}

// OnFailure is the queue failure hook; it counts permanently failed jobs.
func (s *NotificationService) OnFailure(job jobs.Job, err error) {
	s.record(job.Type, "failed")
	s.logger.Error("notification dropped", zap.String("job_id", job.ID), zap.Error(err))
}

func (s *NotificationService) deliver(ctx context.Context, job jobs.Job) error {
	msg, ok := job.Payload.(notify.Message)
	if !ok {
		return jobs.Permanent(fmt.Errorf("notification job %s: unexpected payload %T", job.ID, job.Payload))
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.record(job.Type, "retry")
		if errors.Is(err, notify.ErrNoRecipients) {
			return jobs.Permanent(err)
		}
		return err
	}
	s.record(job.Type, "sent")
	return nil
}

func (s *NotificationService) record(jobType, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordJob(jobType, outcome)
	}
}
