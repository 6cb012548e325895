package models

import "time"

// ScheduledEmailStatus is owned by the backend.
type ScheduledEmailStatus string

const (
	ScheduledEmailPending   ScheduledEmailStatus = "pending"
	ScheduledEmailSent      ScheduledEmailStatus = "sent"
	ScheduledEmailCancelled ScheduledEmailStatus = "cancelled"
	ScheduledEmailFailed    ScheduledEmailStatus = "failed"
)

// ScheduledEmail is an outgoing notification awaiting administrator approval.
type ScheduledEmail struct {
	ID               int                  `json:"id"`
	Recipient        string               `json:"recipient_email"`
	Subject          string               `json:"subject"`
	Body             string               `json:"body,omitempty"`
	ScheduledFor     time.Time            `json:"scheduled_for"`
	Status           ScheduledEmailStatus `json:"status"`
	RequiresApproval bool                 `json:"requires_approval"`
	ApprovedBy       *int                 `json:"approved_by_user_id,omitempty"`
	ScholarshipType  string               `json:"scholarship_type,omitempty"`
	EmailCategory    string               `json:"email_category,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

// ScheduledEmailFilter narrows scheduled email listings.
type ScheduledEmailFilter struct {
	Status           string
	ScholarshipType  string
	RequiresApproval *bool
	Page             int
	Size             int
}
