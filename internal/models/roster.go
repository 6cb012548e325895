package models

import "time"

// RosterStatus is the backend roster/period status. The gateway projects it
// for display only; transitions happen server side.
type RosterStatus string

const (
	RosterStatusDraft      RosterStatus = "draft"
	RosterStatusWaiting    RosterStatus = "waiting"
	RosterStatusProcessing RosterStatus = "processing"
	RosterStatusCompleted  RosterStatus = "completed"
	RosterStatusFailed     RosterStatus = "failed"
	RosterStatusLocked     RosterStatus = "locked"
)

// RosterCycle is the generation cadence of a scholarship configuration.
type RosterCycle string

const (
	RosterCycleMonthly    RosterCycle = "monthly"
	RosterCycleSemiYearly RosterCycle = "semi_yearly"
	RosterCycleYearly     RosterCycle = "yearly"
)

// PaymentRoster is a generated batch of approved recipients for a period.
type PaymentRoster struct {
	ID                         int          `json:"id"`
	RosterCode                 string       `json:"roster_code"`
	PeriodLabel                string       `json:"period_label"`
	ScholarshipConfigurationID int          `json:"scholarship_configuration_id"`
	RosterCycle                RosterCycle  `json:"roster_cycle,omitempty"`
	Status                     RosterStatus `json:"status"`
	QualifiedCount             int          `json:"qualified_count"`
	DisqualifiedCount          int          `json:"disqualified_count"`
	TotalAmount                float64      `json:"total_amount"`
	Items                      []RosterItem `json:"items,omitempty"`
	CreatedAt                  time.Time    `json:"created_at"`
	CompletedAt                *time.Time   `json:"completed_at,omitempty"`
	LockedAt                   *time.Time   `json:"locked_at,omitempty"`
}

// RosterItem is one recipient line.
type RosterItem struct {
	ApplicationID int     `json:"application_id"`
	StudentName   string  `json:"student_name"`
	StudentID     string  `json:"student_id"`
	BankAccount   string  `json:"bank_account,omitempty"`
	Amount        float64 `json:"amount"`
	IsQualified   bool    `json:"is_qualified"`
	Note          string  `json:"verification_message,omitempty"`
}

// RosterPeriod is one slot on the roster timeline.
type RosterPeriod struct {
	Label          string       `json:"label"`
	Status         RosterStatus `json:"status"`
	RosterID       *int         `json:"roster_id,omitempty"`
	RosterCode     string       `json:"roster_code,omitempty"`
	QualifiedCount int          `json:"qualified_count"`
	TotalAmount    float64      `json:"total_amount"`
	NextRunAt      *time.Time   `json:"next_run_at,omitempty"`
}

// RosterAction is the single affordance a period badge offers.
type RosterAction string

const (
	RosterActionNone     RosterAction = "none"
	RosterActionGenerate RosterAction = "generate"
	RosterActionRetry    RosterAction = "retry"
	RosterActionView     RosterAction = "view"
	RosterActionDownload RosterAction = "download"
)

// StatusDisplay is a best-effort projection of a roster status for badges.
type StatusDisplay struct {
	Status RosterStatus `json:"status"`
	Icon   string       `json:"icon"`
	Badge  string       `json:"badge"`
	Label  string       `json:"label"`
	Action RosterAction `json:"action"`
}

// RosterFilter narrows roster listings.
type RosterFilter struct {
	ScholarshipConfigurationID int
	Status                     string
	PeriodLabel                string
	Page                       int
	Size                       int
}

// ScholarshipConfiguration is the part of a backend scholarship
// configuration that drives roster generation.
type ScholarshipConfiguration struct {
	ID              int         `json:"id"`
	ConfigCode      string      `json:"config_code"`
	ScholarshipCode string      `json:"scholarship_type_code,omitempty"`
	AcademicYear    int         `json:"academic_year"`
	Semester        string      `json:"semester,omitempty"`
	RosterCycle     RosterCycle `json:"roster_cycle,omitempty"`
	IsActive        bool        `json:"is_active"`
}
