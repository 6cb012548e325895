package models

import "time"

// RankingItemStatus reflects the backend distribution outcome for one entry.
type RankingItemStatus string

const (
	RankingItemPending    RankingItemStatus = "pending"
	RankingItemAllocated  RankingItemStatus = "allocated"
	RankingItemWaitlisted RankingItemStatus = "waitlisted"
	RankingItemRejected   RankingItemStatus = "rejected"
)

// Ranking is an ordered list of applications for one scholarship sub-type
// and academic period, against which a quota is applied.
type Ranking struct {
	ID                   int           `json:"id"`
	ScholarshipTypeID    int           `json:"scholarship_type_id"`
	SubTypeCode          string        `json:"sub_type_code"`
	RankingName          string        `json:"ranking_name,omitempty"`
	AcademicYear         int           `json:"academic_year"`
	Semester             string        `json:"semester,omitempty"`
	TotalQuota           int           `json:"total_quota"`
	AllocatedCount       int           `json:"allocated_count"`
	TotalApplications    int           `json:"total_applications"`
	IsFinalized          bool          `json:"is_finalized"`
	DistributionExecuted bool          `json:"distribution_executed"`
	Items                []RankingItem `json:"applications,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	FinalizedAt          *time.Time    `json:"finalized_at,omitempty"`
}

// RankingItem is one ranked application.
type RankingItem struct {
	Rank             int               `json:"rank_position"`
	ApplicationID    int               `json:"application_id"`
	AppID            string            `json:"app_id,omitempty"`
	StudentName      string            `json:"student_name"`
	StudentID        string            `json:"student_id"`
	Score            float64           `json:"total_score"`
	Status           RankingItemStatus `json:"status"`
	AllocatedSubType string            `json:"allocated_sub_type,omitempty"`
}

// RankingFilter narrows ranking listings.
type RankingFilter struct {
	ScholarshipTypeID int
	AcademicYear      int
	Semester          string
}

// QuotaStatus summarises quota use per sub-type.
type QuotaStatus struct {
	ScholarshipTypeID int    `json:"scholarship_type_id"`
	SubTypeCode       string `json:"sub_type_code"`
	CollegeCode       string `json:"college_code,omitempty"`
	TotalQuota        int    `json:"total_quota"`
	Used              int    `json:"used"`
	Remaining         int    `json:"remaining"`
}

// AcademicPeriod is a selectable year/semester for a scholarship type.
type AcademicPeriod struct {
	AcademicYear int    `json:"academic_year"`
	Semester     string `json:"semester,omitempty"`
	Label        string `json:"label"`
	IsCurrent    bool   `json:"is_current"`
}

// WorkflowSnapshot captures the college ranking workflow state for export.
type WorkflowSnapshot struct {
	GeneratedAt       time.Time     `json:"generated_at"`
	ScholarshipTypeID int           `json:"scholarship_type_id"`
	ScholarshipName   string        `json:"scholarship_name"`
	AcademicYear      int           `json:"academic_year"`
	Semester          string        `json:"semester,omitempty"`
	Rankings          []Ranking     `json:"rankings"`
	Quotas            []QuotaStatus `json:"quotas"`
}
