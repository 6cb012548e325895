package models

import "time"

// ApplicationStatus is owned by the backend; the gateway only displays it.
type ApplicationStatus string

const (
	ApplicationStatusDraft                 ApplicationStatus = "draft"
	ApplicationStatusSubmitted             ApplicationStatus = "submitted"
	ApplicationStatusUnderReview           ApplicationStatus = "under_review"
	ApplicationStatusPendingRecommendation ApplicationStatus = "pending_recommendation"
	ApplicationStatusRecommended           ApplicationStatus = "recommended"
	ApplicationStatusApproved              ApplicationStatus = "approved"
	ApplicationStatusRejected              ApplicationStatus = "rejected"
	ApplicationStatusReturned              ApplicationStatus = "returned"
	ApplicationStatusWithdrawn             ApplicationStatus = "withdrawn"
	ApplicationStatusCancelled             ApplicationStatus = "cancelled"
)

// Application mirrors the backend application DTO.
type Application struct {
	ID                int               `json:"id"`
	AppID             string            `json:"app_id"`
	StudentID         string            `json:"student_id"`
	StudentName       string            `json:"student_name"`
	StudentNo         string            `json:"student_no,omitempty"`
	CollegeCode       string            `json:"college_code,omitempty"`
	ScholarshipType   string            `json:"scholarship_type"`
	ScholarshipTypeID int               `json:"scholarship_type_id"`
	SubTypeList       []string          `json:"scholarship_subtype_list,omitempty"`
	Status            ApplicationStatus `json:"status"`
	StatusName        string            `json:"status_name,omitempty"`
	ReviewStage       string            `json:"review_stage,omitempty"`
	Amount            float64           `json:"amount"`
	AcademicYear      int               `json:"academic_year"`
	Semester          string            `json:"semester,omitempty"`
	IsRenewal         bool              `json:"is_renewal"`
	SubmittedAt       *time.Time        `json:"submitted_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	ScholarshipType string
	AcademicYear    int
	Semester        string
	Status          string
	Page            int
	Size            int
}

// SubTypeReviewOption is a sub-type a professor can recommend for.
type SubTypeReviewOption struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	LabelEn   string `json:"label_en,omitempty"`
	IsDefault bool   `json:"is_default"`
}
