package models

import "time"

// ProfessorStudentRelationship links an advising professor to a student.
type ProfessorStudentRelationship struct {
	ID                 int        `json:"id"`
	ProfessorID        int        `json:"professor_id"`
	ProfessorName      string     `json:"professor_name,omitempty"`
	StudentID          int        `json:"student_id"`
	StudentName        string     `json:"student_name,omitempty"`
	RelationshipType   string     `json:"relationship_type"`
	Department         string     `json:"department,omitempty"`
	AcademicYear       *int       `json:"academic_year,omitempty"`
	Semester           string     `json:"semester,omitempty"`
	IsActive           bool       `json:"is_active"`
	CanViewApplication bool       `json:"can_view_applications"`
	CanUploadDocuments bool       `json:"can_upload_documents"`
	CanReview          bool       `json:"can_review_applications"`
	Notes              string     `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// RelationshipFilter narrows relationship listings.
type RelationshipFilter struct {
	ProfessorID      int
	StudentID        int
	RelationshipType string
	ActiveOnly       bool
}
