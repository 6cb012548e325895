package dto

// CreateRelationshipRequest links a professor to a student.
type CreateRelationshipRequest struct {
	ProfessorID        int    `json:"professor_id" validate:"required,gt=0"`
	StudentID          int    `json:"student_id" validate:"required,gt=0"`
	RelationshipType   string `json:"relationship_type" validate:"required,oneof=advisor supervisor committee_member co_advisor"`
	AcademicYear       *int   `json:"academic_year,omitempty" validate:"omitempty,gt=0"`
	Semester           string `json:"semester,omitempty"`
	CanViewApplication bool   `json:"can_view_applications"`
	CanUploadDocuments bool   `json:"can_upload_documents"`
	CanReview          bool   `json:"can_review_applications"`
	Notes              string `json:"notes,omitempty" validate:"max=1000"`
}

// UpdateRelationshipRequest updates relationship flags.
type UpdateRelationshipRequest struct {
	RelationshipType   *string `json:"relationship_type,omitempty" validate:"omitempty,oneof=advisor supervisor committee_member co_advisor"`
	IsActive           *bool   `json:"is_active,omitempty"`
	CanViewApplication *bool   `json:"can_view_applications,omitempty"`
	CanUploadDocuments *bool   `json:"can_upload_documents,omitempty"`
	CanReview          *bool   `json:"can_review_applications,omitempty"`
	Notes              *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
