package dto

// ApproveApplicationRequest records a college approval.
type ApproveApplicationRequest struct {
	Comment string `json:"comment" validate:"max=1000"`
}

// RejectApplicationRequest records a college rejection.
type RejectApplicationRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// RequestDocumentsRequest asks a student for additional documents.
type RequestDocumentsRequest struct {
	RequestedDocuments []string `json:"requested_documents" validate:"required,min=1,dive,required"`
	Reason             string   `json:"reason" validate:"required,max=1000"`
	Notes              string   `json:"notes,omitempty" validate:"max=1000"`
}

// ProfessorReviewItem is the recommendation for one sub-type.
type ProfessorReviewItem struct {
	SubTypeCode    string `json:"sub_type_code" validate:"required"`
	Recommendation string `json:"recommendation" validate:"required,oneof=approve reject pending"`
	Comments       string `json:"comments,omitempty" validate:"max=2000"`
}

// ProfessorReviewRequest submits a professor recommendation.
type ProfessorReviewRequest struct {
	Items           []ProfessorReviewItem `json:"items" validate:"required,min=1,dive"`
	OverallComments string                `json:"recommendation,omitempty" validate:"max=2000"`
}
