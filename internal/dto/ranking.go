package dto

// CreateRankingRequest creates a ranking for a scholarship sub-type and period.
type CreateRankingRequest struct {
	ScholarshipTypeID int    `json:"scholarship_type_id" validate:"required,gt=0"`
	SubTypeCode       string `json:"sub_type_code" validate:"required"`
	AcademicYear      int    `json:"academic_year" validate:"required,gt=0"`
	Semester          string `json:"semester,omitempty" validate:"omitempty,oneof=first second annual"`
	RankingName       string `json:"ranking_name,omitempty" validate:"max=200"`
	ForceNew          bool   `json:"force_new,omitempty"`
}

// RankingOrderItem places an application at a rank position.
type RankingOrderItem struct {
	ApplicationID int `json:"application_id" validate:"required,gt=0"`
	Position      int `json:"position" validate:"required,gt=0"`
}

// UpdateRankingOrderRequest reorders a ranking.
type UpdateRankingOrderRequest struct {
	Items []RankingOrderItem `json:"items" validate:"required,min=1,dive"`
}

// ExecuteDistributionRequest triggers quota distribution for a ranking.
type ExecuteDistributionRequest struct {
	DistributionRules map[string]any `json:"distribution_rules,omitempty"`
}
