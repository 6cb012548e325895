package dto

// GenerateRosterRequest asks the backend to generate a payment roster.
type GenerateRosterRequest struct {
	ScholarshipConfigurationID int    `json:"scholarship_configuration_id" validate:"required,gt=0"`
	PeriodLabel                string `json:"period_label" validate:"required"`
	RosterCycle                string `json:"roster_cycle,omitempty" validate:"omitempty,oneof=monthly semi_yearly yearly"`
	AcademicYear               int    `json:"academic_year,omitempty" validate:"omitempty,gt=0"`
	StudentVerificationEnabled bool   `json:"student_verification_enabled"`
	ForceRegenerate            bool   `json:"force_regenerate,omitempty"`
}

// LockRosterRequest locks or unlocks a roster.
type LockRosterRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}
