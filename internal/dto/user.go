package dto

// CreateUserRequest creates a portal user.
type CreateUserRequest struct {
	NYCUID      string `json:"nycu_id" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required,oneof=student professor college admin super_admin"`
	UserType    string `json:"user_type,omitempty" validate:"omitempty,oneof=student employee"`
	DeptCode    string `json:"dept_code,omitempty"`
	CollegeCode string `json:"college_code,omitempty"`
	Comment     string `json:"comment,omitempty" validate:"max=500"`
}

// UpdateUserRequest updates a portal user.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=student professor college admin super_admin"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	DeptCode    *string `json:"dept_code,omitempty"`
	CollegeCode *string `json:"college_code,omitempty"`
	Comment     *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

// UpdateScholarshipPermissionsRequest replaces a user's scholarship grants.
type UpdateScholarshipPermissionsRequest struct {
	ScholarshipIDs []int  `json:"scholarship_ids" validate:"dive,gt=0"`
	Comment        string `json:"comment,omitempty" validate:"max=500"`
}
