package models

import "time"

// User mirrors the backend user record managed by administrators.
type User struct {
	ID          int        `json:"id"`
	NYCUID      string     `json:"nycu_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	UserType    string     `json:"user_type,omitempty"`
	Status      string     `json:"status,omitempty"`
	DeptCode    string     `json:"dept_code,omitempty"`
	DeptName    string     `json:"dept_name,omitempty"`
	CollegeCode string     `json:"college_code,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role     string
	Search   string
	Page     int
	PageSize int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// PageResult is the backend's paginated list shape.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// Pagination converts backend paging fields into the gateway shape.
func (p PageResult[T]) Pagination() *Pagination {
	return &Pagination{Page: p.Page, PageSize: p.Size, TotalCount: p.Total}
}

// Profile is the signed-in user's editable profile.
type Profile struct {
	UserID        int    `json:"user_id"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	AdvisorName   string `json:"advisor_name,omitempty"`
	AdvisorEmail  string `json:"advisor_email,omitempty"`
	AdvisorNYCUID string `json:"advisor_nycu_id,omitempty"`
	PreferredLang string `json:"preferred_language,omitempty"`
}
