package models

import (
	"encoding/json"
	"time"
)

// AuditTrailEntry is a backend-recorded action against an application.
type AuditTrailEntry struct {
	ID            int             `json:"id"`
	Action        string          `json:"action"`
	ActionDisplay string          `json:"action_display,omitempty"`
	ResourceType  string          `json:"resource_type,omitempty"`
	ResourceID    string          `json:"resource_id,omitempty"`
	UserID        *int            `json:"user_id,omitempty"`
	UserName      string          `json:"user_name,omitempty"`
	Description   string          `json:"description,omitempty"`
	OldValues     json.RawMessage `json:"old_values,omitempty"`
	NewValues     json.RawMessage `json:"new_values,omitempty"`
	IPAddress     string          `json:"ip_address,omitempty"`
	Status        string          `json:"status,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuditTrailFilter narrows the global audit trail listing.
type AuditTrailFilter struct {
	Action       string
	ResourceType string
	UserID       string
	Page         int
	Size         int
}

// Gateway audit actions.
const (
	AuditActionCreate  = "CREATE"
	AuditActionUpdate  = "UPDATE"
	AuditActionDelete  = "DELETE"
	AuditActionLogin   = "LOGIN"
	AuditActionLogout  = "LOGOUT"
	AuditActionUpload  = "UPLOAD"
	AuditActionExport  = "EXPORT"
	AuditActionExecute = "EXECUTE"
)

// GatewayAuditLog is a request recorded locally by the gateway.
type GatewayAuditLog struct {
	ID         string    `db:"id" json:"id"`
	UserID     *string   `db:"user_id" json:"user_id,omitempty"`
	Role       string    `db:"role" json:"role"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID *string   `db:"resource_id" json:"resource_id,omitempty"`
	Method     string    `db:"method" json:"method"`
	Path       string    `db:"path" json:"path"`
	Status     int       `db:"status" json:"status"`
	LatencyMS  int64     `db:"latency_ms" json:"latency_ms"`
	IPAddress  string    `db:"ip_address" json:"ip_address"`
	UserAgent  string    `db:"user_agent" json:"user_agent"`
	RequestID  string    `db:"request_id" json:"request_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// GatewayAuditFilter narrows local audit log queries.
type GatewayAuditFilter struct {
	UserID   string
	Resource string
	Since    *time.Time
	Limit    int
}
