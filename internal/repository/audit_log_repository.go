package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
)

const auditLogColumns = `id, user_id, role, action, resource, resource_id, method, path, status, latency_ms, ip_address, user_agent, request_id, created_at`

// AuditLogRepository persists gateway audit records in Postgres.
type AuditLogRepository struct {
	db *sqlx.DB
}

// NewAuditLogRepository constructs an AuditLogRepository.
func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create inserts an audit record, filling id and created_at when empty.
func (r *AuditLogRepository) Create(ctx context.Context, log *models.GatewayAuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO gateway_audit_logs (` + auditLogColumns + `)
VALUES (:id, :user_id, :role, :action, :resource, :resource_id, :method, :path, :status, :latency_ms, :ip_address, :user_agent, :request_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create gateway audit log: %w", err)
	}
	return nil
}

// List returns recent records matching filter, newest first.
func (r *AuditLogRepository) List(ctx context.Context, filter models.GatewayAuditFilter) ([]models.GatewayAuditLog, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Resource != "" {
		args = append(args, filter.Resource)
		conditions = append(conditions, fmt.Sprintf("resource = $%d", len(args)))
	}
	if filter.Since != nil {
		args = append(args, *filter.Since)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := fmt.Sprintf("SELECT %s FROM gateway_audit_logs WHERE %s ORDER BY created_at DESC LIMIT %d", auditLogColumns, where, limit)

	var logs []models.GatewayAuditLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("list gateway audit logs: %w", err)
	}
	return logs, nil
}

// DeleteOlderThan prunes records created before cutoff.
func (r *AuditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gateway_audit_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune gateway audit logs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune gateway audit logs: %w", err)
	}
	return n, nil
}
