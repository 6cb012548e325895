package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/middleware/requestid"
)

// AuditWriter persists gateway audit records.
type AuditWriter interface {
	Create(ctx context.Context, log *models.GatewayAuditLog) error
}

// Audit records successful requests to the gateway audit log. A nil writer
// disables recording.
func Audit(writer AuditWriter, logger *zap.Logger, action, resource string) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now().UTC()
		c.Next()

		if writer == nil || c.Writer.Status() >= 400 {
			return
		}

		entry := &models.GatewayAuditLog{
			Action:    action,
			Resource:  resource,
			Method:    c.Request.Method,
			Path:      c.FullPath(),
			Status:    c.Writer.Status(),
			LatencyMS: time.Since(start).Milliseconds(),
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
			RequestID: requestid.Value(c),
			CreatedAt: start,
		}
		if claims := Claims(c); claims != nil {
			if id := claims.ActorID(); id != "" {
				entry.UserID = &id
			}
			entry.Role = string(claims.Role)
		}
		if id := c.Param("id"); id != "" {
			entry.ResourceID = &id
		}

		if err := writer.Create(c.Request.Context(), entry); err != nil {
			logger.Warn("gateway audit log not written", zap.String("path", entry.Path), zap.Error(err))
		}
	}
}
