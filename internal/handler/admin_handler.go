package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type relationshipService interface {
	List(ctx context.Context, token string, filter models.RelationshipFilter) ([]models.ProfessorStudentRelationship, error)
	Create(ctx context.Context, token string, req dto.CreateRelationshipRequest) (*models.ProfessorStudentRelationship, error)
	Update(ctx context.Context, token string, id int, req dto.UpdateRelationshipRequest) (*models.ProfessorStudentRelationship, error)
	Delete(ctx context.Context, token string, id int) error
}

type emailScheduleService interface {
	List(ctx context.Context, token string, filter models.ScheduledEmailFilter) (models.PageResult[models.ScheduledEmail], error)
	Approve(ctx context.Context, token string, id int) (*models.ScheduledEmail, error)
	Cancel(ctx context.Context, token string, id int) (*models.ScheduledEmail, error)
}

type auditTrailService interface {
	ApplicationTrail(ctx context.Context, token string, applicationID int) ([]models.AuditTrailEntry, error)
	List(ctx context.Context, token string, filter models.AuditTrailFilter) (models.PageResult[models.AuditTrailEntry], error)
}

type gatewayAuditReader interface {
	List(ctx context.Context, filter models.GatewayAuditFilter) ([]models.GatewayAuditLog, error)
}

// AdminHandler groups administrative panels backed by the scholarship API.
type AdminHandler struct {
	relationships relationshipService
	emails        emailScheduleService
	trail         auditTrailService
	gatewayAudit  gatewayAuditReader
}

// NewAdminHandler builds an AdminHandler. gatewayAudit may be nil when the
// local audit store is disabled.
func NewAdminHandler(relationships relationshipService, emails emailScheduleService, trail auditTrailService, gatewayAudit gatewayAuditReader) *AdminHandler {
	return &AdminHandler{relationships: relationships, emails: emails, trail: trail, gatewayAudit: gatewayAudit}
}

// ListRelationships godoc
// @Summary Professor-student relationships
// @Tags Relationships
// @Produce json
// @Param professor_id query int false "Professor user ID"
// @Param student_id query int false "Student user ID"
// @Param relationship_type query string false "Relationship type"
// @Param active_only query bool false "Only active rows"
// @Success 200 {object} response.Envelope
// @Router /admin/professor-student [get]
func (h *AdminHandler) ListRelationships(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active_only"))
	items, err := h.relationships.List(c.Request.Context(), tokenFromContext(c), models.RelationshipFilter{
		ProfessorID:      queryInt(c, "professor_id"),
		StudentID:        queryInt(c, "student_id"),
		RelationshipType: c.Query("relationship_type"),
		ActiveOnly:       activeOnly,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// CreateRelationship godoc
// @Summary Link a professor to a student
// @Tags Relationships
// @Accept json
// @Produce json
// @Param payload body dto.CreateRelationshipRequest true "Relationship"
// @Success 201 {object} response.Envelope
// @Router /admin/professor-student [post]
func (h *AdminHandler) CreateRelationship(c *gin.Context) {
	var req dto.CreateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "relationship"))
		return
	}
	rel, err := h.relationships.Create(c.Request.Context(), tokenFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, rel)
}

// UpdateRelationship godoc
// @Summary Update a relationship
// @Tags Relationships
// @Accept json
// @Produce json
// @Param id path int true "Relationship ID"
// @Param payload body dto.UpdateRelationshipRequest true "Changes"
// @Success 200 {object} response.Envelope
// @Router /admin/professor-student/{id} [put]
func (h *AdminHandler) UpdateRelationship(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "relationship"))
		return
	}
	rel, err := h.relationships.Update(c.Request.Context(), tokenFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rel, nil)
}

// DeleteRelationship godoc
// @Summary Remove a relationship
// @Tags Relationships
// @Param id path int true "Relationship ID"
// @Success 204 {string} string ""
// @Router /admin/professor-student/{id} [delete]
func (h *AdminHandler) DeleteRelationship(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.relationships.Delete(c.Request.Context(), tokenFromContext(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListScheduledEmails godoc
// @Summary Scheduled notification emails
// @Tags Emails
// @Produce json
// @Param status query string false "Status"
// @Param scholarship_type query string false "Scholarship type"
// @Param requires_approval query bool false "Only rows needing approval"
// @Success 200 {object} response.Envelope
// @Router /admin/scheduled-emails [get]
func (h *AdminHandler) ListScheduledEmails(c *gin.Context) {
	filter := models.ScheduledEmailFilter{
		Status:          c.Query("status"),
		ScholarshipType: c.Query("scholarship_type"),
		Page:            queryInt(c, "page"),
		Size:            queryInt(c, "size"),
	}
	if raw := c.Query("requires_approval"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.RequiresApproval = &v
		}
	}
	result, err := h.emails.List(c.Request.Context(), tokenFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Items, result.Pagination())
}

// ApproveScheduledEmail godoc
// @Summary Approve a scheduled email
// @Tags Emails
// @Produce json
// @Param id path int true "Email ID"
// @Success 200 {object} response.Envelope
// @Router /admin/scheduled-emails/{id}/approve [patch]
func (h *AdminHandler) ApproveScheduledEmail(c *gin.Context) {
	h.changeEmail(c, h.emails.Approve)
}

// CancelScheduledEmail godoc
// @Summary Cancel a scheduled email
// @Tags Emails
// @Produce json
// @Param id path int true "Email ID"
// @Success 200 {object} response.Envelope
// @Router /admin/scheduled-emails/{id}/cancel [patch]
func (h *AdminHandler) CancelScheduledEmail(c *gin.Context) {
	h.changeEmail(c, h.emails.Cancel)
}

func (h *AdminHandler) changeEmail(c *gin.Context, op func(context.Context, string, int) (*models.ScheduledEmail, error)) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	email, err := op(c.Request.Context(), tokenFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, email, nil)
}

// ApplicationTrail godoc
// @Summary History of one application
// @Tags Audit
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope
// @Router /applications/{id}/audit-trail [get]
func (h *AdminHandler) ApplicationTrail(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.trail.ApplicationTrail(c.Request.Context(), tokenFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// AuditLogs godoc
// @Summary Backend audit logs
// @Tags Audit
// @Produce json
// @Param action query string false "Action"
// @Param resource_type query string false "Resource type"
// @Param user_id query string false "User ID"
// @Success 200 {object} response.Envelope
// @Router /admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	result, err := h.trail.List(c.Request.Context(), tokenFromContext(c), models.AuditTrailFilter{
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		UserID:       c.Query("user_id"),
		Page:         queryInt(c, "page"),
		Size:         queryInt(c, "size"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Items, result.Pagination())
}

// GatewayAuditLogs godoc
// @Summary Requests recorded by the gateway
// @Tags Audit
// @Produce json
// @Param user_id query string false "User ID"
// @Param resource query string false "Resource"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Max rows"
// @Success 200 {object} response.Envelope
// @Router /admin/gateway-audit [get]
func (h *AdminHandler) GatewayAuditLogs(c *gin.Context) {
	if h.gatewayAudit == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "gateway audit log is disabled"))
		return
	}
	filter := models.GatewayAuditFilter{
		UserID:   c.Query("user_id"),
		Resource: c.Query("resource"),
		Limit:    queryInt(c, "limit"),
	}
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "since must be RFC3339"))
			return
		}
		filter.Since = &since
	}
	logs, err := h.gatewayAudit.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs, nil)
}
