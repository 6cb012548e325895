package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type collegeReviewService interface {
	ListApplications(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error)
	Approve(ctx context.Context, token string, id int, req dto.ApproveApplicationRequest) (*models.Application, error)
	Reject(ctx context.Context, token string, id int, req dto.RejectApplicationRequest) (*models.Application, error)
	RequestDocuments(ctx context.Context, token string, id int, req dto.RequestDocumentsRequest) error
	ListRankings(ctx context.Context, token string, filter models.RankingFilter) ([]models.Ranking, error)
	GetRanking(ctx context.Context, token string, id int) (*models.Ranking, error)
	CreateRanking(ctx context.Context, token string, req dto.CreateRankingRequest) (*models.Ranking, error)
	UpdateRankingOrder(ctx context.Context, token string, id int, req dto.UpdateRankingOrderRequest) (*models.Ranking, error)
	ExecuteDistribution(ctx context.Context, token string, id int, req dto.ExecuteDistributionRequest) (map[string]any, error)
	FinalizeRanking(ctx context.Context, token string, id int) (*models.Ranking, error)
	QuotaStatus(ctx context.Context, token string, filter models.RankingFilter) ([]models.QuotaStatus, error)
	AvailablePeriods(ctx context.Context, token, scholarshipType string) ([]models.AcademicPeriod, error)
	WorkflowSnapshot(ctx context.Context, token string, role models.Role, filter models.RankingFilter) (*models.WorkflowSnapshot, error)
}

type rankingExporter interface {
	ExportRanking(ctx context.Context, token string, id int, format dto.ExportFormat) (*dto.ExportResult, error)
	ExportSnapshot(snapshot *models.WorkflowSnapshot) (*dto.ExportResult, error)
}

// CollegeReviewHandler exposes the college review and ranking panel.
type CollegeReviewHandler struct {
	service  collegeReviewService
	exporter rankingExporter
}

// NewCollegeReviewHandler builds a CollegeReviewHandler.
func NewCollegeReviewHandler(service collegeReviewService, exporter rankingExporter) *CollegeReviewHandler {
	return &CollegeReviewHandler{service: service, exporter: exporter}
}

func applicationFilter(c *gin.Context) models.ApplicationFilter {
	return models.ApplicationFilter{
		ScholarshipType: c.Query("scholarship_type"),
		AcademicYear:    queryInt(c, "academic_year"),
		Semester:        c.Query("semester"),
		Status:          c.Query("status"),
		Page:            queryInt(c, "page"),
		Size:            queryInt(c, "size"),
	}
}

func rankingFilter(c *gin.Context) models.RankingFilter {
	return models.RankingFilter{
		ScholarshipTypeID: queryInt(c, "scholarship_type_id"),
		AcademicYear:      queryInt(c, "academic_year"),
		Semester:          c.Query("semester"),
	}
}

// ListApplications godoc
// @Summary Applications awaiting college review
// @Tags College Review
// @Produce json
// @Param scholarship_type query string false "Scholarship type code"
// @Param academic_year query int false "Academic year"
// @Param semester query string false "Semester"
// @Success 200 {object} response.Envelope
// @Router /college-review/applications [get]
func (h *CollegeReviewHandler) ListApplications(c *gin.Context) {
	items, err := h.service.ListApplications(c.Request.Context(), tokenFromContext(c), applicationFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Approve godoc
// @Summary Approve an application
// @Tags College Review
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body dto.ApproveApplicationRequest false "Comment"
// @Success 200 {object} response.Envelope
// @Router /college-review/applications/{id}/approve [post]
func (h *CollegeReviewHandler) Approve(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ApproveApplicationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, bindError(err, "approval"))
			return
		}
	}
	app, err := h.service.Approve(c.Request.Context(), tokenFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, app, nil)
}

// Reject godoc
// @Summary Reject an application
// @Tags College Review
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body dto.RejectApplicationRequest true "Reason"
// @Success 200 {object} response.Envelope
// @Router /college-review/applications/{id}/reject [post]
func (h *CollegeReviewHandler) Reject(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.RejectApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "rejection"))
		return
	}
	app, err := h.service.Reject(c.Request.Context(), tokenFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, app, nil)
}

// RequestDocuments godoc
// @Summary Ask the applicant for more documents
// @Tags College Review
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body dto.RequestDocumentsRequest true "Documents"
// @Success 200 {object} response.Envelope
// @Router /college-review/applications/{id}/request-documents [post]
func (h *CollegeReviewHandler) RequestDocuments(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.RequestDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "document request"))
		return
	}
	if err := h.service.RequestDocuments(c.Request.Context(), tokenFromContext(c), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, nil, "document request sent")
}

// ListRankings godoc
// @Summary Rankings for a scholarship period
// @Tags Rankings
// @Produce json
// @Param scholarship_type_id query int false "Scholarship type ID"
// @Param academic_year query int false "Academic year"
// @Param semester query string false "Semester"
// @Success 200 {object} response.Envelope
// @Router /college-review/rankings [get]
func (h *CollegeReviewHandler) ListRankings(c *gin.Context) {
	items, err := h.service.ListRankings(c.Request.Context(), tokenFromContext(c), rankingFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// GetRanking godoc
// @Summary Ranking with ordered applications
// @Tags Rankings
// @Produce json
// @Param id path int true "Ranking ID"
// @Success 200 {object} response.Envelope
// @Router /college-review/rankings/{id} [get]
func (h *CollegeReviewHandler) GetRanking(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	ranking, err := h.service.GetRanking(c.Request.Context(), tokenFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ranking, nil)
}

// CreateRanking godoc
// @Summary Create a ranking
// @Tags Rankings
// @Accept json
// @Produce json
// @Param payload body dto.CreateRankingRequest true "Ranking"
// @Success 201 {object} response.Envelope
// @Router /college-review/rankings [post]
func (h *CollegeReviewHandler) CreateRanking(c *gin.Context) {
	var req dto.CreateRankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "ranking"))
		return
	}
	ranking, err := h.service.CreateRanking(c.Request.Context(), tokenFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, ranking)
}

// UpdateRankingOrder godoc
// @Summary Reorder a ranking
// @Tags Rankings
// @Accept json
// @Produce json
// @Param id path int true "Ranking ID"
// @Param payload body dto.UpdateRankingOrderRequest true "New order"
// @Success 200 {object} response.Envelope
// @Router /college-review/rankings/{id}/order [put]
func (h *CollegeReviewHandler) UpdateRankingOrder(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateRankingOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "ranking order"))
		return
	}
	ranking, err := h.service.UpdateRankingOrder(c.Request.Context(), tokenFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ranking, nil)
}

// ExecuteDistribution godoc
// @Summary Run quota distribution for a ranking
// @Tags Rankings
// @Accept json
// @Produce json
// @Param id path int true "Ranking ID"
// @Param payload body dto.ExecuteDistributionRequest false "Rules"
// @Success 200 {object} response.Envelope
// @Router /college-review/rankings/{id}/distribute [post]
func (h *CollegeReviewHandler) ExecuteDistribution(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ExecuteDistributionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, bindError(err, "distribution"))
			return
		}
	}
	result, err := h.service.ExecuteDistribution(c.Request.Context(), tokenFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// FinalizeRanking godoc
// @Summary Finalize a ranking
// @Tags Rankings
// @Produce json
// @Param id path int true "Ranking ID"
// @Success 200 {object} response.Envelope
// @Router /college-review/rankings/{id}/finalize [post]
func (h *CollegeReviewHandler) FinalizeRanking(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	ranking, err := h.service.FinalizeRanking(c.Request.Context(), tokenFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ranking, nil)
}

// QuotaStatus godoc
// @Summary Quota usage per sub-type
// @Tags Rankings
// @Produce json
// @Param scholarship_type_id query int false "Scholarship type ID"
// @Param academic_year query int false "Academic year"
// @Param semester query string false "Semester"
// @Success 200 {object} response.Envelope
// @Router /college-review/quota-status [get]
func (h *CollegeReviewHandler) QuotaStatus(c *gin.Context) {
	items, err := h.service.QuotaStatus(c.Request.Context(), tokenFromContext(c), rankingFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// AvailablePeriods godoc
// @Summary Academic periods for a scholarship type
// @Tags Rankings
// @Produce json
// @Param scholarship_type query string true "Scholarship type code"
// @Success 200 {object} response.Envelope
// @Router /college-review/available-periods [get]
func (h *CollegeReviewHandler) AvailablePeriods(c *gin.Context) {
	items, err := h.service.AvailablePeriods(c.Request.Context(), tokenFromContext(c), c.Query("scholarship_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ExportRanking godoc
// @Summary Render a ranking to a downloadable file
// @Tags Rankings
// @Produce json
// @Param id path int true "Ranking ID"
// @Param format query string false "csv, pdf, xlsx or json"
// @Success 201 {object} response.Envelope
// @Router /college-review/rankings/{id}/export [post]
func (h *CollegeReviewHandler) ExportRanking(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.exporter.ExportRanking(c.Request.Context(), tokenFromContext(c), id, dto.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ExportSnapshot godoc
// @Summary Export the review workflow of a period as JSON
// @Tags Rankings
// @Produce json
// @Param scholarship_type_id query int true "Scholarship type ID"
// @Param academic_year query int false "Academic year"
// @Param semester query string false "Semester"
// @Success 201 {object} response.Envelope
// @Router /college-review/workflow-snapshot [post]
func (h *CollegeReviewHandler) ExportSnapshot(c *gin.Context) {
	snapshot, err := h.service.WorkflowSnapshot(c.Request.Context(), tokenFromContext(c), roleFromContext(c), rankingFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.exporter.ExportSnapshot(snapshot)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
