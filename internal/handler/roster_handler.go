package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/internal/service"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type rosterService interface {
	ListPeriods(ctx context.Context, token string, configurationID int) ([]service.PeriodView, error)
	ListRosters(ctx context.Context, token string, filter models.RosterFilter) (models.PageResult[models.PaymentRoster], error)
	GetRoster(ctx context.Context, token string, id int) (*models.PaymentRoster, error)
	Generate(ctx context.Context, token string, req dto.GenerateRosterRequest) (*models.PaymentRoster, error)
	Lock(ctx context.Context, token string, id int, reason string) (*models.PaymentRoster, error)
	Unlock(ctx context.Context, token string, id int, reason string) (*models.PaymentRoster, error)
	Download(ctx context.Context, token string, id int, format string) (*apiclient.RawResponse, error)
	ActiveConfigurations(ctx context.Context, token, scholarshipCode string) ([]models.ScholarshipConfiguration, error)
}

type rosterExporter interface {
	ExportRoster(ctx context.Context, token string, id int, format dto.ExportFormat) (*dto.ExportResult, error)
}

// RosterHandler serves payment roster management.
type RosterHandler struct {
	service  rosterService
	exporter rosterExporter
}

// NewRosterHandler builds a RosterHandler.
func NewRosterHandler(service rosterService, exporter rosterExporter) *RosterHandler {
	return &RosterHandler{service: service, exporter: exporter}
}

// Periods godoc
// @Summary Roster periods of a configuration with display state
// @Tags Rosters
// @Produce json
// @Param configuration_id query int true "Scholarship configuration ID"
// @Success 200 {object} response.Envelope
// @Router /rosters/periods [get]
func (h *RosterHandler) Periods(c *gin.Context) {
	items, err := h.service.ListPeriods(c.Request.Context(), tokenFromContext(c), queryInt(c, "configuration_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Configurations godoc
// @Summary Active scholarship configurations for roster generation
// @Tags Rosters
// @Produce json
// @Param scholarship_code query string false "Scholarship code"
// @Success 200 {object} response.Envelope
// @Router /rosters/configurations [get]
func (h *RosterHandler) Configurations(c *gin.Context) {
	items, err := h.service.ActiveConfigurations(c.Request.Context(), tokenFromContext(c), c.Query("scholarship_code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// List godoc
// @Summary List payment rosters
// @Tags Rosters
// @Produce json
// @Param configuration_id query int false "Scholarship configuration ID"
// @Param status query string false "Roster status"
// @Param period_label query string false "Period label"
// @Param page query int false "Page"
// @Param size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /rosters [get]
func (h *RosterHandler) List(c *gin.Context) {
	result, err := h.service.ListRosters(c.Request.Context(), tokenFromContext(c), models.RosterFilter{
		ScholarshipConfigurationID: queryInt(c, "configuration_id"),
		Status:                     c.Query("status"),
		PeriodLabel:                c.Query("period_label"),
		Page:                       queryInt(c, "page"),
		Size:                       queryInt(c, "size"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Items, result.Pagination())
}

// Get godoc
// @Summary Payment roster detail
// @Tags Rosters
// @Produce json
// @Param id path int true "Roster ID"
// @Success 200 {object} response.Envelope
// @Router /rosters/{id} [get]
func (h *RosterHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	roster, err := h.service.GetRoster(c.Request.Context(), tokenFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}

// Generate godoc
// @Summary Generate a payment roster
// @Tags Rosters
// @Accept json
// @Produce json
// @Param payload body dto.GenerateRosterRequest true "Roster"
// @Success 201 {object} response.Envelope
// @Router /rosters/generate [post]
func (h *RosterHandler) Generate(c *gin.Context) {
	var req dto.GenerateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "roster"))
		return
	}
	roster, err := h.service.Generate(c.Request.Context(), tokenFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, roster)
}

// Lock godoc
// @Summary Lock a roster
// @Tags Rosters
// @Accept json
// @Produce json
// @Param id path int true "Roster ID"
// @Param payload body dto.LockRosterRequest false "Reason"
// @Success 200 {object} response.Envelope
// @Router /rosters/{id}/lock [post]
func (h *RosterHandler) Lock(c *gin.Context) {
	h.setLocked(c, true)
}

// Unlock godoc
// @Summary Unlock a roster
// @Tags Rosters
// @Accept json
// @Produce json
// @Param id path int true "Roster ID"
// @Param payload body dto.LockRosterRequest false "Reason"
// @Success 200 {object} response.Envelope
// @Router /rosters/{id}/unlock [post]
func (h *RosterHandler) Unlock(c *gin.Context) {
	h.setLocked(c, false)
}

func (h *RosterHandler) setLocked(c *gin.Context, locked bool) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.LockRosterRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, bindError(err, "lock"))
			return
		}
	}
	var roster *models.PaymentRoster
	if locked {
		roster, err = h.service.Lock(c.Request.Context(), tokenFromContext(c), id, req.Reason)
	} else {
		roster, err = h.service.Unlock(c.Request.Context(), tokenFromContext(c), id, req.Reason)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}

// Download godoc
// @Summary Download the backend roster file
// @Tags Rosters
// @Produce application/octet-stream
// @Param id path int true "Roster ID"
// @Param format query string false "xlsx, csv or pdf"
// @Success 200 {file} file
// @Router /rosters/{id}/download [get]
func (h *RosterHandler) Download(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	raw, err := h.service.Download(c.Request.Context(), tokenFromContext(c), id, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	contentType := raw.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(raw.StatusCode, contentType, raw.Body)
}

// Export godoc
// @Summary Render a roster locally to a signed download
// @Tags Rosters
// @Produce json
// @Param id path int true "Roster ID"
// @Param format query string false "csv, pdf, xlsx or json"
// @Success 201 {object} response.Envelope
// @Router /rosters/{id}/export [post]
func (h *RosterHandler) Export(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.exporter.ExportRoster(c.Request.Context(), tokenFromContext(c), id, dto.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
