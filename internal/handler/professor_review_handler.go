package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type professorReviewService interface {
	ListApplications(ctx context.Context, token string, filter models.ApplicationFilter) ([]models.Application, error)
	SubTypes(ctx context.Context, token string, id int) ([]models.SubTypeReviewOption, error)
	Submit(ctx context.Context, token string, id int, req dto.ProfessorReviewRequest) (map[string]any, error)
}

// ProfessorReviewHandler serves professor recommendations.
type ProfessorReviewHandler struct {
	service professorReviewService
}

// NewProfessorReviewHandler builds a ProfessorReviewHandler.
func NewProfessorReviewHandler(service professorReviewService) *ProfessorReviewHandler {
	return &ProfessorReviewHandler{service: service}
}

// ListApplications godoc
// @Summary Applications assigned to the professor
// @Tags Professor Review
// @Produce json
// @Param status query string false "Application status"
// @Success 200 {object} response.Envelope
// @Router /professor/applications [get]
func (h *ProfessorReviewHandler) ListApplications(c *gin.Context) {
	items, err := h.service.ListApplications(c.Request.Context(), tokenFromContext(c), applicationFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// SubTypes godoc
// @Summary Sub-types the professor may recommend for
// @Tags Professor Review
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope
// @Router /professor/applications/{id}/sub-types [get]
func (h *ProfessorReviewHandler) SubTypes(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.service.SubTypes(c.Request.Context(), tokenFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Submit godoc
// @Summary Submit a professor review
// @Tags Professor Review
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body dto.ProfessorReviewRequest true "Review"
// @Success 200 {object} response.Envelope
// @Router /professor/applications/{id}/review [post]
func (h *ProfessorReviewHandler) Submit(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ProfessorReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "review"))
		return
	}
	result, err := h.service.Submit(c.Request.Context(), tokenFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, result, "review submitted")
}
