package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/middleware"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type referenceService interface {
	Scholarships(ctx context.Context, token string, role models.Role) ([]models.Scholarship, error)
	SubTypeTranslations(ctx context.Context, token string, role models.Role) (models.SubTypeTranslations, error)
	UserPermissions(ctx context.Context, token string, role models.Role, userID string) ([]models.ScholarshipPermission, error)
	MyScholarships(ctx context.Context, token string, role models.Role, userID string) ([]models.Scholarship, error)
	Invalidate(ctx context.Context) error
}

// ReferenceHandler serves cached scholarship reference data.
type ReferenceHandler struct {
	service referenceService
}

// NewReferenceHandler builds a ReferenceHandler.
func NewReferenceHandler(service referenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// Scholarships godoc
// @Summary List scholarship types
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/scholarships [get]
func (h *ReferenceHandler) Scholarships(c *gin.Context) {
	items, err := h.service.Scholarships(c.Request.Context(), tokenFromContext(c), roleFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil, middleware.ExtractMeta(c))
}

// SubTypeTranslations godoc
// @Summary Sub-type labels by locale
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/sub-type-translations [get]
func (h *ReferenceHandler) SubTypeTranslations(c *gin.Context) {
	translations, err := h.service.SubTypeTranslations(c.Request.Context(), tokenFromContext(c), roleFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, translations, nil, middleware.ExtractMeta(c))
}

// Permissions godoc
// @Summary Caller's scholarship permissions
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/permissions [get]
func (h *ReferenceHandler) Permissions(c *gin.Context) {
	perms, err := h.service.UserPermissions(c.Request.Context(), tokenFromContext(c), roleFromContext(c), claimsFromContext(c).ActorID())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, perms, nil)
}

// MyScholarships godoc
// @Summary Scholarships the caller may manage
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/my-scholarships [get]
func (h *ReferenceHandler) MyScholarships(c *gin.Context) {
	items, err := h.service.MyScholarships(c.Request.Context(), tokenFromContext(c), roleFromContext(c), claimsFromContext(c).ActorID())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Invalidate godoc
// @Summary Drop cached reference data
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reference/invalidate [post]
func (h *ReferenceHandler) Invalidate(c *gin.Context) {
	if err := h.service.Invalidate(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, nil, "reference cache cleared")
}
