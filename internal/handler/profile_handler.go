package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type profileService interface {
	GetMine(ctx context.Context, token string) (*models.Profile, error)
	UpdateMine(ctx context.Context, token string, partial map[string]any) (*models.RawUser, error)
}

// ProfileHandler serves the signed-in user's profile.
type ProfileHandler struct {
	service profileService
}

// NewProfileHandler builds a ProfileHandler.
func NewProfileHandler(service profileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get godoc
// @Summary Current user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /user-profiles/me [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.service.GetMine(c.Request.Context(), tokenFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// Update godoc
// @Summary Update the current user's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body object true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /user-profiles/me [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.Error(c, bindError(err, "profile"))
		return
	}
	user, err := h.service.UpdateMine(c.Request.Context(), tokenFromContext(c), partial)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}
