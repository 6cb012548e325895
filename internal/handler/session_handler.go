package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/dto"
	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type sessionService interface {
	Login(ctx context.Context, previousSID string, req dto.LoginSessionRequest) (*models.Session, error)
	Logout(ctx context.Context, sid string) (string, error)
	Restore(ctx context.Context, sid string) (*models.Session, error)
	UpdateUser(ctx context.Context, sid string, req dto.UpdateSessionUserRequest) (*models.SessionUser, error)
	LoginRedirect() string
}

// SessionCookie configures the session cookie.
type SessionCookie struct {
	Name   string
	MaxAge int
	Secure bool
}

// SessionHandler exposes the browser session endpoints.
type SessionHandler struct {
	service sessionService
	cookie  SessionCookie
}

// NewSessionHandler builds a SessionHandler.
func NewSessionHandler(service sessionService, cookie SessionCookie) *SessionHandler {
	if cookie.Name == "" {
		cookie.Name = "portal_session"
	}
	return &SessionHandler{service: service, cookie: cookie}
}

// Login godoc
// @Summary Start a session from an SSO or dev login result
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.LoginSessionRequest true "Token and user"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /auth/session [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "session"))
		return
	}
	previous, _ := c.Cookie(h.cookie.Name)
	session, err := h.service.Login(c.Request.Context(), previous, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setCookie(c, session.ID, h.cookie.MaxAge)
	response.JSON(c, http.StatusOK, dto.SessionResponse{SessionID: session.ID, Token: session.Token, User: session.User}, nil)
}

// Restore godoc
// @Summary Restore the current session
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/session [get]
func (h *SessionHandler) Restore(c *gin.Context) {
	sid, _ := c.Cookie(h.cookie.Name)
	session, err := h.service.Restore(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}
	if session == nil {
		h.setCookie(c, "", -1)
		c.JSON(http.StatusUnauthorized, response.Envelope{
			Success: false,
			Message: appErrors.ErrSessionNotFound.Message,
			Data:    dto.LogoutResponse{RedirectTo: h.service.LoginRedirect()},
		})
		return
	}
	response.JSON(c, http.StatusOK, dto.SessionResponse{
		SessionID: session.ID,
		Token:     session.Token,
		User:      session.User,
		LastError: session.LastError,
	}, nil)
}

// Logout godoc
// @Summary End the current session
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/session [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	sid, _ := c.Cookie(h.cookie.Name)
	redirect, err := h.service.Logout(c.Request.Context(), sid)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setCookie(c, "", -1)
	response.JSON(c, http.StatusOK, dto.LogoutResponse{RedirectTo: redirect}, nil)
}

// UpdateUser godoc
// @Summary Update the signed-in user's profile
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.UpdateSessionUserRequest true "Profile fields"
// @Success 200 {object} response.Envelope
// @Router /auth/session/user [patch]
func (h *SessionHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateSessionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err, "profile"))
		return
	}
	sid, _ := c.Cookie(h.cookie.Name)
	user, err := h.service.UpdateUser(c.Request.Context(), sid, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

func (h *SessionHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
