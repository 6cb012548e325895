package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/service"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

type artifactOpener interface {
	Open(token string) (*service.Artifact, error)
}

// ExportHandler streams rendered export files behind signed tokens.
type ExportHandler struct {
	exports artifactOpener
}

// NewExportHandler builds an ExportHandler.
func NewExportHandler(exports artifactOpener) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Download godoc
// @Summary Download an export
// @Tags Exports
// @Produce application/octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exports/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	artifact, err := h.exports.Open(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer artifact.File.Close() //nolint:errcheck

	size := int64(-1)
	if info, err := artifact.File.Stat(); err == nil {
		size = info.Size()
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", artifact.Filename))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, size, artifact.ContentType, artifact.File, nil)
}
