package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/internal/service"
	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
	"github.com/noah-isme/scholarship-portal-api/pkg/response"
)

const termsFileField = "file"

type uploadProxy interface {
	CheckRequest(scholarshipType, authorization string) error
	ForwardTerms(ctx context.Context, req service.TermsUpload) (*apiclient.RawResponse, error)
}

// UploadHandler relays scholarship terms documents to the backend.
type UploadHandler struct {
	proxy uploadProxy
}

// NewUploadHandler builds an UploadHandler.
func NewUploadHandler(proxy uploadProxy) *UploadHandler {
	return &UploadHandler{proxy: proxy}
}

// UploadTerms godoc
// @Summary Upload a scholarship terms document
// @Description The file is re-packed and forwarded; the backend reply is relayed verbatim.
// @Tags Scholarships
// @Accept multipart/form-data
// @Produce json
// @Param type path string true "Scholarship type code"
// @Param file formData file true "Terms document"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /scholarships/{type}/upload-terms [post]
func (h *UploadHandler) UploadTerms(c *gin.Context) {
	scholarshipType := c.Param("type")
	authorization := c.GetHeader("Authorization")
	if err := h.proxy.CheckRequest(scholarshipType, authorization); err != nil {
		h.fail(c, err)
		return
	}

	// only the "file" field counts; files under other names are ignored
	var files []service.UploadFile
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File[termsFileField] {
			files = append(files, uploadFile(fh))
		}
	}

	resp, err := h.proxy.ForwardTerms(c.Request.Context(), service.TermsUpload{
		ScholarshipType: scholarshipType,
		Authorization:   authorization,
		Files:           files,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}

func (h *UploadHandler) fail(c *gin.Context, err error) {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		response.Fail(c, appErr.Status, appErr.Message)
		return
	}
	response.Fail(c, http.StatusInternalServerError, "Internal server error: "+err.Error())
}

func uploadFile(fh *multipart.FileHeader) service.UploadFile {
	return service.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
