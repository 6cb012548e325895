package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

var (
	// ErrUploadTypeRequired is returned for an empty scholarship type.
	ErrUploadTypeRequired = appErrors.New("VALIDATION_ERROR", http.StatusBadRequest, "Scholarship type is required")
	// ErrUploadAuthRequired is returned when no Authorization header came in.
	ErrUploadAuthRequired = appErrors.New("UNAUTHORIZED", http.StatusUnauthorized, "Authorization header is required")
	// ErrUploadFileRequired is returned unless exactly one file was sent.
	ErrUploadFileRequired = appErrors.New("VALIDATION_ERROR", http.StatusBadRequest, "File is required")
)

type multipartForwarder interface {
	ForwardMultipart(ctx context.Context, req apiclient.ForwardRequest) (*apiclient.RawResponse, error)
}

// UploadFile is one file received from the browser.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// TermsUpload is a scholarship terms document upload.
type TermsUpload struct {
	ScholarshipType string
	Authorization   string
	Files           []UploadFile
}

// UploadProxyService relays scholarship terms uploads to the backend.
type UploadProxyService struct {
	client  multipartForwarder
	maxSize int64
	logger  *zap.Logger
}

// NewUploadProxyService constructs an UploadProxyService.
func NewUploadProxyService(client multipartForwarder, maxSize int64, logger *zap.Logger) *UploadProxyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &UploadProxyService{client: client, maxSize: maxSize, logger: logger}
}

// MaxSize is the largest accepted file in bytes.
func (s *UploadProxyService) MaxSize() int64 {
	return s.maxSize
}

// CheckRequest validates the parts of an upload available before the body
// is parsed: type first, then the Authorization header.
func (s *UploadProxyService) CheckRequest(scholarshipType, authorization string) error {
	if strings.TrimSpace(scholarshipType) == "" {
		return ErrUploadTypeRequired
	}
	if strings.TrimSpace(authorization) == "" {
		return ErrUploadAuthRequired
	}
	return nil
}

// ForwardTerms validates the upload and relays it. The backend status and
// body are returned untouched.
func (s *UploadProxyService) ForwardTerms(ctx context.Context, req TermsUpload) (*apiclient.RawResponse, error) {
	if err := s.CheckRequest(req.ScholarshipType, req.Authorization); err != nil {
		return nil, err
	}
	if len(req.Files) != 1 || req.Files[0].Open == nil {
		return nil, ErrUploadFileRequired
	}
	file := req.Files[0]
	if file.Size > s.maxSize {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("File size exceeds the %d byte limit", s.maxSize))
	}

	content, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer content.Close() //nolint:errcheck

	resp, err := s.client.ForwardMultipart(ctx, apiclient.ForwardRequest{
		Path:          "/scholarships/" + url.PathEscape(req.ScholarshipType) + "/upload-terms",
		Authorization: req.Authorization,
		FieldName:     "file",
		Filename:      file.Filename,
		ContentType:   file.ContentType,
		Content:       content,
		Operation:     "scholarship.upload_terms",
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("terms upload relayed",
		zap.String("scholarship_type", req.ScholarshipType),
		zap.String("filename", file.Filename),
		zap.Int("status", resp.StatusCode),
	)
	return resp, nil
}
