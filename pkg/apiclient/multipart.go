package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/pkg/middleware/requestid"
)

// ForwardRequest describes a multipart upload relayed to the backend.
type ForwardRequest struct {
	Path          string
	Authorization string
	FieldName     string
	Filename      string
	ContentType   string
	Content       io.Reader
	Fields        map[string]string
	Operation     string
}

// RawResponse is a backend response relayed without normalization.
type RawResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// ForwardMultipart rebuilds a fresh multipart body around one file and
// posts it to the backend. The writer chooses the boundary; the request
// Content-Type is taken from it and never set by callers.
func (c *Client) ForwardMultipart(ctx context.Context, req ForwardRequest) (*RawResponse, error) {
	field := req.FieldName
	if field == "" {
		field = "file"
	}

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for key, value := range req.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("write multipart field %s: %w", key, err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, req.Filename))
	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create multipart file part: %w", err)
	}
	if req.Content != nil {
		if _, err := io.Copy(part, req.Content); err != nil {
			return nil, fmt.Errorf("copy multipart file: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(req.Path, nil), buf)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	if req.Authorization != "" {
		httpReq.Header.Set("Authorization", req.Authorization)
	}
	if id := requestid.FromContext(ctx); id != "" {
		httpReq.Header.Set(requestid.Header, id)
	}

	op := req.Operation
	if op == "" {
		op = req.Path
	}
	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if c.recorder != nil {
			c.recorder.ObserveBackendCall(op, http.MethodPost, 0, time.Since(start))
		}
		c.logger.Warn("backend upload failed", zap.String("path", req.Path), zap.Error(err))
		return nil, fmt.Errorf("forward upload: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if c.recorder != nil {
		c.recorder.ObserveBackendCall(op, http.MethodPost, resp.StatusCode, time.Since(start))
	}
	if err != nil {
		return nil, fmt.Errorf("read upload response: %w", err)
	}
	return &RawResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// Fetch performs a request and returns the raw body, for binary downloads.
func (c *Client) Fetch(ctx context.Context, req Request) (*RawResponse, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.url(req.Path, req.Query), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operationName(req), err)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if id := requestid.FromContext(ctx); id != "" {
		httpReq.Header.Set(requestid.Header, id)
	}
	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.observe(req, method, 0, time.Since(start))
		return nil, fmt.Errorf("%s: %w", operationName(req), err)
	}
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	c.observe(req, method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", operationName(req), err)
	}
	return &RawResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
