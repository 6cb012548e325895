package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/pkg/apiclient"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type recordingForwarder struct {
	calls []apiclient.ForwardRequest
	body  string
}

func (r *recordingForwarder) ForwardMultipart(_ context.Context, req apiclient.ForwardRequest) (*apiclient.RawResponse, error) {
	data, _ := io.ReadAll(req.Content)
	r.body = string(data)
	r.calls = append(r.calls, req)
	return &apiclient.RawResponse{StatusCode: 201, ContentType: "application/json", Body: []byte(`{"success":true}`)}, nil
}

func textFile(name, content string) UploadFile {
	return UploadFile{
		Filename:    name,
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Open:        func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(content)), nil },
	}
}

func TestUploadCheckOrder(t *testing.T) {
	fwd := &recordingForwarder{}
	svc := NewUploadProxyService(fwd, 16, nil)
	ctx := context.Background()

	_, err := svc.ForwardTerms(ctx, TermsUpload{Authorization: "", Files: nil})
	assert.True(t, errors.Is(err, ErrUploadTypeRequired))

	_, err = svc.ForwardTerms(ctx, TermsUpload{ScholarshipType: "phd", Files: []UploadFile{textFile("a.pdf", "x")}})
	assert.True(t, errors.Is(err, ErrUploadAuthRequired))
	assert.Equal(t, 401, appErrors.FromError(err).Status)

	_, err = svc.ForwardTerms(ctx, TermsUpload{ScholarshipType: "phd", Authorization: "Bearer t"})
	assert.Equal(t, "File is required", appErrors.FromError(err).Message)

	_, err = svc.ForwardTerms(ctx, TermsUpload{ScholarshipType: "phd", Authorization: "Bearer t", Files: []UploadFile{textFile("a.pdf", "x"), textFile("b.pdf", "y")}})
	assert.Equal(t, "File is required", appErrors.FromError(err).Message)

	_, err = svc.ForwardTerms(ctx, TermsUpload{ScholarshipType: "phd", Authorization: "Bearer t", Files: []UploadFile{textFile("a.pdf", strings.Repeat("x", 17))}})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, 400, appErrors.FromError(err).Status)

	assert.Empty(t, fwd.calls)
}

func TestUploadForwardsFileAndAuthorization(t *testing.T) {
	fwd := &recordingForwarder{}
	svc := NewUploadProxyService(fwd, 0, nil)

	resp, err := svc.ForwardTerms(context.Background(), TermsUpload{
		ScholarshipType: "phd",
		Authorization:   "Bearer abc",
		Files:           []UploadFile{textFile("terms.pdf", "%PDF-1.4")},
	})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, int64(10<<20), svc.MaxSize())

	require.Len(t, fwd.calls, 1)
	call := fwd.calls[0]
	assert.Equal(t, "/scholarships/phd/upload-terms", call.Path)
	assert.Equal(t, "Bearer abc", call.Authorization)
	assert.Equal(t, "terms.pdf", call.Filename)
	assert.Equal(t, "%PDF-1.4", fwd.body)
}
