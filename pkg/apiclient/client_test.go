package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/pkg/middleware/requestid"
)

type recordedCall struct {
	operation string
	method    string
	status    int
}

type stubRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *stubRecorder) ObserveBackendCall(operation, method string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{operation, method, status})
}

func TestNormalizeEnvelope(t *testing.T) {
	res := Normalize(200, []byte(`{"success":true,"data":{"id":1},"message":"ok"}`))
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"id":1}`, string(res.Data))
	assert.Equal(t, "ok", res.Message)

	res = Normalize(200, []byte(`{"success":false,"message":"quota exceeded"}`))
	assert.False(t, res.Success)
	assert.Equal(t, "quota exceeded", res.Message)
}

func TestNormalizeBareJSON(t *testing.T) {
	res := Normalize(200, []byte(`[{"id":1},{"id":2}]`))
	assert.True(t, res.Success)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(res.Data))

	res = Normalize(201, []byte(`{"id":5}`))
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"id":5}`, string(res.Data))
}

func TestNormalizeErrorMessages(t *testing.T) {
	res := Normalize(404, []byte(`{"detail":"Ranking not found"}`))
	assert.False(t, res.Success)
	assert.Equal(t, "Ranking not found", res.Message)

	res = Normalize(422, []byte(`{"detail":[{"loc":["body","reason"],"msg":"field required"}]}`))
	assert.Equal(t, "field required", res.Message)

	res = Normalize(400, []byte(`{"error":{"message":"bad period"}}`))
	assert.Equal(t, "bad period", res.Message)

	res = Normalize(500, nil)
	assert.Equal(t, "Request failed with status 500", res.Message)
	assert.Equal(t, 500, res.StatusCode)

	res = Normalize(503, []byte("upstream unavailable"))
	assert.Equal(t, "upstream unavailable", res.Message)
}

func TestNormalizeEnvelopeSuccessOverriddenByStatus(t *testing.T) {
	res := Normalize(403, []byte(`{"success":true,"data":null}`))
	assert.False(t, res.Success)
	assert.Equal(t, "Request failed with status 403", res.Message)
	assert.Nil(t, res.Data)
}

func TestDoSendsTokenBodyAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(requestid.Header)
		gotContentType = r.Header.Get("Content-Type")
		assert.Equal(t, "/api/v1/college-review/applications/9/approve", r.URL.Path)
		assert.Equal(t, "2024", r.URL.Query().Get("academic_year"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"status":"approved"},"message":"done"}`))
	}))
	defer srv.Close()

	recorder := &stubRecorder{}
	client := New(Config{BaseURL: srv.URL + "/api/v1/", Recorder: recorder})
	ctx := requestid.WithContext(context.Background(), "req-1")

	res, err := client.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      "/college-review/applications/9/approve",
		Query:     map[string][]string{"academic_year": {"2024"}},
		Body:      map[string]string{"comment": "ok"},
		Token:     "tok",
		Operation: "college.approve",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "ok", gotBody["comment"])

	decoded, err := Decode[map[string]string](res)
	require.NoError(t, err)
	assert.Equal(t, "approved", decoded["status"])

	require.Len(t, recorder.calls, 1)
	assert.Equal(t, recordedCall{"college.approve", http.MethodPost, 200}, recorder.calls[0])
}

func TestDoReturnsResultForHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Ranking already finalized"}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	res, err := client.Get(context.Background(), "/rankings/1", "", nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "Ranking already finalized", res.Message)
}

func TestDoTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	recorder := &stubRecorder{}
	client := New(Config{BaseURL: url, Recorder: recorder})
	res, err := client.Get(context.Background(), "/scholarships", "tok", nil)
	assert.Error(t, err)
	assert.Nil(t, res)
	require.Len(t, recorder.calls, 1)
	assert.Equal(t, 0, recorder.calls[0].status)
}

func TestDecodeEmptyData(t *testing.T) {
	_, err := Decode[[]int](&Result{Success: true})
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestForwardMultipartRebuildsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "terms.pdf", header.Filename)
		assert.Equal(t, "PDFDATA", string(content))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"file_path":"terms/phd.pdf"}}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	resp, err := client.ForwardMultipart(context.Background(), ForwardRequest{
		Path:          "/api/v1/scholarships/phd/upload-terms",
		Authorization: "Bearer abc",
		Filename:      "terms.pdf",
		ContentType:   "application/pdf",
		Content:       strings.NewReader("PDFDATA"),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"success":true,"data":{"file_path":"terms/phd.pdf"}}`, string(resp.Body))
}

func TestFetchRelaysBinary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	resp, err := client.Fetch(context.Background(), Request{Path: "/payment-rosters/1/download", Token: "t"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, resp.Body)
}
