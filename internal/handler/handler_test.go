package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/InQaaaaGit/yt_summary/internal/config"
	"github.com/InQaaaaGit/yt_summary/internal/models"
	"github.com/InQaaaaGit/yt_summary/internal/service"
	"github.com/InQaaaaGit/yt_summary/internal/ui"
	"github.com/InQaaaaGit/yt_summary/internal/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockSummaryService реализует интерфейс SummaryService для тестов
type mockSummaryService struct {
	summarizeFunc func(ctx context.Context, rawURL string) (string, error)
	calls         atomic.Int32
}

func (m *mockSummaryService) Summarize(ctx context.Context, rawURL string) (string, error) {
	m.calls.Add(1)
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, rawURL)
	}
	return "", errors.New("not implemented")
}

// failingFetcher всегда возвращает ошибку получения метаданных
type failingFetcher struct{}

func (failingFetcher) FetchMetadata(ctx context.Context, id string) (*models.VideoMetadata, error) {
	return nil, youtube.ErrVideoNotFound
}

func testConfig() *config.Config {
	return &config.Config{MaxVideoDuration: config.DefaultMaxVideoDuration}
}

// pipelineError собирает ошибку конвейера нужного вида через настоящий сервис
func pipelineError(t *testing.T, rawURL string) error {
	t.Helper()
	svc := service.NewSummaryService(testConfig(), failingFetcher{}, nil, zap.NewNop())
	_, err := svc.Summarize(context.Background(), rawURL)
	require.Error(t, err)
	return err
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_HandleSummarize(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		summarize   func(ctx context.Context, rawURL string) (string, error)
		wantStatus  int
		wantKey     string
		wantMessage string
		wantCalls   int32
	}{
		{
			name: "success",
			body: `{"url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`,
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", rawURL)
				return "A short summary.", nil
			},
			wantStatus:  http.StatusOK,
			wantKey:     "summary",
			wantMessage: "A short summary.",
			wantCalls:   1,
		},
		{
			name: "missing url field",
			body: `{}`,
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				return "", pipelineError(t, rawURL)
			},
			wantStatus:  http.StatusBadRequest,
			wantKey:     "error",
			wantMessage: MessageURLRequired,
			wantCalls:   1,
		},
		{
			name: "empty body",
			body: "",
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				assert.Empty(t, rawURL)
				return "", pipelineError(t, rawURL)
			},
			wantStatus:  http.StatusBadRequest,
			wantKey:     "error",
			wantMessage: MessageURLRequired,
			wantCalls:   1,
		},
		{
			name: "invalid url",
			body: `{"url":"https://example.com/video"}`,
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				return "", pipelineError(t, rawURL)
			},
			wantStatus:  http.StatusBadRequest,
			wantKey:     "error",
			wantMessage: MessageInvalidURL,
			wantCalls:   1,
		},
		{
			name: "metadata unavailable",
			body: `{"url":"https://youtu.be/dQw4w9WgXcQ"}`,
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				return "", pipelineError(t, rawURL)
			},
			wantStatus:  http.StatusBadRequest,
			wantKey:     "error",
			wantMessage: MessageMetadataFailed,
			wantCalls:   1,
		},
		{
			name: "video too long",
			body: `{"url":"https://youtu.be/dQw4w9WgXcQ"}`,
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				return "", &service.Error{Kind: service.KindVideoTooLong, Stage: service.StageDuration, Err: service.ErrVideoTooLong}
			},
			wantStatus:  http.StatusBadRequest,
			wantKey:     "error",
			wantMessage: MessageVideoTooLong,
			wantCalls:   1,
		},
		{
			name: "generation failure",
			body: `{"url":"https://youtu.be/dQw4w9WgXcQ"}`,
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				return "", &service.Error{Kind: service.KindUnexpected, Stage: service.StageGenerate, Err: errors.New("quota exceeded")}
			},
			wantStatus:  http.StatusInternalServerError,
			wantKey:     "error",
			wantMessage: MessageUnexpected,
			wantCalls:   1,
		},
		{
			name: "unclassified error",
			body: `{"url":"https://youtu.be/dQw4w9WgXcQ"}`,
			summarize: func(ctx context.Context, rawURL string) (string, error) {
				return "", fmt.Errorf("wrapped: %w", context.DeadlineExceeded)
			},
			wantStatus:  http.StatusInternalServerError,
			wantKey:     "error",
			wantMessage: MessageUnexpected,
			wantCalls:   1,
		},
		{
			name:        "malformed json",
			body:        `{"url":`,
			wantStatus:  http.StatusInternalServerError,
			wantKey:     "error",
			wantMessage: MessageUnexpected,
			wantCalls:   0,
		},
		{
			name:        "url of wrong type",
			body:        `{"url":42}`,
			wantStatus:  http.StatusInternalServerError,
			wantKey:     "error",
			wantMessage: MessageUnexpected,
			wantCalls:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSummaryService{summarizeFunc: tt.summarize}
			h := NewHandler(svc, zap.NewNop(), nil)

			req := httptest.NewRequest(http.MethodPost, SummarizeEndpoint, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", contentTypeJSON)
			w := httptest.NewRecorder()

			h.HandleSummarize(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, contentTypeJSON, w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantCalls, svc.calls.Load())

			body := decodeBody(t, w)
			assert.Len(t, body, 1)
			assert.Equal(t, tt.wantMessage, body[tt.wantKey])
		})
	}
}

func TestHandler_HandleSummarize_BodyTooLarge(t *testing.T) {
	svc := &mockSummaryService{}
	h := NewHandler(svc, zap.NewNop(), nil)

	payload := `{"url":"` + strings.Repeat("a", maxRequestBodySize) + `"}`
	req := httptest.NewRequest(http.MethodPost, SummarizeEndpoint, strings.NewReader(payload))
	w := httptest.NewRecorder()

	h.HandleSummarize(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, messageRequestTooLarge, decodeBody(t, w)["error"])
	assert.Zero(t, svc.calls.Load())
}

func TestHandler_HandleSummarize_PassesRequestContext(t *testing.T) {
	type ctxKey struct{}
	svc := &mockSummaryService{
		summarizeFunc: func(ctx context.Context, rawURL string) (string, error) {
			assert.Equal(t, "marker", ctx.Value(ctxKey{}))
			return "ok", nil
		},
	}
	h := NewHandler(svc, zap.NewNop(), nil)

	req := httptest.NewRequest(http.MethodPost, SummarizeEndpoint, strings.NewReader(`{"url":"https://youtu.be/dQw4w9WgXcQ"}`))
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	w := httptest.NewRecorder()

	h.HandleSummarize(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind       service.ErrorKind
		wantStatus int
		wantMsg    string
	}{
		{service.KindMissingURL, http.StatusBadRequest, MessageURLRequired},
		{service.KindInvalidURL, http.StatusBadRequest, MessageInvalidURL},
		{service.KindMetadataUnavailable, http.StatusBadRequest, MessageMetadataFailed},
		{service.KindVideoTooLong, http.StatusBadRequest, MessageVideoTooLong},
		{service.KindUnexpected, http.StatusInternalServerError, MessageUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			status, msg := statusFor(&service.Error{Kind: tt.kind, Err: errors.New("x")})
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestHandler_HandleIndex(t *testing.T) {
	page, err := ui.NewPage()
	require.NoError(t, err)
	h := NewHandler(&mockSummaryService{}, zap.NewNop(), page)

	w := httptest.NewRecorder()
	h.HandleIndex(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeHTML, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<title>"+PageTitle+"</title>")
}

func TestHandler_HandleIndex_NoPage(t *testing.T) {
	h := NewHandler(&mockSummaryService{}, zap.NewNop(), nil)

	w := httptest.NewRecorder()
	h.HandleIndex(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandlePing(t *testing.T) {
	h := NewHandler(&mockSummaryService{}, zap.NewNop(), nil)

	w := httptest.NewRecorder()
	h.HandlePing(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
