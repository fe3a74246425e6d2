package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/InQaaaaGit/yt_summary/internal/middleware"
	"github.com/InQaaaaGit/yt_summary/internal/models"
	"github.com/InQaaaaGit/yt_summary/internal/service"
	"github.com/InQaaaaGit/yt_summary/internal/ui"
	"go.uber.org/zap"
)

const (
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"

	// PageTitle заголовок страницы интерфейса
	PageTitle = "YouTube Video Summarizer"
	// SummarizeEndpoint путь API, к которому обращается страница
	SummarizeEndpoint = "/api/summarize"

	maxRequestBodySize = 64 << 10
)

// Сообщения об ошибках, которые получает клиент
const (
	MessageURLRequired      = "URL is required"
	MessageInvalidURL       = "Invalid YouTube URL"
	MessageMetadataFailed   = "Unable to fetch video information. Please check if the video is public and try again."
	MessageVideoTooLong     = "Video is too long. Please use videos under 1 hour in duration."
	MessageUnexpected       = "An unexpected error occurred while processing the request."
	messageRequestTooLarge  = "Request body is too large"
	messagePageRenderFailed = "Internal server error"
)

// SummaryService определяет интерфейс конвейера получения резюме
type SummaryService interface {
	Summarize(ctx context.Context, rawURL string) (string, error)
}

type Handler struct {
	service SummaryService
	logger  *zap.Logger
	page    *ui.Page
}

// NewHandler создает обработчик. page может быть nil, если страница интерфейса не нужна.
func NewHandler(service SummaryService, logger *zap.Logger, page *ui.Page) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		page:    page,
	}
}

// HandleSummarize обрабатывает POST /api/summarize.
// Тело запроса {"url": "..."}, ответ {"summary": "..."} или {"error": "..."}.
func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer func() {
		if err := r.Body.Close(); err != nil {
			h.logger.Error("Error closing request body", zap.Error(err))
		}
	}()

	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			// Пустое тело равносильно отсутствию ссылки
		case errors.As(err, &maxBytesErr):
			h.writeError(w, http.StatusRequestEntityTooLarge, messageRequestTooLarge)
			return
		default:
			h.logger.Error("Error decoding request body",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, MessageUnexpected)
			return
		}
	}

	summary, err := h.service.Summarize(r.Context(), req.URL)
	if err != nil {
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Error summarizing video",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Error(err))
		}
		h.writeError(w, status, message)
		return
	}

	h.writeJSON(w, http.StatusOK, models.SummarizeResponse{Summary: summary})
}

// statusFor сопоставляет вид ошибки конвейера с кодом ответа и сообщением
func statusFor(err error) (int, string) {
	switch service.KindOf(err) {
	case service.KindMissingURL:
		return http.StatusBadRequest, MessageURLRequired
	case service.KindInvalidURL:
		return http.StatusBadRequest, MessageInvalidURL
	case service.KindMetadataUnavailable:
		return http.StatusBadRequest, MessageMetadataFailed
	case service.KindVideoTooLong:
		return http.StatusBadRequest, MessageVideoTooLong
	default:
		return http.StatusInternalServerError, MessageUnexpected
	}
}

// HandleIndex отдает страницу интерфейса
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if h.page == nil {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	err := h.page.Render(&buf, ui.PageData{
		Title:    PageTitle,
		Endpoint: SummarizeEndpoint,
	})
	if err != nil {
		h.logger.Error("Error rendering page", zap.Error(err))
		http.Error(w, messagePageRenderFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Error writing page", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, models.ErrorResponse{Error: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}
