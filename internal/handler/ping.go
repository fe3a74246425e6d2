package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// HandlePing отвечает на проверку доступности сервиса.
// Внешние API не опрашиваются.
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Error("Error writing ping response", zap.Error(err))
	}
}
