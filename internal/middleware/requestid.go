package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

const (
	// RequestIDHeader заголовок с идентификатором запроса
	RequestIDHeader = "X-Request-ID"

	requestIDKey contextKey = "request_id"

	maxRequestIDLength = 128
)

// RequestID присваивает запросу идентификатор.
// Идентификатор из входящего заголовка сохраняется, иначе генерируется UUID.
// Значение возвращается клиенту в заголовке X-Request-ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID возвращает идентификатор запроса из контекста или пустую строку
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
