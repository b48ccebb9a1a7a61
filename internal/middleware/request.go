package middleware

import (
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/indigo-rhapsody/indigo-admin/internal/correlation"
	"github.com/indigo-rhapsody/indigo-admin/internal/logger"
)

// RequestID tags every request with a correlation id, reusing a well-formed
// X-Request-ID from the caller. The id is echoed in the response and sent on
// to the backend by the API client.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(correlation.Header)
		if _, err := uuid.Parse(id); err != nil {
			id = correlation.NewID()
		}
		w.Header().Set(correlation.Header, id)
		next.ServeHTTP(w, r.WithContext(correlation.WithID(r.Context(), id)))
	})
}

// RequestLogger logs one line per request. Static assets are logged at
// debug level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		}
		switch {
		case status >= 500:
			logger.Log.ErrorContext(r.Context(), "request", attrs...)
		case strings.HasPrefix(r.URL.Path, "/static/"):
			logger.Log.DebugContext(r.Context(), "request", attrs...)
		default:
			logger.Log.InfoContext(r.Context(), "request", attrs...)
		}
	})
}
