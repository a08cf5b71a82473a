package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags every request with a generated ID, exposes it as the
// X-Request-ID response header, and logs method, path, status and duration
// once the handler returns.
func RequestLogger(log *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
			requestID := uuid.NewString()
			wrt.Header().Set("X-Request-ID", requestID)

			recorder := &statusRecorder{ResponseWriter: wrt, status: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(recorder, req)

			log.InfoContext(req.Context(), "Request handled",
				"request_id", requestID,
				"method", req.Method,
				"path", req.URL.Path,
				"status", recorder.status,
				"duration_ms", time.Since(startTime).Milliseconds(),
			)
		})
	}
}
