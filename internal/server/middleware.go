// internal/server/middleware.go
package server

import (
	"net/http"
	"strconv"
	"time"

	"activity-signup/internal/common/metrics"

	"github.com/google/uuid"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with a request id, access logging, and metrics.
// route is the registered pattern, not the concrete path, to keep metric
// cardinality bounded.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		duration := time.Since(start)
		status := strconv.Itoa(rec.status)

		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(duration.Seconds())
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), route, status)
			s.obs.RecordRequestDuration(r.Context(), duration, route)
		}

		s.logger.Info("request handled", map[string]interface{}{
			"requestId": requestID,
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"duration":  duration.String(),
		})
	}
}
