// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"

	"activity-signup/internal/common/errors"
	"activity-signup/internal/common/metrics"
)

// messageResponse is the success payload for signup and unregister.
type messageResponse struct {
	Message string `json:"message"`
}

// detailResponse is the error payload for every failed operation.
type detailResponse struct {
	Detail string `json:"detail"`
}

// handleRoot redirects the bare root to the static landing page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// handleListActivities returns every activity keyed by name. The rendered
// payload is served from the list cache when warm.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	if payload, ok := s.cache.Get(r.Context()); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	payload, err := json.Marshal(s.registry.List())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.cache.Set(r.Context(), payload)
	writeRawJSON(w, http.StatusOK, payload)
}

// handleSignup enrolls an email in the named activity.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "email query parameter is required"})
		return
	}

	msg, err := s.registry.Signup(activityName, email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.cache.Invalidate(r.Context())
	metrics.SignupsTotal.WithLabelValues(activityName).Inc()
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// handleUnregister removes an email from the named activity.
func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	activityName := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "email query parameter is required"})
		return
	}

	msg, err := s.registry.Unregister(activityName, email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.cache.Invalidate(r.Context())
	metrics.WithdrawalsTotal.WithLabelValues(activityName).Inc()
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// writeError maps a registry error to its fixed status and detail message.
// Anything else is reported as an opaque 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if regErr, ok := errors.AsRegistryError(err); ok {
		writeJSON(w, regErr.Status, detailResponse{Detail: regErr.Detail})
		return
	}

	s.logger.Error("request failed", map[string]interface{}{
		"path":  r.URL.Path,
		"error": err.Error(),
	})
	writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
