package server

import (
	"encoding/json"
	"net/http"

	"msgraphifttt/internal/common/logger"
)

// errorEnvelope is the failure body for every endpoint:
// {"errors":[{"message":"..."}]}
type errorEnvelope struct {
	Errors []errorMessage `json:"errors"`
}

type errorMessage struct {
	Message string `json:"message"`
}

// idEnvelope is the success body for action endpoints.
type idEnvelope struct {
	Data []idEntry `json:"data"`
}

type idEntry struct {
	ID string `json:"id"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.LogError(s.logger, "Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorEnvelope{Errors: []errorMessage{{Message: message}}})
}

// writeUpstreamError reports a failed Graph call. Upstream detail is
// embedded for diagnostics; this service trusts its caller.
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	logger.LogWarn(s.logger, "Graph call failed", "error", err)
	s.writeError(w, http.StatusUnauthorized, "Retrieving Graph data failed : "+err.Error())
}
