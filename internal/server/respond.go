package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorBody is the error response shape used across every endpoint.
type errorBody struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorBody{Error: msg, StatusCode: status})
}
