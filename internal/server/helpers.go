package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/raphaelgruber/contactbot-go/internal/store"
)

// errorDetail is the error payload shape clients parse.
type errorDetail struct {
	Detail struct {
		Message string `json:"message"`
	} `json:"detail"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	var body errorDetail
	body.Detail.Message = message
	s.writeJSON(w, status, body)
}

// writeStoreError maps store sentinels onto HTTP statuses. conflictMessage is
// the message for uniqueness violations, e.g. "Contact already exists".
func (s *Server) writeStoreError(w http.ResponseWriter, err error, conflictMessage string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrAlreadyExists):
		s.writeError(w, http.StatusBadRequest, conflictMessage)
	default:
		s.logger.Error("store operation failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// decode parses the JSON request body into v. A false return means the error
// response has already been written.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
