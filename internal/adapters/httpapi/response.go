package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"regportal/internal/domain"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps the Ledger's error taxonomy onto HTTP statuses.
// All four user-facing kinds come back as structured bodies; infrastructure
// failures surface as 5xx with a generic message.
func (s *Server) writeDomainError(w http.ResponseWriter, err error, data map[string]any) {
	if fields, ok := domain.IsValidation(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  s.translator.T(s.locale, "error.validation", nil),
			Code:   "validation",
			Fields: fields,
		})
		return
	}
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: s.translator.T(s.locale, "error.duplicate_email", nil),
			Code:  "duplicate_email",
		})
	case errors.Is(err, domain.ErrCapacityExceeded):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: s.translator.T(s.locale, "error.capacity", data),
			Code:  "capacity_exceeded",
		})
	case errors.Is(err, domain.ErrUnknownEvent):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: s.translator.T(s.locale, "error.unknown_event", nil),
			Code:  "unknown_event",
		})
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: s.translator.T(s.locale, "error.store", nil),
			Code:  "store_unavailable",
		})
	default:
		log.Printf("httpapi: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: s.translator.T(s.locale, "error.store", nil),
			Code:  "store_error",
		})
	}
}
