package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"northlinktelecom.com/cmd/server/database"
)

// ErrorResponse represents a JSON error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	OK bool `json:"ok"`
}

// HealthzHandler handles GET /healthz
func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{OK: true})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// respondRepoError maps repository errors onto HTTP statuses. fallback is
// the generic message used for unexpected store or transport failures.
func respondRepoError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", "The requested resource does not exist")
	case errors.Is(err, database.ErrNotAuthorized):
		respondError(w, http.StatusForbidden, "forbidden", "Your role does not permit this action")
	case errors.Is(err, database.ErrDivisionInUse):
		respondError(w, http.StatusConflict, "division_in_use",
			"This division still has services assigned to it; move or delete them first")
	case errors.Is(err, database.ErrCategoryDivisionMismatch):
		respondError(w, http.StatusBadRequest, "category_division_mismatch",
			"The selected category belongs to a different division")
	default:
		respondError(w, http.StatusInternalServerError, "internal_server_error", fallback)
	}
}

// decodeBody decodes a JSON request body into dst, rejecting unparseable
// payloads uniformly
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", "Request body is not valid JSON")
		return false
	}
	return true
}

// filterFields keeps only the allowed columns of a partial-update body, so
// callers can never touch columns the resource does not expose
func filterFields(body map[string]interface{}, allowed ...string) map[string]interface{} {
	fields := make(map[string]interface{})
	for _, key := range allowed {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}
	return fields
}
