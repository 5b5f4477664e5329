package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/label-catalog/internal/domain"
)

// Error codes carried in ErrorDetail.Code.
const (
	codeNotFound   = "not_found"
	codeValidation = "validation_error"
	codeConflict   = "conflict"
	codeInternal   = "internal_error"
	codeTooLarge   = "request_too_large"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler is the layer that
// knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: codeNotFound, Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: codeValidation, Message: detailMessage(err, domain.ErrValidation, "invalid request")}}
}

// conflictBody returns an ErrorResponse for a slug that could not be claimed.
func conflictBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: codeConflict, Message: detailMessage(err, domain.ErrConflict, "slug already taken")}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: codeValidation, Message: message}}
}

// writeBodyError reports a decodeBody failure: 413 when the body ran past
// the size limit, 422 otherwise.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: ErrorDetail{Code: codeTooLarge, Message: "request body too large"},
		})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}

// detailMessage extracts the human-readable part that follows sentinel in a
// wrapped error chain, e.g.
// "service.ArtistService.Create: validation error: name is required" → "name is required".
// It returns fallback when nothing follows the sentinel.
func detailMessage(err, sentinel error, fallback string) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 && len(msg) > i+len(marker) {
		return msg[i+len(marker):]
	}
	return fallback
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto its HTTP status and error body.
// notFound is the message used when err wraps domain.ErrNotFound and
// carries no detail of its own. Anything unrecognised is logged and
// reported as a 500 without leaking internals.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(detailMessage(err, domain.ErrNotFound, notFound)))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, conflictBody(err))
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: codeInternal, Message: "internal server error"},
		})
	}
}
