package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"rsvpportal/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeSessionExpired = "session_expired"
	ErrCodeNotFound       = "not_found"
	ErrCodeConflict       = "conflict"
	ErrCodeUpstream       = "upstream_error"
	ErrCodeInternalError  = "internal_error"
)

// LoginPath is where clients are sent once their session is gone.
const LoginPath = "/login"

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// WriteSessionExpired answers 401 and points the client at the login page.
func WriteSessionExpired(w http.ResponseWriter, message string) {
	w.Header().Set("X-Redirect", LoginPath)
	WriteJSONError(w, http.StatusUnauthorized, ErrCodeSessionExpired, message)
}

// WriteError maps err to a status and error code. Server-side failures are
// logged; client errors are not.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	WriteErrorMessage(w, r, logger, err, domain.UserMessage(err))
}

// WriteErrorMessage is WriteError with a caller-chosen message.
func WriteErrorMessage(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		WriteSessionExpired(w, msg)
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, msg)
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEventPassed),
		errors.Is(err, domain.ErrSubmissionInFlight):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, msg)
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrTransport):
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusBadGateway, ErrCodeUpstream, msg)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal error")
	}
}
