package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// PagedResponse wraps list payloads with pagination metadata.
type PagedResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already written; nothing more we can do for the client.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages a client can act on. Anything unrecognized is a 500 with a
// generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidVolume):
		return http.StatusBadRequest, ErrMsgVolumeMustBePositive
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, ErrMsgInvalidStatusError
	case errors.Is(err, domain.ErrMaterialNotFound):
		return http.StatusNotFound, ErrMsgMaterialNotFoundErr
	case errors.Is(err, domain.ErrPriceUnresolved):
		return http.StatusNotFound, ErrMsgNoCurrentPriceError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, ErrMsgTaskNotFoundError
	case errors.Is(err, domain.ErrDuplicateCode):
		return http.StatusBadRequest, ErrMsgDuplicateCodeError
	case errors.Is(err, domain.ErrDuplicateTaskNo):
		return http.StatusBadRequest, ErrMsgDuplicateTaskNoErr
	case errors.Is(err, domain.ErrRecipeNotPending):
		return http.StatusBadRequest, ErrMsgRecipeNotPendingErr
	case errors.Is(err, domain.ErrRecipeNotApproved):
		return http.StatusBadRequest, ErrMsgRecipeNotApprovedErr
	case errors.Is(err, domain.ErrPriceIncomplete):
		return http.StatusBadRequest, ErrMsgPriceIncompleteError
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, ErrMsgInvalidTokenError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the failure and writes the mapped error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	if statusCode >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	}
	respondError(w, statusCode, userMsg)
}
