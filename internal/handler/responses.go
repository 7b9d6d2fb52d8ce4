package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/logger"
	"github.com/osse101/DexBinder_Go/internal/validation"
)

// Error codes surfaced in the response envelope.
const (
	CodeValidationError     = "ValidationError"
	CodeBadRequest          = "BadRequest"
	CodeNotFound            = "NotFound"
	CodeConflict            = "Conflict"
	CodeUnauthorized        = "Unauthorized"
	CodeTooManyRequests     = "TooManyRequests"
	CodeInternalServerError = "InternalServerError"
)

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorMeta correlates a failure with the request that produced it.
type ErrorMeta struct {
	Status    int    `json:"status"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the envelope every failure is reported in. Details carries
// the field-path -> reason map on validation failures.
type ErrorResponse struct {
	Error   ErrorBody   `json:"error"`
	Meta    ErrorMeta   `json:"meta"`
	Details interface{} `json:"details,omitempty"`
}

// SeedResponse acknowledges a bulk seed run.
type SeedResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer so a marshal failure never truncates the body
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends the standard error envelope
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondErrorDetails(w, r, status, code, message, nil)
}

// respondErrorDetails sends the standard error envelope with a details payload
func respondErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	requestID, _ := logger.RequestIDFromContext(r.Context())
	respondJSON(w, status, ErrorResponse{
		Error: ErrorBody{Code: code, Message: message},
		Meta: ErrorMeta{
			Status:    status,
			Method:    r.Method,
			Path:      r.URL.Path,
			RequestID: requestID,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Details: details,
	})
}

// respondValidationError reports a failed parse with the full violation map
func respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		respondErrorDetails(w, r, http.StatusBadRequest, CodeValidationError,
			"Payload validation failed", verr.Fields)
		return
	}
	respondError(w, r, http.StatusBadRequest, CodeValidationError, "Payload validation failed")
}

// respondServiceError maps sentinel domain errors onto envelope codes.
// Anything unrecognized is an internal error; the detail stays in the log.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound):
		respondError(w, r, http.StatusNotFound, CodeNotFound, domain.ErrMsgSlotNotFound)
	case errors.Is(err, domain.ErrEntryNotFound):
		respondError(w, r, http.StatusNotFound, CodeNotFound, domain.ErrMsgEntryNotFound)
	case errors.Is(err, domain.ErrSlotExists):
		respondError(w, r, http.StatusConflict, CodeConflict, domain.ErrMsgSlotExists)
	case errors.Is(err, domain.ErrEntryExists):
		respondError(w, r, http.StatusConflict, CodeConflict, domain.ErrMsgEntryExists)
	case errors.Is(err, domain.ErrInvalidInput):
		respondValidationError(w, r, err)
	default:
		log.Error("Unhandled service error", "error", err, "path", r.URL.Path)
		respondError(w, r, http.StatusInternalServerError, CodeInternalServerError, "Something went wrong")
	}
}
