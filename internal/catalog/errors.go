package catalog

import (
	"errors"
	"net/http"
)

// Domain errors for catalog operations.
var (
	ErrNotFound          = errors.New("source not found")
	ErrDuplicate         = errors.New("source already registered")
	ErrInvalidTier       = errors.New("tier must be between 1 and 8")
	ErrInvalidTransition = errors.New("acquisition status transition not allowed")
	ErrInvalidStatus     = errors.New("invalid acquisition status")
	ErrInvalidFormat     = errors.New("invalid source format")
	ErrInvalidSource     = errors.New("invalid source")
	ErrFileTooLarge      = errors.New("file exceeds maximum upload size")
	ErrNoExtractedText   = errors.New("source has no extracted text")
)

// MapHTTPStatus maps catalog domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoExtractedText) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidTransition) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidTier) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidSource) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
