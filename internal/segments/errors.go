package segments

import (
	"errors"
	"net/http"
)

// Domain errors for segment operations.
var (
	ErrNotFound         = errors.New("segment not found")
	ErrDuplicate        = errors.New("segment already exists")
	ErrInvalidSegment   = errors.New("invalid segment")
	ErrInvalidKind      = errors.New("invalid segment kind")
	ErrInvalidOrdering  = errors.New("segment ordering must be contiguous from zero")
	ErrSelfLink         = errors.New("segment cannot be linked to itself")
)

// MapHTTPStatus maps segment domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidSegment) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidOrdering) ||
		errors.Is(err, ErrSelfLink) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
