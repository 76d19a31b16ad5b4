package annotations

import (
	"errors"
	"net/http"
)

// Domain errors for annotation operations.
var (
	ErrNotFound            = errors.New("annotation not found")
	ErrDuplicate           = errors.New("annotation already exists")
	ErrInvalidAnnotation   = errors.New("invalid annotation")
	ErrInvalidTaggerOutput = errors.New("tagger returned malformed output")
	ErrUnknownTagger       = errors.New("unknown tagger")
)

// MapHTTPStatus maps annotation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidAnnotation) ||
		errors.Is(err, ErrInvalidTaggerOutput) ||
		errors.Is(err, ErrUnknownTagger) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
