package export

import (
	"errors"
	"net/http"

	"github.com/avolkmann/cantor/pkg/storage"
)

// Domain errors for export operations.
var (
	ErrInvalidFormat    = errors.New("invalid export format")
	ErrMalformedRecord  = errors.New("malformed training record")
	ErrArtifactNotFound = errors.New("export artifact not found")
)

// MapHTTPStatus maps export domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrArtifactNotFound) || errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrMalformedRecord) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
