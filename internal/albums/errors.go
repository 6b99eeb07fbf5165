package albums

import (
	"errors"
	"net/http"
)

// Domain errors for album operations.
var (
	// ErrNotFound indicates no album row matches the identifier.
	ErrNotFound = errors.New("album not found")

	// ErrDocumentMissing indicates the album row exists but its PDF file
	// is absent from the asset store (a dangling reference).
	ErrDocumentMissing = errors.New("album pdf not found")

	// ErrGenerate indicates PDF rendering or writing failed. No database
	// write is attempted after this error.
	ErrGenerate = errors.New("pdf generation failed")

	ErrDuplicate    = errors.New("album already exists")
	ErrFileTooLarge = errors.New("image exceeds maximum upload size")
	ErrInvalidFile  = errors.New("invalid image upload")

	// ErrInvalidID indicates the path identifier is not a valid integer.
	ErrInvalidID = errors.New("invalid album id")

	// ErrMalformedBody indicates the request body could not be decoded.
	ErrMalformedBody = errors.New("malformed request body")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDocumentMissing) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidFile) || errors.Is(err, ErrInvalidID) || errors.Is(err, ErrMalformedBody) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
