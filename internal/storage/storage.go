package storage

import (
	"context"

	"albumvault/internal/lifecycle"
)

// Asset directory names. They double as the public URL prefixes under which
// the directories are served as static content.
const (
	// ImagePrefix is the key prefix and directory for uploaded cover images.
	ImagePrefix = "archivos"

	// PDFPrefix is the key prefix and directory for generated PDF documents.
	PDFPrefix = "archivosgen"
)

// ImageKey returns the storage key for a cover image filename.
func ImageKey(filename string) string {
	return ImagePrefix + "/" + filename
}

// PDFKey returns the storage key for a generated PDF filename.
func PDFKey(filename string) string {
	return PDFPrefix + "/" + filename
}

// System defines the binary asset store operations.
// Keys are relative paths of the form "<prefix>/<filename>".
type System interface {
	// Store saves data at the specified key. If the key already exists,
	// its contents are overwritten.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete deletes the data at the specified key.
	// Returns nil if the key does not exist (idempotent).
	Delete(ctx context.Context, key string) error

	// Validate checks if a key exists and is accessible.
	// Returns (true, nil) if the key exists and is readable.
	// Returns (false, nil) if the key does not exist.
	Validate(ctx context.Context, key string) (bool, error)

	// Path resolves a key to its absolute on-disk path without checking existence.
	Path(ctx context.Context, key string) (string, error)

	// List returns all keys under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Start registers lifecycle hooks that create the asset directories.
	Start(lc *lifecycle.Coordinator) error
}
