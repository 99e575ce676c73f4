package ports

import (
	"context"
	"io"
)

// DocumentStore persists uploaded paperwork (manifests, proofs of
// delivery) in object storage and returns a stable path for the record.
type DocumentStore interface {
	// Put stores the object and returns the path to persist alongside
	// the document record.
	Put(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error)

	// Remove deletes a stored object. Used to undo an upload whose
	// database record could not be written.
	Remove(ctx context.Context, path string) error
}
