package ports

import (
	"context"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for trucking load
// aggregates and their documents.
//
// Sequence numbers are allocated by the database: NextSequence reads the
// current maximum, and the unique index on (request, direction, sequence)
// rejects the insert when a concurrent booking took the slot first.
type LoadRepository interface {
	// Add persists a new trucking load aggregate.
	// Fails when the sequence slot is already taken.
	Add(ctx context.Context, aggregate *load.TruckingLoad) error

	// Update persists changes to an existing trucking load aggregate.
	Update(ctx context.Context, aggregate *load.TruckingLoad) error

	// Get retrieves a trucking load by its unique identifier, including
	// its attached documents.
	Get(ctx context.Context, id kernel.UUID) (*load.TruckingLoad, error)

	// GetByRequest retrieves all loads for a storage request, both
	// directions, ordered by direction then sequence number.
	GetByRequest(ctx context.Context, requestID kernel.UUID) ([]*load.TruckingLoad, error)

	// NextSequence returns max(sequence)+1 for the request and direction,
	// starting at 1. Rejected loads still count: their numbers are never
	// reused.
	NextSequence(ctx context.Context, requestID kernel.UUID, direction load.Direction) (int, error)

	// ExistsAtSequence reports whether a load already occupies the
	// sequence slot for the request and direction.
	ExistsAtSequence(ctx context.Context, requestID kernel.UUID, direction load.Direction, sequence int) (bool, error)

	// AddDocument persists a new document record.
	AddDocument(ctx context.Context, doc *load.Document) error

	// UpdateDocument persists changes to an existing document record.
	UpdateDocument(ctx context.Context, doc *load.Document) error

	// GetUnparsedDocuments retrieves manifests that have no parsed
	// quantity yet, across all requests.
	GetUnparsedDocuments(ctx context.Context) ([]*load.Document, error)

	// AttachPendingDocuments links the request's unattached documents to
	// the load and returns how many were linked.
	AttachPendingDocuments(ctx context.Context, requestID kernel.UUID, loadID kernel.UUID) (int, error)
}
