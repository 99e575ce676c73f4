package ports

import (
	"context"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for storage request
// aggregates.
type RequestRepository interface {
	// Add persists a new storage request aggregate.
	Add(ctx context.Context, aggregate *request.StorageRequest) error

	// Update persists changes to an existing storage request aggregate.
	Update(ctx context.Context, aggregate *request.StorageRequest) error

	// Get retrieves a storage request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.StorageRequest, error)
}
