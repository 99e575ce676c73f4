package ports

import (
	"context"

	"pipeyard/internal/core/domain/model/kernel"
)

// ManifestExtractor parses a stored manifest document and returns the
// pipe quantity it lists.
type ManifestExtractor interface {
	Extract(ctx context.Context, path string) (kernel.Quantity, error)
}
