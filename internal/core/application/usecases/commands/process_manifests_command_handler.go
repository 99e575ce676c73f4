package commands

import (
	"context"
	"log/slog"

	"pipeyard/internal/core/ports"
)

// ProcessManifestsCommandHandler sweeps unparsed manifests through the
// extractor and stores the quantities they list. Extraction failures
// are logged per document and never stop the sweep; the document stays
// unparsed and the next run retries it.
type ProcessManifestsCommandHandler struct {
	uowFactory LoadUoWFactory
	extractor  ports.ManifestExtractor
	logger     *slog.Logger
}

// NewProcessManifestsCommandHandler creates a handler for manifest
// sweeps.
func NewProcessManifestsCommandHandler(
	uowFactory LoadUoWFactory,
	extractor ports.ManifestExtractor,
	logger *slog.Logger,
) ProcessManifestsCommandHandler {
	return ProcessManifestsCommandHandler{
		uowFactory: uowFactory,
		extractor:  extractor,
		logger:     logger,
	}
}

// Handle runs one sweep and returns how many manifests were parsed.
func (h *ProcessManifestsCommandHandler) Handle(ctx context.Context, cmd ProcessManifestsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	loadRepo := uow.LoadRepository()

	docs, err := loadRepo.GetUnparsedDocuments(ctx)
	if err != nil {
		return 0, err
	}

	parsed := 0
	for _, doc := range docs {
		quantity, extractErr := h.extractor.Extract(ctx, doc.Path())
		if extractErr != nil {
			h.logger.Warn("manifest extraction failed",
				"documentId", doc.ID().String(),
				"path", doc.Path(),
				"error", extractErr,
			)
			continue
		}

		doc.SetParsedQuantity(quantity)

		if updateErr := loadRepo.UpdateDocument(ctx, doc); updateErr != nil {
			h.logger.Warn("manifest update failed",
				"documentId", doc.ID().String(),
				"error", updateErr,
			)
			continue
		}

		parsed++
	}

	if parsed > 0 {
		h.logger.Info("manifest sweep finished", "parsed", parsed, "pending", len(docs)-parsed)
	}

	return parsed, nil
}
