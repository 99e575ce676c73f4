package commands

import (
	"context"
	"log/slog"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/ports"
)

// AttachDocumentCommandHandler stores uploaded paperwork in the object
// store and records it against the request. When the database insert
// fails after a successful upload, the stored object is removed so the
// bucket does not accumulate orphans.
type AttachDocumentCommandHandler struct {
	uowFactory LoadUoWFactory
	store      ports.DocumentStore
	logger     *slog.Logger
}

// NewAttachDocumentCommandHandler creates a handler for document
// uploads.
func NewAttachDocumentCommandHandler(
	uowFactory LoadUoWFactory,
	store ports.DocumentStore,
	logger *slog.Logger,
) AttachDocumentCommandHandler {
	return AttachDocumentCommandHandler{
		uowFactory: uowFactory,
		store:      store,
		logger:     logger,
	}
}

// Handle uploads the file, then persists the document record.
func (h *AttachDocumentCommandHandler) Handle(ctx context.Context, cmd AttachDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	path, err := h.store.Put(ctx, cmd.FileName(), cmd.Content(), cmd.Size(), cmd.ContentType())
	if err != nil {
		return err
	}

	doc, err := load.NewDocument(kernel.NewUUID(), cmd.RequestID(), cmd.LoadID(), path, cmd.Kind())
	if err != nil {
		h.removeStored(ctx, path)
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		h.removeStored(ctx, path)
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()

	if cmd.LoadID() != nil {
		ld, getErr := loadRepo.Get(ctx, *cmd.LoadID())
		if getErr != nil {
			h.removeStored(ctx, path)
			return getErr
		}
		if attachErr := ld.AttachDocument(doc); attachErr != nil {
			h.removeStored(ctx, path)
			return attachErr
		}
	}

	if err = loadRepo.AddDocument(ctx, doc); err != nil {
		h.removeStored(ctx, path)
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		h.removeStored(ctx, path)
		return err
	}

	return nil
}

func (h *AttachDocumentCommandHandler) removeStored(ctx context.Context, path string) {
	if err := h.store.Remove(ctx, path); err != nil {
		h.logger.Warn("stored document cleanup failed", "path", path, "error", err)
	}
}
