package commands

import (
	"context"

	"pipeyard/internal/core/domain/model/request"
)

// CreateRequestCommandHandler handles the business logic for storage
// request intake. New requests always land in the Pending status and
// wait for a facility review.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for request intake.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request creation command.
// Uses a transaction to ensure the request is persisted or rolled back.
func (h *CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	req, err := request.NewStorageRequest(
		cmd.RequestID(),
		cmd.CompanyName(),
		cmd.ContactName(),
		cmd.ContactPhone(),
		cmd.EstimatedQuantity(),
	)
	if err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
