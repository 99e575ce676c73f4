package commands

import (
	"context"
)

// ReviewRequestCommandHandler applies the facility's review decision to
// a pending storage request.
type ReviewRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewReviewRequestCommandHandler creates a handler for request reviews.
func NewReviewRequestCommandHandler(uowFactory RequestUoWFactory) ReviewRequestCommandHandler {
	return ReviewRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the request, applies the decision through the status
// state machine, and persists the result. Reviewing a request that is
// not pending fails with the state machine's transition error.
func (h *ReviewRequestCommandHandler) Handle(ctx context.Context, cmd ReviewRequestCommand) error {
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
	req, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if cmd.Approve() {
		err = req.Approve()
	} else {
		err = req.Reject()
	}
	if err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
