package commands

import (
	"context"
)

// ChangeLoadStatusCommandHandler moves a trucking load through its
// lifecycle state machine. Illegal transitions are refused by the
// aggregate with a classified error before anything is persisted.
type ChangeLoadStatusCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewChangeLoadStatusCommandHandler creates a handler for load status
// changes.
func NewChangeLoadStatusCommandHandler(uowFactory LoadUoWFactory) ChangeLoadStatusCommandHandler {
	return ChangeLoadStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the aggregate, applies the transition and the optional
// completed quantity, and persists the result transactionally.
func (h *ChangeLoadStatusCommandHandler) Handle(ctx context.Context, cmd ChangeLoadStatusCommand) error {
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

	loadRepo := uow.LoadRepository()
	ld, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if err = ld.TransitionTo(cmd.TargetStatus()); err != nil {
		return err
	}

	if q := cmd.CompletedQuantity(); q != nil {
		if err = ld.RecordCompletedQuantity(*q); err != nil {
			return err
		}
	}

	if err = loadRepo.Update(ctx, ld); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
