package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
	"pipeyard/internal/core/domain/model/shipment"
	"pipeyard/internal/core/ports"
	"pipeyard/internal/pkg/errs"
)

// SchedulePickupCommandHandler runs the outbound booking saga: a
// shipment record plus the trucking load, with the same compensation
// and schema fallback behavior as the delivery saga.
type SchedulePickupCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewSchedulePickupCommandHandler creates a handler for outbound
// booking operations.
func NewSchedulePickupCommandHandler(
	uowFactory BookingUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the pickup booking command and returns the saga
// outcome.
func (h *SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) (ScheduleResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScheduleResult{}, err
	}

	uow := h.uowFactory.Create()

	req, err := uow.RequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return ScheduleResult{}, err
	}
	if req.Status() != request.Approved {
		return ScheduleResult{}, ErrRequestNotApproved
	}

	comp := newCompensationStack(h.logger)
	shipmentRepo := uow.ShipmentRepository()

	ship, err := shipment.NewShipment(
		kernel.NewUUID(),
		req.ID(),
		cmd.TruckingMethod(),
		req.ContactName(),
		req.ContactPhone(),
		cmd.PlannedQuantity(),
		cmd.ScheduledFor(),
		cmd.AfterHours(),
	)
	if err != nil {
		return ScheduleResult{}, err
	}

	if err = shipmentRepo.AddShipment(ctx, ship); err != nil {
		if errors.Is(err, errs.ErrSchemaMissing) {
			return h.fallback(ctx, req, cmd, ship.SurchargeAmount())
		}
		return ScheduleResult{}, err
	}
	comp.push("shipment", func(ctx context.Context) error {
		return shipmentRepo.DeleteShipment(ctx, ship.ID())
	})

	loadRepo := uow.LoadRepository()
	seq, err := loadRepo.NextSequence(ctx, req.ID(), load.Outbound)
	if err != nil {
		comp.run(ctx)
		return ScheduleResult{}, err
	}

	taken, err := loadRepo.ExistsAtSequence(ctx, req.ID(), load.Outbound, seq)
	if err != nil {
		comp.run(ctx)
		return ScheduleResult{}, err
	}
	if taken {
		comp.run(ctx)
		return ScheduleResult{}, ErrDuplicateBooking
	}

	ld, err := load.NewTruckingLoad(kernel.NewUUID(), req.ID(), load.Outbound, seq, cmd.PlannedQuantity())
	if err != nil {
		comp.run(ctx)
		return ScheduleResult{}, err
	}

	if err = loadRepo.Add(ctx, ld); err != nil {
		comp.run(ctx)
		return ScheduleResult{}, fmt.Errorf("booking failed and was undone: %w", err)
	}

	if err = shipmentRepo.LinkShipmentToLoad(ctx, ship.ID(), ld.ID()); err != nil {
		h.logger.Warn("shipment link failed", "loadId", ld.ID().String(), "error", err)
	}

	notification := buildNotification(req, load.Outbound, seq, cmd.ScheduledFor(), cmd.AfterHours(), ship.SurchargeAmount())
	if err = h.notifier.NotifyLoadScheduled(ctx, notification); err != nil {
		h.logger.Warn("booking notification failed", "loadId", ld.ID().String(), "error", err)
	}

	return ScheduleResult{
		LoadID:         ld.ID().String(),
		SequenceNumber: seq,
	}, nil
}

func (h *SchedulePickupCommandHandler) fallback(
	ctx context.Context,
	req *request.StorageRequest,
	cmd SchedulePickupCommand,
	surchargeAmount int,
) (ScheduleResult, error) {
	notification := buildNotification(req, load.Outbound, 0, cmd.ScheduledFor(), cmd.AfterHours(), surchargeAmount)
	if err := h.notifier.NotifyScheduleFallback(ctx, notification); err != nil {
		h.logger.Error("fallback notification failed", "requestId", req.ID().String(), "error", err)
	}

	return ScheduleResult{
		Degraded: true,
		Message:  "scheduling records unavailable, booking sent to the yard for manual scheduling",
	}, nil
}
