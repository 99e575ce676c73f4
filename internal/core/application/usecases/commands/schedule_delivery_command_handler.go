package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
	"pipeyard/internal/core/domain/model/shipment"
	"pipeyard/internal/core/ports"
	"pipeyard/internal/pkg/errs"
)

// ScheduleDeliveryCommandHandler runs the inbound booking saga. Each
// step commits on its own connection; when a later step fails, the
// committed steps are compensated in reverse order instead of rolled
// back. The trucking load insert is the point of no return: once the
// load exists, remaining steps are best-effort and only logged.
//
// When the scheduling schema is absent the saga degrades gracefully:
// the booking is announced through the fallback notification channel so
// the yard can schedule it by hand.
type ScheduleDeliveryCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewScheduleDeliveryCommandHandler creates a handler for inbound
// booking operations.
func NewScheduleDeliveryCommandHandler(
	uowFactory BookingUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the delivery booking command and returns the saga
// outcome.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) (ScheduleResult, error) {
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
			return h.fallback(ctx, req, load.Inbound, cmd.ScheduledFor(), cmd.AfterHours(), ship.SurchargeAmount())
		}
		return ScheduleResult{}, err
	}
	comp.push("shipment", func(ctx context.Context) error {
		return shipmentRepo.DeleteShipment(ctx, ship.ID())
	})

	truck, err := shipment.NewShipmentTruck(kernel.NewUUID(), ship.ID(), cmd.CarrierName(), cmd.TruckNumber())
	if err != nil {
		comp.run(ctx)
		return ScheduleResult{}, err
	}

	switch err = shipmentRepo.AddTruck(ctx, truck); {
	case errors.Is(err, errs.ErrSchemaMissing):
		comp.run(ctx)
		return h.fallback(ctx, req, load.Inbound, cmd.ScheduledFor(), cmd.AfterHours(), ship.SurchargeAmount())
	case err != nil:
		// Truck details are recoverable from the carrier later.
		h.logger.Warn("shipment truck insert failed", "shipmentId", ship.ID().String(), "error", err)
		truck = nil
	default:
		comp.push("shipment truck", func(ctx context.Context) error {
			return shipmentRepo.DeleteTruck(ctx, truck.ID())
		})
	}

	appointment := h.ensureAppointment(ctx, shipmentRepo, comp, ship.ID(), cmd.ScheduledFor(), cmd.AfterHours())

	loadRepo := uow.LoadRepository()
	seq, err := loadRepo.NextSequence(ctx, req.ID(), load.Inbound)
	if err != nil {
		comp.run(ctx)
		return ScheduleResult{}, err
	}

	taken, err := loadRepo.ExistsAtSequence(ctx, req.ID(), load.Inbound, seq)
	if err != nil {
		comp.run(ctx)
		return ScheduleResult{}, err
	}
	if taken {
		comp.run(ctx)
		return ScheduleResult{}, ErrDuplicateBooking
	}

	ld, err := load.NewTruckingLoad(kernel.NewUUID(), req.ID(), load.Inbound, seq, cmd.PlannedQuantity())
	if err != nil {
		comp.run(ctx)
		return ScheduleResult{}, err
	}

	if err = loadRepo.Add(ctx, ld); err != nil {
		comp.run(ctx)
		return ScheduleResult{}, fmt.Errorf("booking failed and was undone: %w", err)
	}

	h.linkRecords(ctx, uow, ship, truck, appointment, ld)

	notification := buildNotification(req, load.Inbound, seq, cmd.ScheduledFor(), cmd.AfterHours(), ship.SurchargeAmount())
	if err = h.notifier.NotifyLoadScheduled(ctx, notification); err != nil {
		h.logger.Warn("booking notification failed", "loadId", ld.ID().String(), "error", err)
	}

	return ScheduleResult{
		LoadID:         ld.ID().String(),
		SequenceNumber: seq,
	}, nil
}

// ensureAppointment books the dock window unless the shipment already
// has one. Failures here never stop the saga.
func (h *ScheduleDeliveryCommandHandler) ensureAppointment(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	comp *compensationStack,
	shipmentID kernel.UUID,
	scheduledFor time.Time,
	afterHours bool,
) *shipment.DockAppointment {
	existing, err := shipmentRepo.GetAppointmentByShipment(ctx, shipmentID)
	if err == nil {
		return existing
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Warn("dock appointment lookup failed", "shipmentId", shipmentID.String(), "error", err)
		return nil
	}

	appointment, err := shipment.NewDockAppointment(kernel.NewUUID(), shipmentID, scheduledFor, afterHours)
	if err != nil {
		h.logger.Warn("dock appointment construction failed", "shipmentId", shipmentID.String(), "error", err)
		return nil
	}

	if err = shipmentRepo.AddAppointment(ctx, appointment); err != nil {
		h.logger.Warn("dock appointment insert failed", "shipmentId", shipmentID.String(), "error", err)
		return nil
	}

	comp.push("dock appointment", func(ctx context.Context) error {
		return shipmentRepo.DeleteAppointment(ctx, appointment.ID())
	})
	return appointment
}

// linkRecords stamps the load identifier onto the provisioning records
// and claims any documents uploaded before the load existed. All of it
// is best-effort.
func (h *ScheduleDeliveryCommandHandler) linkRecords(
	ctx context.Context,
	uow BookingUoW,
	ship *shipment.Shipment,
	truck *shipment.ShipmentTruck,
	appointment *shipment.DockAppointment,
	ld *load.TruckingLoad,
) {
	shipmentRepo := uow.ShipmentRepository()

	if err := shipmentRepo.LinkShipmentToLoad(ctx, ship.ID(), ld.ID()); err != nil {
		h.logger.Warn("shipment link failed", "loadId", ld.ID().String(), "error", err)
	}
	if truck != nil {
		if err := shipmentRepo.LinkTruckToLoad(ctx, truck.ID(), ld.ID()); err != nil {
			h.logger.Warn("truck link failed", "loadId", ld.ID().String(), "error", err)
		}
	}
	if appointment != nil {
		if err := shipmentRepo.LinkAppointmentToLoad(ctx, appointment.ID(), ld.ID()); err != nil {
			h.logger.Warn("appointment link failed", "loadId", ld.ID().String(), "error", err)
		}
	}

	attached, err := uow.LoadRepository().AttachPendingDocuments(ctx, ld.RequestID(), ld.ID())
	if err != nil {
		h.logger.Warn("pending document attach failed", "loadId", ld.ID().String(), "error", err)
	} else if attached > 0 {
		h.logger.Info("attached pending documents", "loadId", ld.ID().String(), "count", attached)
	}
}

// fallback captures the booking without shipment records and announces
// it on the fallback channel.
func (h *ScheduleDeliveryCommandHandler) fallback(
	ctx context.Context,
	req *request.StorageRequest,
	direction load.Direction,
	scheduledFor time.Time,
	afterHours bool,
	surchargeAmount int,
) (ScheduleResult, error) {
	notification := buildNotification(req, direction, 0, scheduledFor, afterHours, surchargeAmount)
	if err := h.notifier.NotifyScheduleFallback(ctx, notification); err != nil {
		h.logger.Error("fallback notification failed", "requestId", req.ID().String(), "error", err)
	}

	return ScheduleResult{
		Degraded: true,
		Message:  "scheduling records unavailable, booking sent to the yard for manual scheduling",
	}, nil
}
