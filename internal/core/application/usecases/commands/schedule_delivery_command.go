package commands

import (
	"errors"
	"time"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/guard"
)

var (
	ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
		"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
	)
	ErrTruckingMethodIsRequired = errors.New("trucking method is required")
	ErrCarrierNameIsRequired    = errors.New("carrier name is required")
	ErrScheduledForIsRequired   = errors.New("scheduled time is required")
)

// ScheduleDeliveryCommand represents a request to book an inbound load:
// a truck bringing pipe into the yard on a scheduled dock window.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	requestID       kernel.UUID
	truckingMethod  string
	carrierName     string
	truckNumber     string
	scheduledFor    time.Time
	afterHours      bool
	plannedQuantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to book an inbound load.
// Validates the request ID, trucking method, carrier name, and that a
// scheduled time is set.
func NewScheduleDeliveryCommand(
	requestID kernel.UUID,
	truckingMethod string,
	carrierName string,
	truckNumber string,
	scheduledFor time.Time,
	afterHours bool,
	plannedQuantity kernel.Quantity,
) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		afterHours: afterHours,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setTruckingMethod(truckingMethod),
		cmd.setCarrierName(carrierName),
		cmd.setScheduledFor(scheduledFor),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	cmd.truckNumber = truckNumber
	cmd.plannedQuantity = plannedQuantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being delivered against.
func (c ScheduleDeliveryCommand) RequestID() kernel.UUID {
	return c.requestID
}

// TruckingMethod returns how the pipe moves (flatbed, pole truck, float).
func (c ScheduleDeliveryCommand) TruckingMethod() string {
	return c.truckingMethod
}

// CarrierName returns the hauling company's name.
func (c ScheduleDeliveryCommand) CarrierName() string {
	return c.carrierName
}

// TruckNumber returns the carrier's unit number, when known.
func (c ScheduleDeliveryCommand) TruckNumber() string {
	return c.truckNumber
}

// ScheduledFor returns the dock window start time.
func (c ScheduleDeliveryCommand) ScheduledFor() time.Time {
	return c.scheduledFor
}

// AfterHours reports whether the window falls outside gate hours.
func (c ScheduleDeliveryCommand) AfterHours() bool {
	return c.afterHours
}

// PlannedQuantity returns the pipe quantity expected on the truck.
func (c ScheduleDeliveryCommand) PlannedQuantity() kernel.Quantity {
	return c.plannedQuantity
}

func (c *ScheduleDeliveryCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ScheduleDeliveryCommand) setTruckingMethod(truckingMethod string) error {
	if truckingMethod == "" {
		return ErrTruckingMethodIsRequired
	}

	c.truckingMethod = truckingMethod
	return nil
}

func (c *ScheduleDeliveryCommand) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return ErrCarrierNameIsRequired
	}

	c.carrierName = carrierName
	return nil
}

func (c *ScheduleDeliveryCommand) setScheduledFor(scheduledFor time.Time) error {
	if scheduledFor.IsZero() {
		return ErrScheduledForIsRequired
	}

	c.scheduledFor = scheduledFor
	return nil
}
