package commands

import (
	"errors"
	"time"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/guard"
)

var ErrSchedulePickupCommandIsNotConstructed = errors.New(
	"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
)

// SchedulePickupCommand represents a request to book an outbound load:
// a truck hauling stored pipe back out of the yard.
//
// Pickups provision less than deliveries. The customer's carrier shows
// up with its own truck, so no truck record or dock appointment is
// created here.
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	requestID       kernel.UUID
	truckingMethod  string
	scheduledFor    time.Time
	afterHours      bool
	plannedQuantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a command to book an outbound load.
func NewSchedulePickupCommand(
	requestID kernel.UUID,
	truckingMethod string,
	scheduledFor time.Time,
	afterHours bool,
	plannedQuantity kernel.Quantity,
) (SchedulePickupCommand, error) {
	cmd := SchedulePickupCommand{
		afterHours: afterHours,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setTruckingMethod(truckingMethod),
		cmd.setScheduledFor(scheduledFor),
	); err != nil {
		return SchedulePickupCommand{}, err
	}

	cmd.plannedQuantity = plannedQuantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// RequestID returns the identifier of the request being picked up from.
func (c SchedulePickupCommand) RequestID() kernel.UUID {
	return c.requestID
}

// TruckingMethod returns how the pipe moves out.
func (c SchedulePickupCommand) TruckingMethod() string {
	return c.truckingMethod
}

// ScheduledFor returns the pickup window start time.
func (c SchedulePickupCommand) ScheduledFor() time.Time {
	return c.scheduledFor
}

// AfterHours reports whether the window falls outside gate hours.
func (c SchedulePickupCommand) AfterHours() bool {
	return c.afterHours
}

// PlannedQuantity returns the pipe quantity leaving on the truck.
func (c SchedulePickupCommand) PlannedQuantity() kernel.Quantity {
	return c.plannedQuantity
}

func (c *SchedulePickupCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SchedulePickupCommand) setTruckingMethod(truckingMethod string) error {
	if truckingMethod == "" {
		return ErrTruckingMethodIsRequired
	}

	c.truckingMethod = truckingMethod
	return nil
}

func (c *SchedulePickupCommand) setScheduledFor(scheduledFor time.Time) error {
	if scheduledFor.IsZero() {
		return ErrScheduledForIsRequired
	}

	c.scheduledFor = scheduledFor
	return nil
}
