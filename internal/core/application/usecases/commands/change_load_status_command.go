package commands

import (
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/pkg/guard"
)

var ErrChangeLoadStatusCommandIsNotConstructed = errors.New(
	"ChangeLoadStatusCommand must be created via NewChangeLoadStatusCommand constructor",
)

// ChangeLoadStatusCommand represents a request to move a trucking load
// through its lifecycle. When the target status is Completed, the
// actual quantity moved can be recorded alongside.
type ChangeLoadStatusCommand struct { //nolint:recvcheck //using for validation
	loadID            kernel.UUID
	targetStatus      load.Status
	completedQuantity *kernel.Quantity

	guard guard.ConstructorGuard
}

// NewChangeLoadStatusCommand creates a command to change a load's
// status. The completed quantity is optional and only meaningful when
// the target status is Completed.
func NewChangeLoadStatusCommand(
	loadID kernel.UUID,
	targetStatus load.Status,
	completedQuantity *kernel.Quantity,
) (ChangeLoadStatusCommand, error) {
	cmd := ChangeLoadStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return ChangeLoadStatusCommand{}, err
	}

	cmd.completedQuantity = completedQuantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLoadStatusCommandIsNotConstructed)
}

// LoadID returns the identifier of the load being moved.
func (c ChangeLoadStatusCommand) LoadID() kernel.UUID {
	return c.loadID
}

// TargetStatus returns the status the load should transition to.
func (c ChangeLoadStatusCommand) TargetStatus() load.Status {
	return c.targetStatus
}

// CompletedQuantity returns the recorded actual quantity, if any.
func (c ChangeLoadStatusCommand) CompletedQuantity() *kernel.Quantity {
	return c.completedQuantity
}

func (c *ChangeLoadStatusCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *ChangeLoadStatusCommand) setTargetStatus(targetStatus load.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
