package commands

import (
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/guard"
)

var ErrReviewRequestCommandIsNotConstructed = errors.New(
	"ReviewRequestCommand must be created via NewReviewRequestCommand constructor",
)

// ReviewRequestCommand represents the facility's decision on a pending
// storage request: approve it for scheduling or reject it outright.
type ReviewRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	approve   bool

	guard guard.ConstructorGuard
}

// NewReviewRequestCommand creates a command to review a pending request.
func NewReviewRequestCommand(requestID kernel.UUID, approve bool) (ReviewRequestCommand, error) {
	cmd := ReviewRequestCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return ReviewRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRequestCommand) Validate() error {
	return c.guard.Validate(ErrReviewRequestCommandIsNotConstructed)
}

// RequestID returns the identifier of the request under review.
func (c ReviewRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Approve reports whether the request should be approved or rejected.
func (c ReviewRequestCommand) Approve() bool {
	return c.approve
}

func (c *ReviewRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
