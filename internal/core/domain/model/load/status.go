package load

import (
	"errors"
	"fmt"

	"pipeyard/internal/pkg/errs"
)

// Status represents the lifecycle state of a trucking load.
// It implements a state machine with defined transitions to ensure
// loads follow the correct operational workflow.
//
// State transitions:
//
//	New ──┬──> Approved ──> InTransit ──> Completed
//	      └──> Rejected
//
// Completed and Rejected are terminal. Identity transitions are legal
// no-ops everywhere, including on terminal states; callers re-applying
// the current status must not fail.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// New is the initial status assigned when a load is booked.
	// Loads are never auto-approved; approval is an explicit action.
	New

	// Approved means operations cleared the load for dispatch.
	Approved

	// InTransit means the truck is on the road.
	InTransit

	// Completed means the load arrived and was checked in or out. Terminal.
	Completed

	// Rejected means the load was cancelled before approval. Terminal.
	// Its sequence number is never reused.
	Rejected
)

// Transition illegality kinds. ValidateTransition wraps one of these so
// callers can classify rejections with errors.Is.
var (
	// ErrTerminalStatus is returned for any non-identity transition out of
	// Completed or Rejected.
	ErrTerminalStatus = errors.New("load status is terminal and cannot change")

	// ErrStatusReversion is returned when a transition would move the load
	// backwards in its lifecycle.
	ErrStatusReversion = errors.New("load status cannot revert to an earlier stage")

	// ErrStatusSkipped is returned when a transition would jump over an
	// intermediate stage.
	ErrStatusSkipped = errors.New("load status cannot skip a stage")

	// ErrRejectionTooLate is returned when rejecting a load that is no
	// longer New.
	ErrRejectionTooLate = errors.New("load can only be rejected before approval")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		New:           "New",
		Approved:      "Approved",
		InTransit:     "InTransit",
		Completed:     "Completed",
		Rejected:      "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Approved:  "Approved",
		InTransit: "InTransit",
		Completed: "Completed",
		Rejected:  "Rejected",
	}
}

// stageRank orders the forward path New -> Approved -> InTransit ->
// Completed. Rejected sits outside the ranking; transitions into it are
// classified separately.
func stageRank(s Status) int {
	switch s {
	case New:
		return 1
	case Approved:
		return 2
	case InTransit:
		return 3
	case Completed:
		return 4
	default:
		return 0
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further status change is allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// HasArrived reports whether the load reached its destination.
func (s Status) HasArrived() bool {
	return s == Completed
}

// ValidateTransition checks whether moving a load from one status to
// another is legal. It accepts the identity transition on every valid
// status plus the four forward transitions New->Approved,
// Approved->InTransit, InTransit->Completed and New->Rejected.
//
// Every other pair is rejected with an error naming the kind of
// illegality: ErrTerminalStatus, ErrStatusReversion, ErrStatusSkipped or
// ErrRejectionTooLate. Callers must run this check before persisting any
// status change; it has no side effects.
func ValidateTransition(from, to Status) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	if from == to {
		return nil
	}

	if from.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrTerminalStatus, from, to)
	}

	if to == Rejected {
		if from == New {
			return nil
		}
		return fmt.Errorf("%w: %s -> %s", ErrRejectionTooLate, from, to)
	}

	if stageRank(to) < stageRank(from) {
		return fmt.Errorf("%w: %s -> %s", ErrStatusReversion, from, to)
	}

	if stageRank(to) > stageRank(from)+1 {
		return fmt.Errorf("%w: %s -> %s", ErrStatusSkipped, from, to)
	}

	return nil
}
