package request

import (
	"fmt"

	"pipeyard/internal/pkg/errs"
)

// Status represents the lifecycle state of a storage request.
//
// State transitions:
//
//	Draft ──> Pending ──┬──> Approved ──> Completed
//	                    └──> Rejected
//
// Status is mutated only by an explicit review or completion action;
// the logistics engine itself treats it as read-only input.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is a request the customer is still composing.
	Draft

	// Pending is a submitted request awaiting facility review.
	Pending

	// Approved is a reviewed request cleared for scheduling loads.
	Approved

	// Rejected is a reviewed request the facility declined. Terminal.
	Rejected

	// Completed is a fulfilled request with all pipe shipped back out. Terminal.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Pending:   "Pending",
		Approved:  "Approved",
		Rejected:  "Rejected",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Pending:   "Pending",
		Approved:  "Approved",
		Rejected:  "Rejected",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
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
	return s == Rejected || s == Completed
}

// Approve transitions the status to Approved.
// Only Pending requests can be approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
// Only Pending requests can be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}

	return Rejected, nil
}

// Complete transitions the status to Completed.
// Only Approved requests can complete.
func (s Status) Complete() (Status, error) {
	if s != Approved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
