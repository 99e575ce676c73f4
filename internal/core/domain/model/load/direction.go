package load

import (
	"fmt"

	"pipeyard/internal/pkg/errs"
)

// Direction indicates whether a load moves pipe into the yard or back out.
type Direction int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown Direction = iota

	// Inbound is a delivery of pipe into storage.
	Inbound

	// Outbound is a pickup of pipe out of storage.
	Outbound
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		DirectionUnknown: "Unknown",
		Inbound:          "Inbound",
		Outbound:         "Outbound",
	}
}

// Validate checks if the Direction value is valid.
func (d Direction) Validate() error {
	if d != Inbound && d != Outbound {
		return errs.NewValueIsInvalidErrorWithCause("direction is invalid", fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// String returns the human-readable name of the direction.
func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}
