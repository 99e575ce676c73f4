package services

import (
	"fmt"
	"slices"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
)

// AggregateState is the single status representing a set of loads of one
// direction. It is derived on demand and never persisted, so it cannot
// drift from the loads it summarizes.
type AggregateState int

const (
	// AggregateNone means the direction has no loads that matter: either
	// no loads at all, or only rejected ones.
	AggregateNone AggregateState = iota

	// AggregatePending means at least one load is booked but not approved.
	AggregatePending

	// AggregateApproved means at least one load is cleared for dispatch.
	AggregateApproved

	// AggregateInProgress means at least one load is on the road.
	AggregateInProgress

	// AggregateCompleted means every non-rejected load has arrived.
	AggregateCompleted
)

// String returns the human-readable name of the aggregate state.
func (s AggregateState) String() string {
	switch s {
	case AggregatePending:
		return "Pending"
	case AggregateApproved:
		return "Approved"
	case AggregateInProgress:
		return "InProgress"
	case AggregateCompleted:
		return "Completed"
	default:
		return "None"
	}
}

// LogisticsAggregator reduces a request's loads into per-direction
// aggregate states and a single customer-facing status label.
//
// The aggregator is read-only: it treats input slices as immutable and
// reorders only defensive copies, because callers reuse the same
// in-memory load list for several derived views in one request cycle.
type LogisticsAggregator struct{}

// NewLogisticsAggregator creates a new LogisticsAggregator instance.
func NewLogisticsAggregator() LogisticsAggregator {
	return LogisticsAggregator{}
}

// Reduce computes the aggregate state for one direction using a fixed
// priority scan: any InTransit load wins, then any Approved, then any
// New. Only when nothing active remains does the completeness check run,
// and rejected loads are excluded from it — a direction whose every load
// was rejected aggregates to None.
func (a LogisticsAggregator) Reduce(loads []*load.TruckingLoad, direction load.Direction) AggregateState {
	var anyNew, anyApproved, anyInTransit bool
	var active int
	var allCompleted = true

	for _, ld := range loads {
		if ld == nil || ld.Direction() != direction {
			continue
		}
		switch ld.Status() {
		case load.InTransit:
			anyInTransit = true
		case load.Approved:
			anyApproved = true
		case load.New:
			anyNew = true
		}
		if ld.Status() != load.Rejected {
			active++
			if ld.Status() != load.Completed {
				allCompleted = false
			}
		}
	}

	switch {
	case anyInTransit:
		return AggregateInProgress
	case anyApproved:
		return AggregateApproved
	case anyNew:
		return AggregatePending
	case active > 0 && allCompleted:
		return AggregateCompleted
	default:
		return AggregateNone
	}
}

// CustomerStatus derives the one status label shown to the customer.
// Outbound always takes precedence over inbound: a pickup in progress is
// more actionable than a bygone delivery. When neither direction has
// loads the request's own status label is used.
func (a LogisticsAggregator) CustomerStatus(req *request.StorageRequest, loads []*load.TruckingLoad) string {
	if outState := a.Reduce(loads, load.Outbound); outState != AggregateNone {
		return directionLabel(load.Outbound, outState, a.LatestLoad(loads, load.Outbound))
	}

	if inState := a.Reduce(loads, load.Inbound); inState != AggregateNone {
		return directionLabel(load.Inbound, inState, a.LatestLoad(loads, load.Inbound))
	}

	return requestStatusLabel(req)
}

// LatestLoad returns the load with the highest sequence number for the
// direction, or nil if none exist. The input list is never reordered.
func (a LogisticsAggregator) LatestLoad(loads []*load.TruckingLoad, direction load.Direction) *load.TruckingLoad {
	sorted := sortedBySequence(loads, direction)
	if len(sorted) == 0 {
		return nil
	}
	return sorted[len(sorted)-1]
}

// Progress computes the quantity progress summary for one direction.
func (a LogisticsAggregator) Progress(
	loads []*load.TruckingLoad,
	direction load.Direction,
	requestEstimate kernel.Quantity,
) ProgressSummary {
	var directional []*load.TruckingLoad
	for _, ld := range loads {
		if ld != nil && ld.Direction() == direction {
			directional = append(directional, ld)
		}
	}
	return NewProgressSummarizer().Summarize(directional, requestEstimate)
}

// sortedBySequence filters one direction and sorts ascending by sequence
// number on a copy of the input.
func sortedBySequence(loads []*load.TruckingLoad, direction load.Direction) []*load.TruckingLoad {
	filtered := make([]*load.TruckingLoad, 0, len(loads))
	for _, ld := range loads {
		if ld != nil && ld.Direction() == direction {
			filtered = append(filtered, ld)
		}
	}

	slices.SortFunc(filtered, func(a, b *load.TruckingLoad) int {
		return a.SequenceNumber() - b.SequenceNumber()
	})
	return filtered
}

func directionLabel(direction load.Direction, state AggregateState, latest *load.TruckingLoad) string {
	noun := "Delivery"
	plural := "Deliveries"
	if direction == load.Outbound {
		noun = "Pickup"
		plural = "Pickups"
	}

	seq := 0
	if latest != nil {
		seq = latest.SequenceNumber()
	}

	switch state {
	case AggregatePending:
		return fmt.Sprintf("%s Load #%d Scheduled", noun, seq)
	case AggregateApproved:
		return fmt.Sprintf("%s Load #%d Approved", noun, seq)
	case AggregateInProgress:
		return fmt.Sprintf("%s Load #%d In Transit", noun, seq)
	case AggregateCompleted:
		return fmt.Sprintf("All %s Complete", plural)
	default:
		return requestStatusLabel(nil)
	}
}

func requestStatusLabel(req *request.StorageRequest) string {
	if req == nil {
		return "Unknown"
	}

	switch req.Status() {
	case request.Pending:
		return "Pending Approval"
	default:
		return req.Status().String()
	}
}
