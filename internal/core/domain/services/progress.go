package services

import (
	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
)

// ProgressSummary reports planned, completed and remaining joint counts
// for one direction of a request's loads.
type ProgressSummary struct {
	PlannedJoints   int
	CompletedJoints int
	RemainingJoints int
}

// ProgressSummarizer computes quantity progress from load records. It is
// a pure function object: missing or zero quantity fields count as zero,
// never as errors, and rejected loads move no pipe so they are excluded.
type ProgressSummarizer struct{}

// NewProgressSummarizer creates a new ProgressSummarizer instance.
func NewProgressSummarizer() ProgressSummarizer {
	return ProgressSummarizer{}
}

// Summarize sums planned and completed joints across the given loads.
// When no load carries a planned figure, the request-level estimate is
// used as the planned total. Remaining never goes below zero; completing
// more than planned is real-world normal (extra joints on a truck).
func (p ProgressSummarizer) Summarize(
	loads []*load.TruckingLoad,
	requestEstimate kernel.Quantity,
) ProgressSummary {
	var planned, completed int
	for _, ld := range loads {
		if ld == nil || ld.Status() == load.Rejected {
			continue
		}
		planned += ld.PlannedQuantity().Joints()
		completed += ld.CompletedQuantity().Joints()
	}

	if planned == 0 {
		planned = requestEstimate.Joints()
	}

	remaining := planned - completed
	if remaining < 0 {
		remaining = 0
	}

	return ProgressSummary{
		PlannedJoints:   planned,
		CompletedJoints: completed,
		RemainingJoints: remaining,
	}
}
