package services

import (
	"fmt"
	"log/slog"

	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
)

// BadgeTone is the visual accent a workflow state carries in the UI.
type BadgeTone string

const (
	ToneInfo    BadgeTone = "info"
	ToneWarning BadgeTone = "warning"
	ToneSuccess BadgeTone = "success"
	ToneDanger  BadgeTone = "danger"
	ToneNeutral BadgeTone = "neutral"
)

// WorkflowStage identifies where a request sits in the facility workflow.
type WorkflowStage int

const (
	// StagePendingApproval means the request has not been reviewed yet.
	StagePendingApproval WorkflowStage = iota

	// StageAwaitingInbound means approved pipe has not fully arrived.
	StageAwaitingInbound

	// StageProcessingManifests means pipe arrived but manifests still
	// need parsing before inventory is trustworthy.
	StageProcessingManifests

	// StageInStorage means pipe is on the ground with no active pickups.
	StageInStorage

	// StageOutboundInProgress means at least one pickup load is underway.
	StageOutboundInProgress

	// StageComplete means the request reached a terminal outcome.
	StageComplete
)

// WorkflowState is the derived workflow snapshot for one request.
type WorkflowState struct {
	Stage WorkflowStage

	// Label is the customer-facing description of the stage.
	Label string

	// Tone hints at how the label should be rendered.
	Tone BadgeTone

	// ActionRequired is set when the facility must act before the
	// request can move forward.
	ActionRequired bool
}

// InventoryTotals carries the joint counts the calculator needs but does
// not compute itself. Callers derive them from completed load quantities.
type InventoryTotals struct {
	// JointsInStorage is completed inbound minus completed outbound.
	JointsInStorage int

	// JointsRemaining is how many joints still need to ship out.
	JointsRemaining int
}

// WorkflowInput bundles everything the calculator reads. Loads may
// contain both directions in any order.
type WorkflowInput struct {
	Request   *request.StorageRequest
	Loads     []*load.TruckingLoad
	Inventory InventoryTotals
}

type workflowRule func(WorkflowInput) (WorkflowState, bool)

// WorkflowCalculator derives a request's workflow state from its loads
// and inventory. Rules are evaluated in a fixed order and the first
// matching rule wins, so re-ordering the slice changes semantics.
type WorkflowCalculator struct {
	logger *slog.Logger
	rules  []workflowRule
}

// NewWorkflowCalculator creates a WorkflowCalculator with the standard
// rule ordering.
func NewWorkflowCalculator(logger *slog.Logger) *WorkflowCalculator {
	c := &WorkflowCalculator{logger: logger}
	c.rules = []workflowRule{
		c.awaitingApproval,
		c.rejected,
		c.noInboundScheduled,
		c.awaitingInbound,
		c.processingManifests,
		c.inStorageNoOutbound,
		c.outboundCascade,
	}
	return c
}

// Calculate evaluates the rules in order and returns the first match.
// When no rule matches the input describes a combination the rules were
// not written for, so the fallback logs it and reports storage.
func (c *WorkflowCalculator) Calculate(input WorkflowInput) WorkflowState {
	for _, rule := range c.rules {
		if state, ok := rule(input); ok {
			return state
		}
	}

	c.logger.Warn("workflow state fell through to default",
		"requestId", requestID(input.Request),
		"loads", len(input.Loads),
		"jointsInStorage", input.Inventory.JointsInStorage,
	)

	return WorkflowState{
		Stage: StageInStorage,
		Label: "In Storage",
		Tone:  ToneNeutral,
	}
}

func (c *WorkflowCalculator) awaitingApproval(input WorkflowInput) (WorkflowState, bool) {
	if input.Request == nil {
		return WorkflowState{}, false
	}
	switch input.Request.Status() {
	case request.Draft, request.Pending:
		return WorkflowState{
			Stage:          StagePendingApproval,
			Label:          "Pending Approval",
			Tone:           ToneInfo,
			ActionRequired: true,
		}, true
	default:
		return WorkflowState{}, false
	}
}

func (c *WorkflowCalculator) rejected(input WorkflowInput) (WorkflowState, bool) {
	if input.Request == nil || input.Request.Status() != request.Rejected {
		return WorkflowState{}, false
	}
	return WorkflowState{
		Stage: StageComplete,
		Label: "Rejected",
		Tone:  ToneDanger,
	}, true
}

func (c *WorkflowCalculator) noInboundScheduled(input WorkflowInput) (WorkflowState, bool) {
	for _, ld := range input.Loads {
		if ld != nil && ld.Direction() == load.Inbound {
			return WorkflowState{}, false
		}
	}
	return WorkflowState{
		Stage: StageAwaitingInbound,
		Label: "Waiting on Load #1",
		Tone:  ToneInfo,
	}, true
}

func (c *WorkflowCalculator) awaitingInbound(input WorkflowInput) (WorkflowState, bool) {
	for _, ld := range sortedBySequence(input.Loads, load.Inbound) {
		if ld.Status() == load.Rejected || ld.Status().HasArrived() {
			continue
		}
		return WorkflowState{
			Stage: StageAwaitingInbound,
			Label: fmt.Sprintf("Waiting on Load #%d", ld.SequenceNumber()),
			Tone:  ToneInfo,
		}, true
	}
	return WorkflowState{}, false
}

func (c *WorkflowCalculator) processingManifests(input WorkflowInput) (WorkflowState, bool) {
	for _, ld := range input.Loads {
		if ld == nil || ld.Direction() != load.Inbound || ld.Status() == load.Rejected {
			continue
		}
		if !ld.ManifestsParsed() {
			return WorkflowState{
				Stage:          StageProcessingManifests,
				Label:          "All Loads Received / Processing Manifests",
				Tone:           ToneWarning,
				ActionRequired: true,
			}, true
		}
	}
	return WorkflowState{}, false
}

func (c *WorkflowCalculator) inStorageNoOutbound(input WorkflowInput) (WorkflowState, bool) {
	for _, ld := range input.Loads {
		if ld != nil && ld.Direction() == load.Outbound {
			return WorkflowState{}, false
		}
	}
	if input.Inventory.JointsInStorage <= 0 {
		return WorkflowState{}, false
	}
	return WorkflowState{
		Stage: StageInStorage,
		Label: "In Storage",
		Tone:  ToneSuccess,
	}, true
}

func (c *WorkflowCalculator) outboundCascade(input WorkflowInput) (WorkflowState, bool) {
	outbound := sortedBySequence(input.Loads, load.Outbound)
	if len(outbound) == 0 {
		return WorkflowState{}, false
	}

	for _, ld := range outbound {
		if ld.Status() == load.Rejected || ld.Status().HasArrived() {
			continue
		}
		return WorkflowState{
			Stage: StageOutboundInProgress,
			Label: fmt.Sprintf("Waiting on Pickup Load #%d", ld.SequenceNumber()),
			Tone:  ToneInfo,
		}, true
	}

	if input.Inventory.JointsRemaining <= 0 {
		return WorkflowState{
			Stage: StageComplete,
			Label: "Complete",
			Tone:  ToneSuccess,
		}, true
	}

	return WorkflowState{
		Stage: StageInStorage,
		Label: "In Storage",
		Tone:  ToneSuccess,
	}, true
}

func requestID(req *request.StorageRequest) string {
	if req == nil {
		return ""
	}
	return req.ID().String()
}
