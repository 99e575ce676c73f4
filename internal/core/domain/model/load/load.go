package load

import (
	"errors"
	"fmt"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/errs"
)

var (
	// ErrTruckingLoadIsNotConstructed is returned when a TruckingLoad was not
	// created through NewTruckingLoad or RestoreTruckingLoad.
	ErrTruckingLoadIsNotConstructed = errors.New(
		"TruckingLoad must be created via NewTruckingLoad or RestoreTruckingLoad",
	)
)

// TruckingLoad is the aggregate root for one physical truck movement of
// pipe, inbound to the yard or outbound from it.
//
// TruckingLoad follows these invariants:
//   - Must reference a valid storage request
//   - Sequence numbers are strictly positive and unique per
//     (request, direction); they are allocated gapless ascending and are
//     never reused, even after a load is rejected
//   - Status transitions follow the load lifecycle state machine
//   - New loads always start in the New status; approval is an explicit
//     external action, never automatic
type TruckingLoad struct {
	id                kernel.UUID
	requestID         kernel.UUID
	direction         Direction
	sequenceNumber    int
	status            Status
	plannedQuantity   kernel.Quantity
	completedQuantity kernel.Quantity
	documents         []*Document

	isConstructed bool
}

// NewTruckingLoad creates a load in the New status. The sequence number
// must be the value freshly allocated by the load sequencer.
func NewTruckingLoad(
	id kernel.UUID,
	requestID kernel.UUID,
	direction Direction,
	sequenceNumber int,
	plannedQuantity kernel.Quantity,
) (*TruckingLoad, error) {
	ld := &TruckingLoad{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		ld.setID(id),
		ld.setRequestID(requestID),
		ld.setDirection(direction),
		ld.setSequenceNumber(sequenceNumber),
	); err != nil {
		return nil, err
	}

	ld.plannedQuantity = plannedQuantity
	return ld, nil
}

// RestoreTruckingLoad reconstructs a load from persistence with an
// explicit status, completed quantity and owned documents.
func RestoreTruckingLoad(
	id kernel.UUID,
	requestID kernel.UUID,
	direction Direction,
	sequenceNumber int,
	status Status,
	plannedQuantity kernel.Quantity,
	completedQuantity kernel.Quantity,
	documents []*Document,
) (*TruckingLoad, error) {
	ld, err := NewTruckingLoad(id, requestID, direction, sequenceNumber, plannedQuantity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	ld.status = status
	ld.completedQuantity = completedQuantity
	ld.documents = documents
	return ld, nil
}

// Validate ensures the load was built through a constructor.
func (l *TruckingLoad) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrTruckingLoadIsNotConstructed
	}

	return nil
}

// IsEqual compares two loads by identifier.
func (l *TruckingLoad) IsEqual(other *TruckingLoad) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *TruckingLoad) ID() kernel.UUID {
	return l.id
}

// RequestID returns the owning storage request.
func (l *TruckingLoad) RequestID() kernel.UUID {
	return l.requestID
}

// Direction returns whether the load is inbound or outbound.
func (l *TruckingLoad) Direction() Direction {
	return l.direction
}

// SequenceNumber returns the per-(request, direction) ordinal.
func (l *TruckingLoad) SequenceNumber() int {
	return l.sequenceNumber
}

// Status returns the current lifecycle status.
func (l *TruckingLoad) Status() Status {
	return l.status
}

// PlannedQuantity returns the quantity booked for this movement.
func (l *TruckingLoad) PlannedQuantity() kernel.Quantity {
	return l.plannedQuantity
}

// CompletedQuantity returns the quantity actually moved. Zero until the
// load completes.
func (l *TruckingLoad) CompletedQuantity() kernel.Quantity {
	return l.completedQuantity
}

// Documents returns the documents attached to this load.
func (l *TruckingLoad) Documents() []*Document {
	return l.documents
}

// TransitionTo moves the load to a new status after checking the
// transition against the state machine. The identity transition is a
// legal no-op.
func (l *TruckingLoad) TransitionTo(to Status) error {
	if err := ValidateTransition(l.status, to); err != nil {
		return err
	}

	l.status = to
	return nil
}

// RecordCompletedQuantity captures the checked-in (or checked-out)
// quantity. Only completed loads carry a completed figure.
func (l *TruckingLoad) RecordCompletedQuantity(q kernel.Quantity) error {
	if l.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to record a completed quantity", l.status.String()),
		)
	}

	l.completedQuantity = q
	return nil
}

// AttachDocument adds a document to the load's collection and links the
// document back to the load.
func (l *TruckingLoad) AttachDocument(doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if err := doc.AttachToLoad(l.id); err != nil {
		return err
	}

	l.documents = append(l.documents, doc)
	return nil
}

// ManifestsParsed reports whether every manifest attached to the load has
// a parsed payload. Loads without manifests count as parsed; there is
// nothing left to process for them.
func (l *TruckingLoad) ManifestsParsed() bool {
	for _, doc := range l.documents {
		if doc.Kind() == Manifest && !doc.HasParsedPayload() {
			return false
		}
	}
	return true
}

func (l *TruckingLoad) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *TruckingLoad) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.requestID = id
	return nil
}

func (l *TruckingLoad) setDirection(d Direction) error {
	if err := d.Validate(); err != nil {
		return err
	}
	l.direction = d
	return nil
}

func (l *TruckingLoad) setSequenceNumber(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequenceNumber",
			fmt.Errorf("%d is not greater than 0", n),
		)
	}
	l.sequenceNumber = n
	return nil
}
