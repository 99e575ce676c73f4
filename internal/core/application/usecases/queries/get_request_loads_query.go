package queries

import (
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/guard"
)

var (
	ErrGetRequestLoadsQueryIsNotConstructed = errors.New(
		"GetRequestLoadsQuery must be created via NewGetRequestLoadsQuery constructor",
	)
)

// GetRequestLoadsQuery retrieves the load schedule for one storage
// request: every inbound and outbound load with its status, quantities
// and document count.
//
// Example:
//
//	query, err := NewGetRequestLoadsQuery(requestID)
//	if err != nil {
//	    return err
//	}
//
//	loads, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list loads: %w", err)
//	}
//
//	for _, ld := range loads {
//	    fmt.Printf("%s load #%d: %s\n", ld.Direction, ld.SequenceNumber, ld.Status)
//	}
type GetRequestLoadsQuery struct {
	guard     guard.ConstructorGuard
	requestID kernel.UUID
}

// NewGetRequestLoadsQuery creates a load listing query for the request.
func NewGetRequestLoadsQuery(requestID kernel.UUID) (GetRequestLoadsQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRequestLoadsQuery{}, err
	}

	return GetRequestLoadsQuery{
		guard:     guard.NewConstructorGuard(),
		requestID: requestID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRequestLoadsQueryIsNotConstructed if validation fails.
func (q GetRequestLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestLoadsQueryIsNotConstructed)
}

// RequestID returns the identifier of the request whose loads to list.
func (q GetRequestLoadsQuery) RequestID() kernel.UUID {
	return q.requestID
}

// GetRequestLoadsQueryResponse represents one scheduled load row.
type GetRequestLoadsQueryResponse struct {
	ID              kernel.UUID
	Direction       string
	SequenceNumber  int
	Status          string
	PlannedJoints   int
	CompletedJoints int
	DocumentCount   int
}
