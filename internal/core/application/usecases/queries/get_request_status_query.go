package queries

import (
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/services"
	"pipeyard/internal/pkg/guard"
)

var (
	ErrGetRequestStatusQueryIsNotConstructed = errors.New(
		"GetRequestStatusQuery must be created via NewGetRequestStatusQuery constructor",
	)
)

// GetRequestStatusQuery retrieves the full status projection for one
// storage request: the customer-facing status line, the yard workflow
// state, and quantity progress in both directions.
//
// Example:
//
//	query, err := NewGetRequestStatusQuery(requestID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get request status: %w", err)
//	}
//
//	fmt.Printf("%s: %s\n", status.CompanyName, status.CustomerStatus)
type GetRequestStatusQuery struct {
	guard     guard.ConstructorGuard
	requestID kernel.UUID
}

// NewGetRequestStatusQuery creates a status projection query for the request.
func NewGetRequestStatusQuery(requestID kernel.UUID) (GetRequestStatusQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRequestStatusQuery{}, err
	}

	return GetRequestStatusQuery{
		guard:     guard.NewConstructorGuard(),
		requestID: requestID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRequestStatusQueryIsNotConstructed if validation fails.
func (q GetRequestStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestStatusQueryIsNotConstructed)
}

// RequestID returns the identifier of the request to project.
func (q GetRequestStatusQuery) RequestID() kernel.UUID {
	return q.requestID
}

// GetRequestStatusQueryResponse represents the status projection of one
// storage request.
type GetRequestStatusQueryResponse struct {
	RequestID       kernel.UUID
	CompanyName     string
	CustomerStatus  string
	Workflow        services.WorkflowState
	Inbound         services.ProgressSummary
	Outbound        services.ProgressSummary
	JointsInStorage int
}
